package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalCart — сериализует корзину в JSON-массив позиций.
// Пустая корзина даёт "[]", а не "null".
func MarshalCart(c Cart) ([]byte, error) {
	lines := c.lines
	if lines == nil {
		lines = []CartLine{}
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("marshal cart: %w", err)
	}
	return raw, nil
}

// UnmarshalCart — восстанавливает корзину из JSON-массива позиций.
// Пустой ввод и "null" — пустая корзина без ошибки.
// Неизвестные поля (например, прочие поля товара из API) игнорируются.
func UnmarshalCart(raw []byte) (Cart, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return Cart{}, nil
	}
	var lines []CartLine
	if err := json.Unmarshal(trimmed, &lines); err != nil {
		return Cart{}, fmt.Errorf("unmarshal cart: %w", err)
	}
	return NewCart(lines...), nil
}
