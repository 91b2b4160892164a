package domain

import "math"

// CartLine — позиция корзины: поля товара + количество.
// Инвариант: Quantity >= 1, пока позиция существует.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal — стоимость позиции (цена × количество).
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart — упорядоченная корзина, не более одной позиции на товар.
// Значение неизменяемо: каждая операция возвращает новую корзину.
type Cart struct {
	lines []CartLine
}

// NewCart — собирает корзину из позиций с нормализацией:
// позиции с количеством < 1 отбрасываются, дубли по ID сливаются в первую
// (количества суммируются), порядок первого появления сохраняется.
func NewCart(lines ...CartLine) Cart {
	if len(lines) == 0 {
		return Cart{}
	}
	out := make([]CartLine, 0, len(lines))
	index := make(map[int64]int, len(lines))
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		if i, ok := index[line.ID]; ok {
			out[i].Quantity = addQuantity(out[i].Quantity, line.Quantity)
			continue
		}
		index[line.ID] = len(out)
		out = append(out, line)
	}
	return Cart{lines: out}
}

// Lines — копия позиций в порядке добавления.
func (c Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len — число позиций.
func (c Cart) Len() int { return len(c.lines) }

// IsEmpty — корзина пуста.
func (c Cart) IsEmpty() bool { return len(c.lines) == 0 }

// Line — позиция по ID товара.
func (c Cart) Line(productID int64) (CartLine, bool) {
	if i := c.find(productID); i >= 0 {
		return c.lines[i], true
	}
	return CartLine{}, false
}

// Count — суммарное количество единиц товара, не больше math.MaxInt.
func (c Cart) Count() int {
	n := 0
	for _, line := range c.lines {
		n = addQuantity(n, line.Quantity)
	}
	return n
}

// Total — сумма price × quantity по всем позициям (без округления).
func (c Cart) Total() float64 {
	var total float64
	for _, line := range c.lines {
		total += line.Subtotal()
	}
	return total
}

// AddOrIncrement — если товар уже в корзине, увеличивает количество на 1,
// иначе добавляет позицию с количеством 1 в конец.
func (c Cart) AddOrIncrement(p Product) Cart {
	lines := c.Lines()
	if i := c.find(p.ID); i >= 0 {
		lines[i].Quantity = addQuantity(lines[i].Quantity, 1)
		return Cart{lines: lines}
	}
	return Cart{lines: append(lines, CartLine{Product: p, Quantity: 1})}
}

// ChangeQuantity — прибавляет delta к количеству позиции.
// Позиция, у которой количество стало <= 0, удаляется.
// false — товара в корзине нет (корзина не меняется).
func (c Cart) ChangeQuantity(productID int64, delta int) (Cart, bool) {
	i := c.find(productID)
	if i < 0 {
		return c, false
	}
	q := addQuantity(c.lines[i].Quantity, delta)
	if q <= 0 {
		return c.without(i), true
	}
	lines := c.Lines()
	lines[i].Quantity = q
	return Cart{lines: lines}, true
}

// addQuantity — q+delta с насыщением на math.MaxInt.
// q >= 0, поэтому переполнение возможно только при delta > 0.
func addQuantity(q, delta int) int {
	if delta > 0 && q > math.MaxInt-delta {
		return math.MaxInt
	}
	return q + delta
}

// Remove — удаляет позицию; false — товара в корзине не было.
func (c Cart) Remove(productID int64) (Cart, bool) {
	i := c.find(productID)
	if i < 0 {
		return c, false
	}
	return c.without(i), true
}

func (c Cart) find(productID int64) int {
	for i := range c.lines {
		if c.lines[i].ID == productID {
			return i
		}
	}
	return -1
}

func (c Cart) without(i int) Cart {
	lines := make([]CartLine, 0, len(c.lines)-1)
	lines = append(lines, c.lines[:i]...)
	lines = append(lines, c.lines[i+1:]...)
	return Cart{lines: lines}
}
