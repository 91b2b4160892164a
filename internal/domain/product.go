package domain

// Product — товар из внешнего каталога (только чтение).
// Имена JSON-полей совпадают с ответом API каталога.
type Product struct {
	ID                 int64   `json:"id"`
	Title              string  `json:"title"`
	Thumbnail          string  `json:"thumbnail"`
	Price              float64 `json:"price"`
	Category           string  `json:"category"`
	Description        string  `json:"description"`
	DiscountPercentage float64 `json:"discountPercentage"`
	Rating             float64 `json:"rating"`
}
