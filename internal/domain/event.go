package domain

import "time"

// CartEventOp — тип изменения корзины.
type CartEventOp string

const (
	CartEventAdded           CartEventOp = "added"
	CartEventIncremented     CartEventOp = "incremented"
	CartEventQuantityChanged CartEventOp = "quantity_changed"
	CartEventRemoved         CartEventOp = "removed"
)

// CartEvent — уведомление об одном фактическом изменении корзины.
// Quantity — количество после изменения (0, если позиция удалена).
type CartEvent struct {
	Op        CartEventOp `json:"op"`
	ProductID int64       `json:"product_id"`
	Quantity  int         `json:"quantity"`
	Lines     int         `json:"lines"`
	Total     float64     `json:"total"`
	Origin    string      `json:"origin,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
	At        time.Time   `json:"at"`
}
