package entity

// OrderStatus is the order lifecycle state. It only ever moves forward:
// pending -> ready -> paid.
type OrderStatus string

const (
	StatusPending OrderStatus = "pending"
	StatusReady   OrderStatus = "ready"
	StatusPaid    OrderStatus = "paid"
)

// Next returns the immediate successor status. ok is false for the terminal
// state (paid) and for unknown values.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusReady, true
	case StatusReady:
		return StatusPaid, true
	default:
		return "", false
	}
}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReady, StatusPaid:
		return true
	}
	return false
}
