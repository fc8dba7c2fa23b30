package entity

// OrderState is the order lifecycle: PLACED -> ASSIGNED -> DELIVERED.
// DELIVERED is terminal; nothing mutates a delivered order except deletion.
type OrderState string

const (
	StatePlaced    OrderState = "PLACED"
	StateAssigned  OrderState = "ASSIGNED"
	StateDelivered OrderState = "DELIVERED"
)

func (s OrderState) Terminal() bool { return s == StateDelivered }

// Delivered reports the wire-level boolean status the API exposes.
func (s OrderState) Delivered() bool { return s == StateDelivered }
