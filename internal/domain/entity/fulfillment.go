package entity

import "github.com/google/uuid"

// FulfillmentRequest is the outbound payload submitted once an order's
// payments reconcile. RequestID is a client-generated idempotency key so the
// API layer can deduplicate a double-submitted fulfillment.
type FulfillmentRequest struct {
	RequestID uuid.UUID  `json:"request_id"`
	Orders    []LineItem `json:"orders"`
	Payments  []Payment  `json:"payments"`
	ShiftID   string     `json:"shift_id"`
}

// VoidRequest asks the backend to void a fulfilled order. The PIN is
// shape-checked here; verifying it belongs to the backend.
type VoidRequest struct {
	OrderID string `json:"order_id"`
	ShiftID string `json:"shift_id"`
	VoidPIN string `json:"void_pin"`
}
