// Package fulfillment builds the outbound payloads the API layer submits:
// the one-shot fulfillment request after payments reconcile, and void
// requests. Requests carry a client-generated id so the backend can
// deduplicate a double-submitted call.
package fulfillment

import (
	"github.com/google/uuid"

	"github.com/tindahan/poscore/internal/application/pricing"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/pkg/apperror"
)

// BuildRequest assembles a fulfillment request from the order lines, their
// payments, and the reconciliation computed from them. It refuses an
// unsettled or invalid reconciliation; the reconciliation must come from the
// order's current state, never a stale one.
func BuildRequest(items []entity.LineItem, payments []entity.Payment, shiftID string, rec pricing.Reconciliation) (*entity.FulfillmentRequest, error) {
	if len(items) == 0 {
		return nil, apperror.NewFieldError("orders", "cannot fulfill an empty order")
	}
	if shiftID == "" {
		return nil, apperror.NewFieldError("shift_id", "is required")
	}
	if len(rec.Errors) > 0 {
		return nil, apperror.NewValidationError(rec.Errors)
	}
	if !rec.IsSettled {
		return nil, apperror.NewFieldError("payments", "do not settle the payable total")
	}

	orders := make([]entity.LineItem, len(items))
	copy(orders, items)
	pays := make([]entity.Payment, len(payments))
	copy(pays, payments)

	return &entity.FulfillmentRequest{
		RequestID: uuid.New(),
		Orders:    orders,
		Payments:  pays,
		ShiftID:   shiftID,
	}, nil
}

// BuildVoidRequest assembles a void-order request. The PIN is shape-checked
// only: numeric, at least four digits. Verifying it is the backend's job.
func BuildVoidRequest(orderID, shiftID, voidPIN string) (*entity.VoidRequest, error) {
	var fields []apperror.FieldError
	if orderID == "" {
		fields = append(fields, apperror.FieldError{Field: "order_id", Message: "is required"})
	}
	if shiftID == "" {
		fields = append(fields, apperror.FieldError{Field: "shift_id", Message: "is required"})
	}
	if !validPIN(voidPIN) {
		fields = append(fields, apperror.FieldError{
			Field:   "void_pin",
			Message: "must be at least four digits",
		})
	}
	if len(fields) > 0 {
		return nil, apperror.NewValidationError(fields)
	}
	return &entity.VoidRequest{
		OrderID: orderID,
		ShiftID: shiftID,
		VoidPIN: voidPIN,
	}, nil
}

func validPIN(pin string) bool {
	if len(pin) < 4 {
		return false
	}
	for _, r := range pin {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
