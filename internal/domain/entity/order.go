package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/apperror"
)

// Discount reduces a line item's gross. A fixed discount subtracts Amount
// directly; a percentage discount subtracts Amount/100 of the gross.
type Discount struct {
	Name   string            `json:"name,omitempty"`
	Type   enum.DiscountType `json:"type"`
	Amount decimal.Decimal   `json:"amount"`
}

// Validate checks the discount's type and amount. Amount must be strictly
// positive; a percentage may not exceed 100.
func (d *Discount) Validate() error {
	var fields []apperror.FieldError
	if !d.Type.Valid() {
		fields = append(fields, apperror.FieldError{
			Field:   "type",
			Message: "must be \"fixed\" or \"percentage\"",
		})
	}
	if !d.Amount.IsPositive() {
		fields = append(fields, apperror.FieldError{
			Field:   "amount",
			Message: "must be greater than zero",
		})
	}
	if d.Type == enum.DiscountTypePercentage && d.Amount.GreaterThan(decimal.NewFromInt(100)) {
		fields = append(fields, apperror.FieldError{
			Field:   "amount",
			Message: "percentage discount cannot exceed 100",
		})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// LineItem is one cart row: a product at a quantity, optionally discounted.
// Gross and net are derived values owned by the pricing engine; they are
// recomputed from the current fields on every read, never stored here.
type LineItem struct {
	ID       uuid.UUID `json:"id"`
	Product  *Product  `json:"product"`
	Quantity int       `json:"quantity"`
	Discount *Discount `json:"discount,omitempty"`
}

// Order is an ordered collection of line items. Item order is irrelevant
// for totals but stable for display.
type Order struct {
	Items []LineItem `json:"items"`
}
