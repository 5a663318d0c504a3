package entity

import (
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/domain/enum"
)

// Payment is one tender against an order's payable total. A split payment
// settles one total with several Payment records whose AmountPayable values
// sum to it.
type Payment struct {
	Method         enum.PaymentMethod `json:"method"`
	AmountReceived decimal.Decimal    `json:"amount_received"`
	AmountPayable  decimal.Decimal    `json:"amount_payable"`
	Change         decimal.Decimal    `json:"change"`
}

// ComputedChange returns received minus payable for cash payments and zero
// for every other method. The stored Change field is display state; this is
// the authoritative value.
func (p *Payment) ComputedChange() decimal.Decimal {
	if p.Method.IsCash() {
		return p.AmountReceived.Sub(p.AmountPayable)
	}
	return decimal.Zero
}
