// Package pricing computes line and order amounts under discounts and VAT,
// and reconciles one or more payments against a payable total. Everything
// here is a pure function of its inputs; callers must recompute totals from
// current order state before every reconciliation or submission step.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/config"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/apperror"
)

var oneHundred = decimal.NewFromInt(100)

// Amounts holds the derived monetary fields of a single line item.
type Amounts struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

// Totals holds the aggregate amounts of an order. Gross sums pre-discount,
// pre-tax line grosses; Net sums post-discount, post-tax line nets.
type Totals struct {
	Gross decimal.Decimal `json:"gross"`
	Net   decimal.Decimal `json:"net"`
}

// Engine prices orders under a fixed VAT rate and negative-net policy.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	taxRate decimal.Decimal
	clamp   bool
}

// NewEngine creates a pricing engine from business configuration.
func NewEngine(cfg config.PricingConfig) *Engine {
	return &Engine{
		taxRate: decimal.NewFromFloat(cfg.TaxRatePercent),
		clamp:   cfg.ClampNegativeNet,
	}
}

// LineItemAmounts computes a line's gross (price x quantity) and net
// (gross minus discount), rounded half-up to two decimals at the net
// boundary. A fixed discount larger than the gross drives the net negative
// unless the engine was configured to clamp at zero.
func (e *Engine) LineItemAmounts(item *entity.LineItem) (Amounts, error) {
	if item.Product == nil {
		return Amounts{}, apperror.NewDataIntegrityError("line item %s has no product", item.ID)
	}
	if item.Quantity <= 0 {
		return Amounts{}, apperror.NewFieldError("quantity", "must be greater than zero")
	}

	gross := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	net := gross

	if item.Discount != nil {
		if err := item.Discount.Validate(); err != nil {
			return Amounts{}, err
		}
		var discountAmount decimal.Decimal
		if item.Discount.Type == enum.DiscountTypeFixed {
			discountAmount = item.Discount.Amount
		} else {
			discountAmount = item.Discount.Amount.Div(oneHundred).Mul(gross)
		}
		net = gross.Sub(discountAmount)
	}

	if e.clamp && net.IsNegative() {
		net = decimal.Zero
	}

	return Amounts{Gross: gross.Round(2), Net: net.Round(2)}, nil
}

// Breakdown decomposes an order's pricing into its components. Net is what
// the customer pays: Gross - Discount + Tax.
type Breakdown struct {
	Gross    decimal.Decimal `json:"gross"`
	Discount decimal.Decimal `json:"discount"`
	Tax      decimal.Decimal `json:"tax"`
	Net      decimal.Decimal `json:"net"`
}

// OrderBreakdown prices every line and aggregates gross, discount, tax and
// net across the order. Lines whose product is tax-applicable contribute
// net x (1 + rate/100), rounded to two decimals per line before summation.
// An order with no items breaks down to all zeros.
func (e *Engine) OrderBreakdown(order *entity.Order) (Breakdown, error) {
	b := Breakdown{
		Gross:    decimal.Zero,
		Discount: decimal.Zero,
		Tax:      decimal.Zero,
		Net:      decimal.Zero,
	}

	for i := range order.Items {
		item := &order.Items[i]
		amounts, err := e.LineItemAmounts(item)
		if err != nil {
			return Breakdown{}, err
		}

		lineNet := amounts.Net
		if item.Product.ApplyTax && e.taxRate.IsPositive() {
			lineNet = lineNet.Mul(decimal.NewFromInt(1).Add(e.taxRate.Div(oneHundred))).Round(2)
		}

		b.Gross = b.Gross.Add(amounts.Gross)
		b.Discount = b.Discount.Add(amounts.Gross.Sub(amounts.Net))
		b.Tax = b.Tax.Add(lineNet.Sub(amounts.Net))
		b.Net = b.Net.Add(lineNet)
	}

	return b, nil
}

// OrderTotals sums line amounts across the order, returning the order-level
// gross (pre-discount, pre-tax) and net (post-discount, post-tax).
func (e *Engine) OrderTotals(order *entity.Order) (Totals, error) {
	b, err := e.OrderBreakdown(order)
	if err != nil {
		return Totals{}, err
	}
	return Totals{Gross: b.Gross, Net: b.Net}, nil
}

// Reconciliation is the result of checking a payment set against a payable
// total. Errors are caller-correctable field messages, never fatal.
type Reconciliation struct {
	TotalReceived decimal.Decimal       `json:"total_received"`
	TotalPayable  decimal.Decimal       `json:"total_payable"`
	TotalChange   decimal.Decimal       `json:"total_change"`
	IsSettled     bool                  `json:"is_settled"`
	Errors        []apperror.FieldError `json:"errors,omitempty"`
}

// ReconcilePayments checks payments against the payable total. IsSettled
// requires the payable amounts to sum to the total exactly; equality is not
// epsilon-tolerant so split-payment entry errors surface. Change counts only
// for cash payments, and a payment may never allocate more than the balance
// left by the payments entered before it. Pure: submission is the caller's
// job, and only once settled with no errors.
func (e *Engine) ReconcilePayments(payments []entity.Payment, payableTotal decimal.Decimal) Reconciliation {
	rec := Reconciliation{
		TotalReceived: decimal.Zero,
		TotalPayable:  decimal.Zero,
		TotalChange:   decimal.Zero,
	}
	remaining := payableTotal

	for i := range payments {
		p := &payments[i]
		field := func(name string) string { return fmt.Sprintf("payments[%d].%s", i, name) }

		if !p.Method.Valid() {
			rec.Errors = append(rec.Errors, apperror.FieldError{
				Field:   field("method"),
				Message: fmt.Sprintf("unrecognized payment method %q", p.Method),
			})
		}
		if !p.AmountReceived.IsPositive() {
			rec.Errors = append(rec.Errors, apperror.FieldError{
				Field:   field("amount_received"),
				Message: "must be greater than zero",
			})
		}
		if !p.AmountPayable.IsPositive() {
			rec.Errors = append(rec.Errors, apperror.FieldError{
				Field:   field("amount_payable"),
				Message: "must be greater than zero",
			})
		} else if p.AmountPayable.GreaterThan(remaining) {
			rec.Errors = append(rec.Errors, apperror.FieldError{
				Field:   field("amount_payable"),
				Message: "exceeds the remaining payable balance",
			})
		}
		remaining = remaining.Sub(p.AmountPayable)

		rec.TotalReceived = rec.TotalReceived.Add(p.AmountReceived)
		rec.TotalPayable = rec.TotalPayable.Add(p.AmountPayable)
		if p.Method.IsCash() {
			rec.TotalChange = rec.TotalChange.Add(p.ComputedChange())
		}
	}

	rec.IsSettled = rec.TotalPayable.Equal(payableTotal)
	return rec
}
