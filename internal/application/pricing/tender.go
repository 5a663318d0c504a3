package pricing

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/pkg/apperror"
)

// TenderState is the stage of a payment collection flow.
type TenderState int

const (
	// TenderCollecting accepts payments until the payable total is covered.
	TenderCollecting TenderState = 0
	// TenderSummary means the total is covered; the flow can be submitted.
	TenderSummary TenderState = 1
	// TenderSubmitted is terminal; the fulfillment request was produced.
	TenderSubmitted TenderState = 2
)

func (s TenderState) String() string {
	names := [...]string{"Collecting", "Summary", "Submitted"}
	if int(s) < 0 || int(s) >= len(names) {
		return "Collecting"
	}
	return names[s]
}

// TenderFlow walks an order through payment collection: one or more
// payments are entered against the payable total, each validated before the
// flow advances, and Submit produces the fulfillment request exactly once.
// The payable total is computed from the order at construction time, so the
// caller must hand over the order's final state.
type TenderFlow struct {
	engine    *Engine
	items     []entity.LineItem
	shiftID   string
	payable   decimal.Decimal
	payments  []entity.Payment
	state     TenderState
	requestID uuid.UUID
}

// NewTenderFlow prices the order and opens a collection flow against its net
// total. An order that nets to zero or less cannot be tendered.
func NewTenderFlow(engine *Engine, order entity.Order, shiftID string) (*TenderFlow, error) {
	totals, err := engine.OrderTotals(&order)
	if err != nil {
		return nil, err
	}
	if !totals.Net.IsPositive() {
		return nil, apperror.NewFieldError("order", "payable total must be greater than zero")
	}
	items := make([]entity.LineItem, len(order.Items))
	copy(items, order.Items)
	return &TenderFlow{
		engine:    engine,
		items:     items,
		shiftID:   shiftID,
		payable:   totals.Net,
		state:     TenderCollecting,
		requestID: uuid.New(),
	}, nil
}

// State returns the flow's current stage.
func (f *TenderFlow) State() TenderState {
	return f.state
}

// PayableTotal returns the order net the flow was opened against.
func (f *TenderFlow) PayableTotal() decimal.Decimal {
	return f.payable
}

// Remaining returns the payable balance not yet covered by entered payments.
func (f *TenderFlow) Remaining() decimal.Decimal {
	remaining := f.payable
	for i := range f.payments {
		remaining = remaining.Sub(f.payments[i].AmountPayable)
	}
	return remaining
}

// Payments returns a copy of the payments entered so far, with change
// computed for cash tenders.
func (f *TenderFlow) Payments() []entity.Payment {
	payments := make([]entity.Payment, len(f.payments))
	copy(payments, f.payments)
	return payments
}

// AddPayment validates and records one payment. The payment may not
// allocate more than the remaining balance, and a cash tender must receive
// at least its payable share. When the balance reaches zero the flow
// advances to the summary stage.
func (f *TenderFlow) AddPayment(p entity.Payment) error {
	if f.state != TenderCollecting {
		return apperror.NewDataIntegrityError("cannot add a payment in the %s state", f.state)
	}

	var fields []apperror.FieldError
	if !p.Method.Valid() {
		fields = append(fields, apperror.FieldError{
			Field:   "method",
			Message: fmt.Sprintf("unrecognized payment method %q", p.Method),
		})
	}
	if !p.AmountReceived.IsPositive() {
		fields = append(fields, apperror.FieldError{
			Field:   "amount_received",
			Message: "must be greater than zero",
		})
	}
	if !p.AmountPayable.IsPositive() {
		fields = append(fields, apperror.FieldError{
			Field:   "amount_payable",
			Message: "must be greater than zero",
		})
	} else if p.AmountPayable.GreaterThan(f.Remaining()) {
		fields = append(fields, apperror.FieldError{
			Field:   "amount_payable",
			Message: "exceeds the remaining payable balance",
		})
	}
	if p.Method.IsCash() && p.AmountReceived.LessThan(p.AmountPayable) {
		fields = append(fields, apperror.FieldError{
			Field:   "amount_received",
			Message: "cash received cannot be less than the amount payable",
		})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}

	p.Change = p.ComputedChange()
	f.payments = append(f.payments, p)
	if f.Remaining().IsZero() {
		f.state = TenderSummary
	}
	return nil
}

// Summary reconciles the entered payments against the payable total.
func (f *TenderFlow) Summary() Reconciliation {
	return f.engine.ReconcilePayments(f.payments, f.payable)
}

// Submit finishes the flow and returns the fulfillment request, carrying the
// flow's idempotency key so the API layer can deduplicate retries. It
// succeeds exactly once: the flow must be in the summary stage with a clean
// reconciliation, and a submitted flow refuses further submissions.
func (f *TenderFlow) Submit() (*entity.FulfillmentRequest, error) {
	if f.state == TenderSubmitted {
		return nil, apperror.NewDataIntegrityError("tender flow was already submitted")
	}
	if f.state != TenderSummary {
		return nil, apperror.NewDataIntegrityError("cannot submit in the %s state", f.state)
	}
	rec := f.Summary()
	if !rec.IsSettled || len(rec.Errors) > 0 {
		return nil, apperror.NewValidationError(rec.Errors)
	}

	f.state = TenderSubmitted
	return &entity.FulfillmentRequest{
		RequestID: f.requestID,
		Orders:    f.Items(),
		Payments:  f.Payments(),
		ShiftID:   f.shiftID,
	}, nil
}

// Items returns a copy of the order lines the flow was opened with.
func (f *TenderFlow) Items() []entity.LineItem {
	items := make([]entity.LineItem, len(f.items))
	copy(items, f.items)
	return items
}
