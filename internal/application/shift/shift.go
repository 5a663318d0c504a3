// Package shift models register sessions: opening a cash drawer with a
// float, accumulating an immutable movement ledger, and closing against a
// declared count with a Z-report of the session's sales. All transitions
// are pure; callers pass the clock in and keep the returned values.
package shift

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/application/pricing"
	"github.com/tindahan/poscore/internal/config"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/apperror"
)

// Engine applies drawer-variance policy at shift close.
type Engine struct {
	warning  decimal.Decimal
	critical decimal.Decimal
}

// NewEngine creates a shift engine from business configuration.
func NewEngine(cfg config.ShiftConfig) *Engine {
	return &Engine{
		warning:  decimal.NewFromFloat(cfg.VarianceWarning),
		critical: decimal.NewFromFloat(cfg.VarianceCritical),
	}
}

// Open starts a shift with the given opening float. The float becomes the
// first ledger entry so the expected drawer is always the ledger sum.
func Open(openingFloat decimal.Decimal, openedBy string, now time.Time) (entity.Shift, error) {
	if openingFloat.IsNegative() {
		return entity.Shift{}, apperror.NewFieldError("opening_float", "cannot be negative")
	}
	return entity.Shift{
		ID:           uuid.New(),
		OpenedBy:     openedBy,
		Status:       enum.ShiftStatusOpen,
		OpeningFloat: openingFloat,
		Movements: []entity.CashMovement{{
			ID:        uuid.New(),
			Type:      enum.MovementTypeOpeningFloat,
			Amount:    openingFloat,
			CreatedAt: now,
		}},
		OpenedAt: now,
	}, nil
}

func appendMovement(s entity.Shift, m entity.CashMovement) entity.Shift {
	movements := make([]entity.CashMovement, len(s.Movements), len(s.Movements)+1)
	copy(movements, s.Movements)
	s.Movements = append(movements, m)
	return s
}

func requireOpen(s *entity.Shift) error {
	if s.Status != enum.ShiftStatusOpen {
		return apperror.NewDataIntegrityError("shift %s is not open", s.ID)
	}
	return nil
}

// RecordSale appends drawer movements for a fulfilled order's payments.
// Only cash tenders move the drawer; the amount is the payable share, since
// the change handed back cancels against the cash received.
func RecordSale(s entity.Shift, orderID uuid.UUID, payments []entity.Payment, now time.Time) (entity.Shift, error) {
	if err := requireOpen(&s); err != nil {
		return s, err
	}
	ref := orderID
	for i := range payments {
		p := &payments[i]
		if !p.Method.IsCash() {
			continue
		}
		s = appendMovement(s, entity.CashMovement{
			ID:          uuid.New(),
			Type:        enum.MovementTypeSale,
			Method:      p.Method,
			Amount:      p.AmountPayable,
			ReferenceID: &ref,
			CreatedAt:   now,
		})
	}
	return s, nil
}

// RecordPayIn adds cash to the drawer outside a sale.
func RecordPayIn(s entity.Shift, amount decimal.Decimal, description string, now time.Time) (entity.Shift, error) {
	if err := requireOpen(&s); err != nil {
		return s, err
	}
	if !amount.IsPositive() {
		return s, apperror.NewFieldError("amount", "must be greater than zero")
	}
	return appendMovement(s, entity.CashMovement{
		ID:          uuid.New(),
		Type:        enum.MovementTypePayIn,
		Amount:      amount,
		Description: description,
		CreatedAt:   now,
	}), nil
}

// RecordPayOut removes cash from the drawer outside a sale.
func RecordPayOut(s entity.Shift, amount decimal.Decimal, description string, now time.Time) (entity.Shift, error) {
	if err := requireOpen(&s); err != nil {
		return s, err
	}
	if !amount.IsPositive() {
		return s, apperror.NewFieldError("amount", "must be greater than zero")
	}
	return appendMovement(s, entity.CashMovement{
		ID:          uuid.New(),
		Type:        enum.MovementTypePayOut,
		Amount:      amount.Neg(),
		Description: description,
		CreatedAt:   now,
	}), nil
}

// RecordVoid reverses a voided order's cash with an inverse ledger entry;
// movements are never edited or deleted.
func RecordVoid(s entity.Shift, orderID uuid.UUID, cashRefund decimal.Decimal, now time.Time) (entity.Shift, error) {
	if err := requireOpen(&s); err != nil {
		return s, err
	}
	if cashRefund.IsNegative() {
		return s, apperror.NewFieldError("cash_refund", "cannot be negative")
	}
	ref := orderID
	return appendMovement(s, entity.CashMovement{
		ID:          uuid.New(),
		Type:        enum.MovementTypeVoid,
		Method:      enum.PaymentMethodCash,
		Amount:      cashRefund.Neg(),
		ReferenceID: &ref,
		CreatedAt:   now,
	}), nil
}

// ExpectedDrawer is the cash the drawer should hold: the ledger sum,
// opening float included.
func ExpectedDrawer(s *entity.Shift) decimal.Decimal {
	total := decimal.Zero
	for i := range s.Movements {
		total = total.Add(s.Movements[i].Amount)
	}
	return total
}

// ZReport aggregates a shift's sales for the end-of-shift report.
type ZReport struct {
	ShiftID       uuid.UUID                              `json:"shift_id"`
	OrderCount    int                                    `json:"order_count"`
	VoidCount     int                                    `json:"void_count"`
	Gross         decimal.Decimal                        `json:"gross"`
	DiscountTotal decimal.Decimal                        `json:"discount_total"`
	TaxTotal      decimal.Decimal                        `json:"tax_total"`
	Net           decimal.Decimal                        `json:"net"`
	ByMethod      map[enum.PaymentMethod]decimal.Decimal `json:"by_method"`
	CashReceived  decimal.Decimal                        `json:"cash_received"`
	ChangeGiven   decimal.Decimal                        `json:"change_given"`
	PayIns        decimal.Decimal                        `json:"pay_ins"`
	PayOuts       decimal.Decimal                        `json:"pay_outs"`
	OpeningFloat  decimal.Decimal                        `json:"opening_float"`
	ExpectedCash  decimal.Decimal                        `json:"expected_cash"`
}

// Summarize builds the Z-report for a shift from the orders fulfilled in it
// and their payments. Totals are recomputed from the orders through the
// pricing engine; nothing is trusted from stored derived fields.
func Summarize(s *entity.Shift, pricer *pricing.Engine, orders []entity.Order, payments []entity.Payment) (*ZReport, error) {
	report := &ZReport{
		ShiftID:       s.ID,
		Gross:         decimal.Zero,
		DiscountTotal: decimal.Zero,
		TaxTotal:      decimal.Zero,
		Net:           decimal.Zero,
		ByMethod:      make(map[enum.PaymentMethod]decimal.Decimal),
		CashReceived:  decimal.Zero,
		ChangeGiven:   decimal.Zero,
		PayIns:        decimal.Zero,
		PayOuts:       decimal.Zero,
		OpeningFloat:  s.OpeningFloat,
	}

	for i := range orders {
		b, err := pricer.OrderBreakdown(&orders[i])
		if err != nil {
			return nil, err
		}
		report.OrderCount++
		report.Gross = report.Gross.Add(b.Gross)
		report.DiscountTotal = report.DiscountTotal.Add(b.Discount)
		report.TaxTotal = report.TaxTotal.Add(b.Tax)
		report.Net = report.Net.Add(b.Net)
	}

	for i := range payments {
		p := &payments[i]
		collected, ok := report.ByMethod[p.Method]
		if !ok {
			collected = decimal.Zero
		}
		report.ByMethod[p.Method] = collected.Add(p.AmountPayable)
		if p.Method.IsCash() {
			report.CashReceived = report.CashReceived.Add(p.AmountReceived)
			report.ChangeGiven = report.ChangeGiven.Add(p.ComputedChange())
		}
	}

	for i := range s.Movements {
		m := &s.Movements[i]
		switch m.Type {
		case enum.MovementTypePayIn:
			report.PayIns = report.PayIns.Add(m.Amount)
		case enum.MovementTypePayOut:
			report.PayOuts = report.PayOuts.Add(m.Amount.Neg())
		case enum.MovementTypeVoid:
			report.VoidCount++
		}
	}

	report.ExpectedCash = ExpectedDrawer(s)
	return report, nil
}

// Classify tags the absolute gap between declared and expected cash.
// A gap at a threshold takes the lower severity.
func (e *Engine) Classify(variance decimal.Decimal) enum.DrawerVariance {
	gap := variance.Abs()
	switch {
	case gap.LessThanOrEqual(e.warning):
		return enum.DrawerVarianceNormal
	case gap.LessThanOrEqual(e.critical):
		return enum.DrawerVarianceWarning
	default:
		return enum.DrawerVarianceCritical
	}
}

// Close settles the drawer against the declared count and closes the shift.
// Variance is declared minus expected. Closing a closed shift is an error.
func (e *Engine) Close(s entity.Shift, declaredCash decimal.Decimal, now time.Time) (entity.Shift, error) {
	if err := requireOpen(&s); err != nil {
		return s, err
	}
	if declaredCash.IsNegative() {
		return s, apperror.NewFieldError("declared_cash", "cannot be negative")
	}

	s.ExpectedCash = ExpectedDrawer(&s)
	s.DeclaredCash = declaredCash
	s.Variance = declaredCash.Sub(s.ExpectedCash)
	s.VarianceTag = e.Classify(s.Variance)
	s.Status = enum.ShiftStatusClosed
	s.ClosedAt = &now
	return s, nil
}
