package shift

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahan/poscore/internal/application/pricing"
	"github.com/tindahan/poscore/internal/config"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/apperror"
)

var testClock = time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

func newShiftEngine() *Engine {
	return NewEngine(config.ShiftConfig{VarianceWarning: 50, VarianceCritical: 500})
}

func cashPayment(received, payable float64) entity.Payment {
	return entity.Payment{
		Method:         enum.PaymentMethodCash,
		AmountReceived: decimal.NewFromFloat(received),
		AmountPayable:  decimal.NewFromFloat(payable),
	}
}

func TestOpenShift(t *testing.T) {
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	assert.Equal(t, enum.ShiftStatusOpen, s.Status)
	assert.Equal(t, "ana", s.OpenedBy)
	require.Len(t, s.Movements, 1)
	assert.Equal(t, enum.MovementTypeOpeningFloat, s.Movements[0].Type)
	assert.Equal(t, "1000.00", ExpectedDrawer(&s).StringFixed(2))
}

func TestOpenShiftNegativeFloat(t *testing.T) {
	_, err := Open(decimal.NewFromInt(-1), "ana", testClock)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestRecordSaleMovesOnlyCash(t *testing.T) {
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	payments := []entity.Payment{
		cashPayment(500, 450),
		{
			Method:         enum.PaymentMethodGCash,
			AmountReceived: decimal.NewFromInt(200),
			AmountPayable:  decimal.NewFromInt(200),
		},
	}
	s, err = RecordSale(s, uuid.New(), payments, testClock)
	require.NoError(t, err)

	// opening float + one cash movement; gcash never touches the drawer
	require.Len(t, s.Movements, 2)
	assert.Equal(t, "1450.00", ExpectedDrawer(&s).StringFixed(2))
}

func TestPayInAndPayOut(t *testing.T) {
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	s, err = RecordPayIn(s, decimal.NewFromInt(300), "coin delivery", testClock)
	require.NoError(t, err)
	s, err = RecordPayOut(s, decimal.NewFromInt(150), "supplier COD", testClock)
	require.NoError(t, err)

	assert.Equal(t, "1150.00", ExpectedDrawer(&s).StringFixed(2))

	_, err = RecordPayIn(s, decimal.Zero, "nothing", testClock)
	require.Error(t, err)
	_, err = RecordPayOut(s, decimal.NewFromInt(-5), "bad", testClock)
	require.Error(t, err)
}

func TestRecordVoidReversesCash(t *testing.T) {
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)
	orderID := uuid.New()

	s, err = RecordSale(s, orderID, []entity.Payment{cashPayment(450, 450)}, testClock)
	require.NoError(t, err)
	s, err = RecordVoid(s, orderID, decimal.NewFromInt(450), testClock)
	require.NoError(t, err)

	assert.Equal(t, "1000.00", ExpectedDrawer(&s).StringFixed(2))
}

func TestTransitionsDoNotMutateInput(t *testing.T) {
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	_, err = RecordPayIn(s, decimal.NewFromInt(300), "x", testClock)
	require.NoError(t, err)
	assert.Len(t, s.Movements, 1)
}

func TestSummarize(t *testing.T) {
	pricer := pricing.NewEngine(config.PricingConfig{TaxRatePercent: 12})
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	orders := []entity.Order{
		{Items: []entity.LineItem{{
			ID:       uuid.New(),
			Product:  &entity.Product{ID: uuid.New(), Name: "adobo", Price: decimal.NewFromInt(450)},
			Quantity: 1,
		}}},
	}
	payments := []entity.Payment{cashPayment(500, 450)}
	s, err = RecordSale(s, uuid.New(), payments, testClock)
	require.NoError(t, err)

	report, err := Summarize(&s, pricer, orders, payments)
	require.NoError(t, err)

	assert.Equal(t, 1, report.OrderCount)
	assert.Equal(t, "450.00", report.Gross.StringFixed(2))
	assert.Equal(t, "450.00", report.Net.StringFixed(2))
	assert.Equal(t, "450.00", report.ByMethod[enum.PaymentMethodCash].StringFixed(2))
	assert.Equal(t, "500.00", report.CashReceived.StringFixed(2))
	assert.Equal(t, "50.00", report.ChangeGiven.StringFixed(2))
	assert.Equal(t, "1450.00", report.ExpectedCash.StringFixed(2))
	assert.Equal(t, "1000.00", report.OpeningFloat.StringFixed(2))
}

func TestCloseComputesVariance(t *testing.T) {
	e := newShiftEngine()
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	closed, err := e.Close(s, decimal.NewFromInt(990), testClock.Add(8*time.Hour))
	require.NoError(t, err)

	assert.Equal(t, enum.ShiftStatusClosed, closed.Status)
	assert.Equal(t, "1000.00", closed.ExpectedCash.StringFixed(2))
	assert.Equal(t, "-10.00", closed.Variance.StringFixed(2))
	assert.Equal(t, enum.DrawerVarianceNormal, closed.VarianceTag)
	require.NotNil(t, closed.ClosedAt)
}

func TestCloseTwiceFails(t *testing.T) {
	e := newShiftEngine()
	s, err := Open(decimal.NewFromInt(1000), "ana", testClock)
	require.NoError(t, err)

	closed, err := e.Close(s, decimal.NewFromInt(1000), testClock)
	require.NoError(t, err)

	_, err = e.Close(closed, decimal.NewFromInt(1000), testClock)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDataIntegrity))
}

// A gap exactly at a threshold takes the lower severity.
func TestClassifyThresholds(t *testing.T) {
	e := newShiftEngine()

	assert.Equal(t, enum.DrawerVarianceNormal, e.Classify(decimal.Zero))
	assert.Equal(t, enum.DrawerVarianceNormal, e.Classify(decimal.NewFromInt(-50)))
	assert.Equal(t, enum.DrawerVarianceWarning, e.Classify(decimal.NewFromInt(51)))
	assert.Equal(t, enum.DrawerVarianceWarning, e.Classify(decimal.NewFromInt(500)))
	assert.Equal(t, enum.DrawerVarianceCritical, e.Classify(decimal.NewFromInt(-501)))
}
