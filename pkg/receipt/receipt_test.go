package receipt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahan/poscore/internal/application/pricing"
	"github.com/tindahan/poscore/internal/application/shift"
	"github.com/tindahan/poscore/internal/config"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/currency"
)

var printedAt = time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)

func testHeader() entity.ReceiptHeader {
	return entity.ReceiptHeader{
		StoreName: "Aling Nena's",
		Address:   "123 Mabini St, Quezon City",
		TaxID:     "123-456-789",
	}
}

func testOrder() entity.Order {
	return entity.Order{Items: []entity.LineItem{
		{
			ID: uuid.New(),
			Product: &entity.Product{
				ID:    uuid.New(),
				Name:  "Kape Barako",
				Price: decimal.NewFromInt(120),
			},
			Quantity: 2,
			Discount: &entity.Discount{
				Type:   enum.DiscountTypeFixed,
				Amount: decimal.NewFromInt(40),
			},
		},
	}}
}

func testFormatter(t *testing.T) *currency.Formatter {
	t.Helper()
	f, err := currency.NewFormatter("PHP", "en-PH")
	require.NoError(t, err)
	return f
}

func TestCompose(t *testing.T) {
	engine := pricing.NewEngine(config.PricingConfig{TaxRatePercent: 12})
	payments := []entity.Payment{{
		Method:         enum.PaymentMethodCash,
		AmountReceived: decimal.NewFromInt(250),
		AmountPayable:  decimal.NewFromInt(200),
	}}

	r, err := Compose(engine, testOrder(), payments, testHeader(), "ana", "shift-1", printedAt)
	require.NoError(t, err)

	assert.Equal(t, "2025-06-15 18:30", r.Date)
	require.Len(t, r.Items, 1)
	assert.Equal(t, "Kape Barako", r.Items[0].Name)
	assert.Equal(t, "240.00", r.Gross.StringFixed(2))
	assert.Equal(t, "40.00", r.Discount.StringFixed(2))
	assert.Equal(t, "200.00", r.Net.StringFixed(2))
	require.Len(t, r.Payments, 1)
	assert.Equal(t, "50.00", r.Payments[0].Change.StringFixed(2))
}

func TestComposeFailsOnUnpriceableOrder(t *testing.T) {
	engine := pricing.NewEngine(config.PricingConfig{})
	order := entity.Order{Items: []entity.LineItem{{ID: uuid.New(), Quantity: 1}}}

	_, err := Compose(engine, order, nil, testHeader(), "", "", printedAt)
	require.Error(t, err)
}

func TestRenderContainsTotalsAndHeader(t *testing.T) {
	engine := pricing.NewEngine(config.PricingConfig{TaxRatePercent: 12})
	r, err := Compose(engine, testOrder(), nil, testHeader(), "ana", "", printedAt)
	require.NoError(t, err)

	out := string(Render(r, testFormatter(t), 32))
	assert.Contains(t, out, "Aling Nena's")
	assert.Contains(t, out, "Kape Barako")
	assert.Contains(t, out, "TOTAL")
	assert.Contains(t, out, "₱200.00")
	assert.Contains(t, out, "TIN: 123-456-789")
}

func TestRenderZReport(t *testing.T) {
	pricer := pricing.NewEngine(config.PricingConfig{TaxRatePercent: 12})
	s, err := shift.Open(decimal.NewFromInt(1000), "ana", printedAt)
	require.NoError(t, err)

	payments := []entity.Payment{{
		Method:         enum.PaymentMethodCash,
		AmountReceived: decimal.NewFromInt(240),
		AmountPayable:  decimal.NewFromInt(240),
	}}
	s, err = shift.RecordSale(s, uuid.New(), payments, printedAt)
	require.NoError(t, err)

	order := entity.Order{Items: []entity.LineItem{{
		ID:       uuid.New(),
		Product:  &entity.Product{ID: uuid.New(), Name: "Kape", Price: decimal.NewFromInt(240)},
		Quantity: 1,
	}}}
	report, err := shift.Summarize(&s, pricer, []entity.Order{order}, payments)
	require.NoError(t, err)

	out := string(RenderZReport(report, testHeader(), testFormatter(t), 32))
	assert.Contains(t, out, "Z-REPORT")
	assert.Contains(t, out, "Net sales")
	assert.Contains(t, out, "₱240.00")
	assert.Contains(t, out, "Expected drawer")
	assert.Contains(t, out, "₱1,240.00")
}

func TestDocumentKeyValueWidth(t *testing.T) {
	d := NewDocument(20)
	d.KeyValue("Total", "₱99.00")

	out := string(d.Bytes())
	assert.Contains(t, out, "Total         ₱99.00")
}
