// Package receipt composes printable receipts and Z-reports from priced
// orders and renders them as ESC/POS byte streams. All monetary display
// goes through the currency formatter; amounts are computed upstream and
// never recalculated here.
package receipt

import (
	"fmt"
	"time"

	"github.com/tindahan/poscore/internal/application/pricing"
	"github.com/tindahan/poscore/internal/application/shift"
	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/internal/domain/enum"
	"github.com/tindahan/poscore/pkg/currency"
)

// paymentMethodOrder returns the report's methods in the canonical display
// order; map iteration order would shuffle the tender section between prints.
func paymentMethodOrder(report *shift.ZReport) []enum.PaymentMethod {
	ordered := make([]enum.PaymentMethod, 0, len(report.ByMethod))
	for _, method := range enum.PaymentMethods() {
		if _, ok := report.ByMethod[method]; ok {
			ordered = append(ordered, method)
		}
	}
	return ordered
}

const dateLayout = "2006-01-02 15:04"

// Compose prices the order and assembles a receipt value object. Totals are
// recomputed from the order's current state through the engine.
func Compose(engine *pricing.Engine, order entity.Order, payments []entity.Payment, header entity.ReceiptHeader, cashier, shiftID string, at time.Time) (*entity.Receipt, error) {
	breakdown, err := engine.OrderBreakdown(&order)
	if err != nil {
		return nil, err
	}

	items := make([]entity.ReceiptItem, 0, len(order.Items))
	for i := range order.Items {
		line := &order.Items[i]
		amounts, err := engine.LineItemAmounts(line)
		if err != nil {
			return nil, err
		}
		items = append(items, entity.ReceiptItem{
			Name:      line.Product.Name,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
			Discount:  amounts.Gross.Sub(amounts.Net),
			Total:     amounts.Net,
		})
	}

	pays := make([]entity.ReceiptPayment, 0, len(payments))
	for i := range payments {
		p := &payments[i]
		pays = append(pays, entity.ReceiptPayment{
			Method:   p.Method.String(),
			Received: p.AmountReceived,
			Change:   p.ComputedChange(),
		})
	}

	return &entity.Receipt{
		Header:   header,
		Date:     at.Format(dateLayout),
		Cashier:  cashier,
		ShiftID:  shiftID,
		Items:    items,
		Gross:    breakdown.Gross,
		Discount: breakdown.Discount,
		Tax:      breakdown.Tax,
		Net:      breakdown.Net,
		Payments: pays,
	}, nil
}

// Render produces the ESC/POS byte stream for a receipt.
func Render(r *entity.Receipt, f *currency.Formatter, charWidth int) []byte {
	d := NewDocument(charWidth)

	d.SetAlign(AlignCenter).SetBold(true).SetFontSize(FontDouble)
	d.Text(r.Header.StoreName)
	d.SetFontSize(FontNormal).SetBold(false)
	if r.Header.Address != "" {
		d.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		d.Text(r.Header.Phone)
	}
	if r.Header.TaxID != "" {
		d.Text("TIN: " + r.Header.TaxID)
	}

	d.SetAlign(AlignLeft).Separator('-')
	d.KeyValue("Date", r.Date)
	if r.Cashier != "" {
		d.KeyValue("Cashier", r.Cashier)
	}
	if r.ShiftID != "" {
		d.KeyValue("Shift", r.ShiftID)
	}
	d.Separator('-')

	for i := range r.Items {
		item := &r.Items[i]
		d.Text(item.Name)
		qty := fmt.Sprintf("  %d x %s", item.Quantity, f.Format(item.UnitPrice))
		d.KeyValue(qty, f.Format(item.Total))
		if item.Discount.IsPositive() {
			d.KeyValue("  less discount", "-"+f.Format(item.Discount))
		}
	}

	d.Separator('-')
	d.KeyValue("Gross", f.Format(r.Gross))
	if r.Discount.IsPositive() {
		d.KeyValue("Discount", "-"+f.Format(r.Discount))
	}
	if r.Tax.IsPositive() {
		d.KeyValue("VAT", f.Format(r.Tax))
	}
	d.SetBold(true)
	d.KeyValue("TOTAL", f.Format(r.Net))
	d.SetBold(false)

	for i := range r.Payments {
		p := &r.Payments[i]
		d.KeyValue(p.Method, f.Format(p.Received))
		if p.Change.IsPositive() {
			d.KeyValue("change", f.Format(p.Change))
		}
	}

	d.LineFeed()
	d.SetAlign(AlignCenter).Text("Salamat po!")
	d.Cut()
	return d.Bytes()
}

// RenderZReport produces the ESC/POS byte stream for an end-of-shift report.
func RenderZReport(report *shift.ZReport, header entity.ReceiptHeader, f *currency.Formatter, charWidth int) []byte {
	d := NewDocument(charWidth)

	d.SetAlign(AlignCenter).SetBold(true)
	d.Text(header.StoreName)
	d.Text("Z-REPORT")
	d.SetBold(false)
	d.SetAlign(AlignLeft).Separator('=')

	d.KeyValue("Shift", report.ShiftID.String()[:8])
	d.KeyValue("Orders", fmt.Sprintf("%d", report.OrderCount))
	d.KeyValue("Voids", fmt.Sprintf("%d", report.VoidCount))
	d.Separator('-')

	d.KeyValue("Gross sales", f.Format(report.Gross))
	d.KeyValue("Discounts", "-"+f.Format(report.DiscountTotal))
	d.KeyValue("VAT", f.Format(report.TaxTotal))
	d.SetBold(true)
	d.KeyValue("Net sales", f.Format(report.Net))
	d.SetBold(false)
	d.Separator('-')

	for _, method := range paymentMethodOrder(report) {
		d.KeyValue(method.String(), f.Format(report.ByMethod[method]))
	}
	d.Separator('-')

	d.KeyValue("Opening float", f.Format(report.OpeningFloat))
	d.KeyValue("Cash received", f.Format(report.CashReceived))
	d.KeyValue("Change given", "-"+f.Format(report.ChangeGiven))
	d.KeyValue("Pay-ins", f.Format(report.PayIns))
	d.KeyValue("Pay-outs", "-"+f.Format(report.PayOuts))
	d.SetBold(true)
	d.KeyValue("Expected drawer", f.Format(report.ExpectedCash))
	d.SetBold(false)

	d.Cut()
	return d.Bytes()
}
