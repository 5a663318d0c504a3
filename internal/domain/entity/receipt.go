package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store/business header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
	TaxID     string `json:"tax_id,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Discount  decimal.Decimal `json:"discount"`
	Total     decimal.Decimal `json:"total"`
}

// ReceiptPayment is one tender line in the receipt footer.
type ReceiptPayment struct {
	Method   string          `json:"method"`
	Received decimal.Decimal `json:"received"`
	Change   decimal.Decimal `json:"change"`
}

// Receipt is a value object representing a printable receipt. It is composed
// from order and payment data at render time and holds no live state.
type Receipt struct {
	Header   ReceiptHeader    `json:"header"`
	Date     string           `json:"date"`
	Cashier  string           `json:"cashier,omitempty"`
	ShiftID  string           `json:"shift_id,omitempty"`
	Items    []ReceiptItem    `json:"items"`
	Gross    decimal.Decimal  `json:"gross"`
	Discount decimal.Decimal  `json:"discount"`
	Tax      decimal.Decimal  `json:"tax"`
	Net      decimal.Decimal  `json:"net"`
	Payments []ReceiptPayment `json:"payments"`
}
