package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is the catalog record a line item or material points at.
// Price is the unit sale price; Cost is the purchase cost of exactly one
// Measurement unit of stock. Quantity is stock on hand, tracked in
// Measurement units.
type Product struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Cost        decimal.Decimal `json:"cost"`
	Quantity    decimal.Decimal `json:"quantity"`
	Measurement string          `json:"measurement"`
	ApplyTax    bool            `json:"apply_tax"`
}
