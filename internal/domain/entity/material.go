package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Material is one ingredient row of a recipe: the quantity of the linked
// product consumed per recipe yield, expressed in Measurement units.
// Product must be non-nil; a material without a linked product is a data
// integrity error, never a silent skip.
type Material struct {
	ID          uuid.UUID       `json:"id"`
	Quantity    decimal.Decimal `json:"quantity"`
	Measurement string          `json:"measurement"`
	Cost        decimal.Decimal `json:"cost"`
	Product     *Product        `json:"product"`
}

// Recipe yields Quantity units (in Measurement) by consuming its materials.
// Cost is the derived total material cost of one yield.
type Recipe struct {
	Materials   []Material      `json:"materials"`
	Quantity    decimal.Decimal `json:"quantity"`
	Measurement string          `json:"measurement"`
	Cost        decimal.Decimal `json:"cost"`
}
