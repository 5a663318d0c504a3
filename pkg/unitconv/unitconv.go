// Package unitconv converts quantities between measurement units within the
// same physical family (mass, volume). The synthetic "piece(s)" unit covers
// discrete goods and only converts to itself.
package unitconv

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/pkg/apperror"
)

// Family is a dimensional category within which conversions are valid.
type Family string

const (
	FamilyMass   Family = "mass"
	FamilyVolume Family = "volume"
	FamilyPiece  Family = "piece"
)

type unitDef struct {
	family Family
	// factor converts one of this unit into the family base unit
	// (g for mass, mL for volume).
	factor decimal.Decimal
}

var units = map[string]unitDef{
	"mg":    {FamilyMass, decimal.NewFromFloat(0.001)},
	"g":     {FamilyMass, decimal.NewFromInt(1)},
	"kg":    {FamilyMass, decimal.NewFromInt(1000)},
	"oz":    {FamilyMass, decimal.NewFromFloat(28.349523125)},
	"lb":    {FamilyMass, decimal.NewFromFloat(453.59237)},
	"ml":    {FamilyVolume, decimal.NewFromInt(1)},
	"l":     {FamilyVolume, decimal.NewFromInt(1000)},
	"fl oz": {FamilyVolume, decimal.NewFromFloat(29.5735295625)},
	"gal":   {FamilyVolume, decimal.NewFromFloat(3785.411784)},
}

// Discrete goods are tracked in pieces under a few spellings.
var pieceAliases = map[string]bool{
	"piece(s)": true,
	"pieces":   true,
	"piece":    true,
	"pcs":      true,
}

func lookup(unit string) (unitDef, error) {
	key := strings.ToLower(strings.TrimSpace(unit))
	if pieceAliases[key] {
		return unitDef{FamilyPiece, decimal.NewFromInt(1)}, nil
	}
	def, ok := units[key]
	if !ok {
		return unitDef{}, apperror.NewConversionError("unknown unit %q", unit)
	}
	return def, nil
}

// UnitFamily returns the dimensional family of a unit string.
func UnitFamily(unit string) (Family, error) {
	def, err := lookup(unit)
	if err != nil {
		return "", err
	}
	return def.family, nil
}

// Factor returns the multiplier that converts one `from` unit into `to`
// units. It fails when either unit is unrecognized or the units belong to
// different families; "piece(s)" only converts to itself.
func Factor(from, to string) (decimal.Decimal, error) {
	fromDef, err := lookup(from)
	if err != nil {
		return decimal.Zero, err
	}
	toDef, err := lookup(to)
	if err != nil {
		return decimal.Zero, err
	}
	if fromDef.family != toDef.family {
		return decimal.Zero, apperror.NewConversionError(
			"incompatible unit family: cannot convert %q (%s) to %q (%s)",
			from, fromDef.family, to, toDef.family)
	}
	return fromDef.factor.Div(toDef.factor), nil
}

// Convert expresses qty `from` units as `to` units. Same failure modes as
// Factor. Precision is preserved; callers round at display boundaries.
func Convert(qty decimal.Decimal, from, to string) (decimal.Decimal, error) {
	factor, err := Factor(from, to)
	if err != nil {
		return decimal.Zero, err
	}
	return qty.Mul(factor), nil
}
