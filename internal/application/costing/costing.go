// Package costing derives recipe costs and producible quantities from
// unit-converted material consumption. Monetary precision is preserved
// through the calculation; rounding happens only at display boundaries.
package costing

import (
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/pkg/apperror"
	"github.com/tindahan/poscore/pkg/unitconv"
)

// MaterialCost computes the monetary cost of materialQty materialUnit of a
// product whose cost is productCost per one productUnit. The product unit is
// converted into the material unit first, so heterogeneous stock and recipe
// units combine; conversion failures (unknown units, cross-family
// conversions) propagate.
func MaterialCost(materialQty decimal.Decimal, materialUnit string, productCost decimal.Decimal, productUnit string) (decimal.Decimal, error) {
	factor, err := unitconv.Factor(productUnit, materialUnit)
	if err != nil {
		return decimal.Zero, err
	}
	costPerUnit := productCost.Div(factor)
	return costPerUnit.Mul(materialQty), nil
}

// RecipeMaterialCost prices one material row against its linked product's
// stock unit. The material must reference a product.
func RecipeMaterialCost(material *entity.Material) (decimal.Decimal, error) {
	if material.Product == nil {
		return decimal.Zero, apperror.NewDataIntegrityError("material %s has no linked product", material.ID)
	}
	return MaterialCost(material.Quantity, material.Measurement,
		material.Product.Cost, material.Product.Measurement)
}

// RecipeCost sums material costs for one recipe yield. An empty material
// list is an error: a recipe that consumes nothing has no defined cost.
func RecipeCost(recipe *entity.Recipe) (decimal.Decimal, error) {
	if len(recipe.Materials) == 0 {
		return decimal.Zero, apperror.NewDataIntegrityError("recipe has no materials")
	}
	total := decimal.Zero
	for i := range recipe.Materials {
		cost, err := RecipeMaterialCost(&recipe.Materials[i])
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(cost)
	}
	return total, nil
}

// MaxRecipeQuantity returns how many recipe units current stock supports:
// each material's product stock is converted into the material's unit and
// divided by the per-unit requirement, and the scarcest material bounds the
// result (floored). A material without a linked product is a hard failure
// naming the material, never a skip, because skipping would overstate the
// producible quantity. An empty material list is an error, not infinity.
func MaxRecipeQuantity(materials []entity.Material) (int64, error) {
	if len(materials) == 0 {
		return 0, apperror.NewDataIntegrityError("recipe has no materials")
	}

	var minSupportable decimal.Decimal
	for i := range materials {
		m := &materials[i]
		if m.Product == nil {
			return 0, apperror.NewDataIntegrityError("material %s has no linked product", m.ID)
		}
		if !m.Quantity.IsPositive() {
			return 0, apperror.NewFieldError("quantity",
				"material "+m.ID.String()+" requires a positive quantity per recipe unit")
		}

		available, err := unitconv.Convert(m.Product.Quantity, m.Product.Measurement, m.Measurement)
		if err != nil {
			return 0, err
		}
		supportable := available.Div(m.Quantity)
		if i == 0 || supportable.LessThan(minSupportable) {
			minSupportable = supportable
		}
	}

	if minSupportable.IsNegative() {
		return 0, nil
	}
	return minSupportable.Floor().IntPart(), nil
}
