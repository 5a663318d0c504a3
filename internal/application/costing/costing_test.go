package costing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tindahan/poscore/internal/domain/entity"
	"github.com/tindahan/poscore/pkg/apperror"
)

func TestMaterialCostSameUnit(t *testing.T) {
	cost, err := MaterialCost(decimal.NewFromInt(1), "kg", decimal.NewFromInt(1200), "kg")
	require.NoError(t, err)
	assert.True(t, cost.Equal(decimal.NewFromInt(1200)), "got %s", cost)
}

func TestMaterialCostMetricConversion(t *testing.T) {
	// 100 g of a product costing 1000 per kg
	cost, err := MaterialCost(decimal.NewFromInt(100), "g", decimal.NewFromInt(1000), "kg")
	require.NoError(t, err)
	assert.Equal(t, "100.00", cost.StringFixed(2))
}

func TestMaterialCostImperialConversion(t *testing.T) {
	// 100 g of a product costing 500 per lb
	cost, err := MaterialCost(decimal.NewFromInt(100), "g", decimal.NewFromInt(500), "lb")
	require.NoError(t, err)
	assert.Equal(t, "110.23", cost.StringFixed(2))

	// 250 g at 800 per lb keeps full precision until the final rounding
	cost, err = MaterialCost(decimal.NewFromInt(250), "g", decimal.NewFromInt(800), "lb")
	require.NoError(t, err)
	assert.Equal(t, "440.92", cost.StringFixed(2))
}

func TestMaterialCostIncompatibleUnits(t *testing.T) {
	_, err := MaterialCost(decimal.NewFromInt(100), "g", decimal.NewFromInt(500), "L")
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindConversion))
}

func newMaterial(required float64, unit string, stock float64, stockUnit string) entity.Material {
	return entity.Material{
		ID:          uuid.New(),
		Quantity:    decimal.NewFromFloat(required),
		Measurement: unit,
		Product: &entity.Product{
			ID:          uuid.New(),
			Quantity:    decimal.NewFromFloat(stock),
			Measurement: stockUnit,
			Cost:        decimal.NewFromInt(100),
		},
	}
}

func TestMaxRecipeQuantityBottleneck(t *testing.T) {
	materials := []entity.Material{
		// 1 kg of stock at 100 g per unit supports 10 units
		newMaterial(100, "g", 1, "kg"),
		// 0.25 L of stock at 50 mL per unit supports 5 units
		newMaterial(50, "mL", 0.25, "L"),
	}

	max, err := MaxRecipeQuantity(materials)
	require.NoError(t, err)
	assert.Equal(t, int64(5), max)
}

func TestMaxRecipeQuantityFloorsFractions(t *testing.T) {
	// 500 g of stock at 150 g per unit supports 3.33 units
	materials := []entity.Material{newMaterial(150, "g", 500, "g")}

	max, err := MaxRecipeQuantity(materials)
	require.NoError(t, err)
	assert.Equal(t, int64(3), max)
}

func TestMaxRecipeQuantityMissingProduct(t *testing.T) {
	orphan := entity.Material{
		ID:          uuid.New(),
		Quantity:    decimal.NewFromInt(100),
		Measurement: "g",
	}
	materials := []entity.Material{newMaterial(100, "g", 1, "kg"), orphan}

	_, err := MaxRecipeQuantity(materials)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDataIntegrity))
	assert.Contains(t, err.Error(), orphan.ID.String())
}

func TestMaxRecipeQuantityEmptyRecipe(t *testing.T) {
	_, err := MaxRecipeQuantity(nil)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDataIntegrity))
}

func TestMaxRecipeQuantityZeroRequirement(t *testing.T) {
	materials := []entity.Material{newMaterial(0, "g", 1, "kg")}

	_, err := MaxRecipeQuantity(materials)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))
}

func TestMaxRecipeQuantityExhaustedStock(t *testing.T) {
	materials := []entity.Material{newMaterial(100, "g", 0, "kg")}

	max, err := MaxRecipeQuantity(materials)
	require.NoError(t, err)
	assert.Equal(t, int64(0), max)
}

func TestRecipeCostSumsMaterials(t *testing.T) {
	recipe := &entity.Recipe{
		Materials: []entity.Material{
			{
				ID:          uuid.New(),
				Quantity:    decimal.NewFromInt(100),
				Measurement: "g",
				Product: &entity.Product{
					ID:          uuid.New(),
					Cost:        decimal.NewFromInt(1000),
					Measurement: "kg",
				},
			},
			{
				ID:          uuid.New(),
				Quantity:    decimal.NewFromInt(250),
				Measurement: "g",
				Product: &entity.Product{
					ID:          uuid.New(),
					Cost:        decimal.NewFromInt(800),
					Measurement: "lb",
				},
			},
		},
		Quantity:    decimal.NewFromInt(1),
		Measurement: "piece(s)",
	}

	cost, err := RecipeCost(recipe)
	require.NoError(t, err)
	// 100.00 + 440.92
	assert.Equal(t, "540.92", cost.StringFixed(2))
}

func TestRecipeCostEmptyRecipe(t *testing.T) {
	_, err := RecipeCost(&entity.Recipe{})
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDataIntegrity))
}

func TestRecipeMaterialCostMissingProduct(t *testing.T) {
	m := entity.Material{ID: uuid.New(), Quantity: decimal.NewFromInt(1), Measurement: "g"}
	_, err := RecipeMaterialCost(&m)
	require.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindDataIntegrity))
	assert.Contains(t, err.Error(), m.ID.String())
}
