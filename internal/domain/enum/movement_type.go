package enum

// MovementType classifies an entry in the cash drawer ledger.
// Movements are never modified or deleted; voids create inverse entries.
type MovementType string

const (
	MovementTypeOpeningFloat MovementType = "opening_float"
	MovementTypeSale         MovementType = "sale"
	MovementTypePayIn        MovementType = "pay_in"
	MovementTypePayOut       MovementType = "pay_out"
	MovementTypeVoid         MovementType = "void"
)

// Valid reports whether t is a recognized movement type.
func (t MovementType) Valid() bool {
	switch t {
	case MovementTypeOpeningFloat, MovementTypeSale, MovementTypePayIn,
		MovementTypePayOut, MovementTypeVoid:
		return true
	}
	return false
}

func (t MovementType) String() string {
	return string(t)
}

// DrawerVariance classifies the gap between declared and expected cash at
// shift close.
type DrawerVariance string

const (
	DrawerVarianceNormal   DrawerVariance = "normal"
	DrawerVarianceWarning  DrawerVariance = "warning"
	DrawerVarianceCritical DrawerVariance = "critical"
)
