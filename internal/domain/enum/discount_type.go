package enum

// DiscountType determines how a discount amount is interpreted.
type DiscountType string

const (
	// DiscountTypeFixed subtracts the amount directly from the gross.
	DiscountTypeFixed DiscountType = "fixed"
	// DiscountTypePercentage subtracts amount/100 of the gross.
	DiscountTypePercentage DiscountType = "percentage"
)

// Valid reports whether t is a recognized discount type.
func (t DiscountType) Valid() bool {
	return t == DiscountTypeFixed || t == DiscountTypePercentage
}

func (t DiscountType) String() string {
	return string(t)
}
