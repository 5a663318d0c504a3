package enum

// PaymentMethod identifies how a payment was tendered.
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodBankTransfer PaymentMethod = "banktransfer"
	PaymentMethodCreditCard   PaymentMethod = "creditcard"
	PaymentMethodDebitCard    PaymentMethod = "debitcard"
	PaymentMethodGCash        PaymentMethod = "gcash"
	PaymentMethodPayMaya      PaymentMethod = "paymaya"
)

// PaymentMethods lists every recognized payment method.
func PaymentMethods() []PaymentMethod {
	return []PaymentMethod{
		PaymentMethodCash,
		PaymentMethodBankTransfer,
		PaymentMethodCreditCard,
		PaymentMethodDebitCard,
		PaymentMethodGCash,
		PaymentMethodPayMaya,
	}
}

// Valid reports whether m is a recognized payment method.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBankTransfer, PaymentMethodCreditCard,
		PaymentMethodDebitCard, PaymentMethodGCash, PaymentMethodPayMaya:
		return true
	}
	return false
}

// IsCash reports whether the method settles through the cash drawer.
// Only cash payments produce change.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentMethodCash
}

func (m PaymentMethod) String() string {
	return string(m)
}
