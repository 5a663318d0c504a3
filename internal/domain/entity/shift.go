package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tindahan/poscore/internal/domain/enum"
)

// CashMovement is an immutable entry in a shift's cash drawer ledger.
// Amount is signed from the drawer's point of view: sales and pay-ins are
// positive, pay-outs and voids negative. ReferenceID links back to the
// originating order or manual operation.
type CashMovement struct {
	ID          uuid.UUID          `json:"id"`
	Type        enum.MovementType  `json:"type"`
	Method      enum.PaymentMethod `json:"method,omitempty"`
	Amount      decimal.Decimal    `json:"amount"`
	Description string             `json:"description,omitempty"`
	ReferenceID *uuid.UUID         `json:"reference_id,omitempty"`
	CreatedAt   time.Time          `json:"created_at"`
}

// Shift is one register session between open and close. ExpectedCash,
// DeclaredCash and Variance are filled in at close time from the Z-report.
type Shift struct {
	ID           uuid.UUID           `json:"id"`
	OpenedBy     string              `json:"opened_by"`
	Status       enum.ShiftStatus    `json:"status"`
	OpeningFloat decimal.Decimal     `json:"opening_float"`
	Movements    []CashMovement      `json:"movements,omitempty"`
	ExpectedCash decimal.Decimal     `json:"expected_cash"`
	DeclaredCash decimal.Decimal     `json:"declared_cash"`
	Variance     decimal.Decimal     `json:"variance"`
	VarianceTag  enum.DrawerVariance `json:"variance_tag,omitempty"`
	OpenedAt     time.Time           `json:"opened_at"`
	ClosedAt     *time.Time          `json:"closed_at,omitempty"`
}
