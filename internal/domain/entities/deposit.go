package entities

import "time"

// DepositConfirmationStatus represents the two-party deposit confirmation
// lifecycle. Funds are credited to the investor's balance by an external
// collaborator only after the deposit reaches confirmed; nothing in this
// engine touches the ledger balance directly.

type DepositConfirmationStatus string

const (
	DepositStatusAwaitingPayment   DepositConfirmationStatus = "awaiting_payment"
	DepositStatusAwaitingReceipt   DepositConfirmationStatus = "awaiting_receipt"
	DepositStatusAwaitingAdmin     DepositConfirmationStatus = "awaiting_admin_confirmation"
	DepositStatusPendingConfirm    DepositConfirmationStatus = "pending_confirmation"
	DepositStatusConfirmed         DepositConfirmationStatus = "confirmed"
	DepositStatusDisputed          DepositConfirmationStatus = "disputed"
)

func (s DepositConfirmationStatus) Terminal() bool {
	return s == DepositStatusConfirmed
}

// InvestorDeposit is an investor cash deposit persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (investor_id-index): investor_id
//
// Invariant: Amount == GrossAmount - Charges after every transition that
// touches either field, and Charges >= 0.

type InvestorDeposit struct {
	ID                 string                    `json:"id"`
	InvestorID         string                    `json:"investor_id"`
	GrossAmount        float64                   `json:"gross_amount"`
	Charges            float64                   `json:"charges"`
	Amount             float64                   `json:"amount"`
	ConfirmationStatus DepositConfirmationStatus `json:"confirmation_status"`
	ReceiptURL         string                    `json:"receipt_url,omitempty"`
	InvestorReceiptURL string                    `json:"investor_receipt_url,omitempty"`
	InvestorNotes      string                    `json:"investor_notes,omitempty"`
	Notes              string                    `json:"notes,omitempty"`
	VerifiedAt         *time.Time                `json:"verified_at,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// DepositLog is the append-only audit record for deposit transitions.
type DepositLog struct {
	ID         string                    `json:"id"`
	DepositID  string                    `json:"deposit_id"`
	Action     string                    `json:"action"`
	FromStatus DepositConfirmationStatus `json:"from_status"`
	ToStatus   DepositConfirmationStatus `json:"to_status"`
	ActorID    string                    `json:"actor_id"`
	ActorRole  Role                      `json:"actor_role"`
	Note       string                    `json:"note,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}
