package entities

import "time"

// RepairStatus represents the device repair request lifecycle.

type RepairStatus string

const (
	RepairStatusPending        RepairStatus = "pending"
	RepairStatusReceived       RepairStatus = "received"
	RepairStatusDiagnosing     RepairStatus = "diagnosing"
	RepairStatusDiagnosed      RepairStatus = "diagnosed"
	RepairStatusQuoteSent      RepairStatus = "quote_sent"
	RepairStatusQuoteApproved  RepairStatus = "quote_approved"
	RepairStatusQuoteRejected  RepairStatus = "quote_rejected"
	RepairStatusWaitingParts   RepairStatus = "waiting_parts"
	RepairStatusInRepair       RepairStatus = "in_repair"
	RepairStatusTesting        RepairStatus = "testing"
	RepairStatusReadyForPickup RepairStatus = "ready_for_pickup"
	RepairStatusCompleted      RepairStatus = "completed"
	RepairStatusCancelled      RepairStatus = "cancelled"
)

func (s RepairStatus) Terminal() bool {
	switch s {
	case RepairStatusCompleted, RepairStatusCancelled, RepairStatusQuoteRejected:
		return true
	}
	return false
}

// RepairPaymentStatus is the derived payment state of a repair.
type RepairPaymentStatus string

const (
	RepairPaymentUnpaid  RepairPaymentStatus = "unpaid"
	RepairPaymentPartial RepairPaymentStatus = "partial"
	RepairPaymentPaid    RepairPaymentStatus = "paid"
)

// RepairRequest is a device repair request persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (technician_id-index): technician_id
//
// Monetary representation:
//   - TotalQuote is always recomputed as PartsCost + LaborCost + DiagnosticFee.
//   - FinalCost is set exactly once, at quote approval, and never recomputed
//     afterwards even if the underlying cost fields are edited later.

type RepairRequest struct {
	ID           string       `json:"id"`
	CustomerID   string       `json:"customer_id"`
	TechnicianID string       `json:"technician_id,omitempty"`
	Status       RepairStatus `json:"status"`
	Device       string       `json:"device"`
	IssueSummary string       `json:"issue_summary"`
	Diagnosis    string       `json:"diagnosis,omitempty"`
	IntakePhotos []string     `json:"intake_photos,omitempty"`

	PartsCost       float64    `json:"parts_cost"`
	LaborCost       float64    `json:"labor_cost"`
	DiagnosticFee   float64    `json:"diagnostic_fee"`
	TotalQuote      float64    `json:"total_quote"`
	QuoteValidUntil *time.Time `json:"quote_valid_until,omitempty"`
	FinalCost       *float64   `json:"final_cost,omitempty"`

	PaymentStatus     RepairPaymentStatus `json:"payment_status"`
	WarrantyMonths    int                 `json:"warranty_months"`
	WarrantyExpiresAt *time.Time          `json:"warranty_expires_at,omitempty"`

	Rating        *int   `json:"rating,omitempty"`
	ReviewComment string `json:"review_comment,omitempty"`

	ReceivedAt     *time.Time `json:"received_at,omitempty"`
	DiagnosedAt    *time.Time `json:"diagnosed_at,omitempty"`
	QuoteSentAt    *time.Time `json:"quote_sent_at,omitempty"`
	QuoteDecidedAt *time.Time `json:"quote_decided_at,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// RepairProgress is the append-only audit record for repair transitions.
type RepairProgress struct {
	ID         string       `json:"id"`
	RepairID   string       `json:"repair_id"`
	Action     string       `json:"action"`
	FromStatus RepairStatus `json:"from_status"`
	ToStatus   RepairStatus `json:"to_status"`
	ActorID    string       `json:"actor_id"`
	ActorRole  Role         `json:"actor_role"`
	Note       string       `json:"note,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
}

// RepairPayment records a captured payment fact against a repair.
type RepairPayment struct {
	ID                string    `json:"id"`
	RepairID          string    `json:"repair_id"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
}

// TechnicianRating is the running review aggregate for one technician,
// recomputed from all rated repairs inside the same transaction as the
// review write to avoid lost updates.
type TechnicianRating struct {
	TechnicianID string    `json:"technician_id"`
	Average      float64   `json:"average"`
	RatedCount   int       `json:"rated_count"`
	UpdatedAt    time.Time `json:"updated_at"`
}
