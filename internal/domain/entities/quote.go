package entities

import "time"

// QuoteStatus represents the lifecycle of a booking quote.
//
// Domain notes:
//   - A quote is unique per booking (1:1) and cannot exist without it.
//   - Status transitions are driven exclusively by the transition executor;
//     quote transitions mirror their outcome onto the parent booking status.

type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusApproved QuoteStatus = "approved"
	QuoteStatusRejected QuoteStatus = "rejected"
)

// Quote is a booking quote persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id (equals booking id, guaranteeing 1 quote per booking)
//
// Monetary representation:
//   - TotalCost is always recomputed server-side as MaterialCost + LaborCost,
//     never trusted from client input.

type Quote struct {
	ID                string      `json:"id"`
	BookingID         string      `json:"booking_id"`
	Status            QuoteStatus `json:"status"`
	MaterialCost      float64     `json:"material_cost"`
	LaborCost         float64     `json:"labor_cost"`
	LaborHours        float64     `json:"labor_hours"`
	TotalCost         float64     `json:"total_cost"`
	DownPaymentAmount float64     `json:"down_payment_amount"`
	ValidityDays      int         `json:"validity_days"`
	ValidUntil        *time.Time  `json:"valid_until,omitempty"`
	SentAt            *time.Time  `json:"sent_at,omitempty"`
	DecidedAt         *time.Time  `json:"decided_at,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

// Expired reports whether the quote deadline has passed. Expiry is enforced
// as a guard at transition time; there is no background expiry sweep.
func (q Quote) Expired(now time.Time) bool {
	return q.ValidUntil != nil && now.After(*q.ValidUntil)
}

// QuoteHistory is the append-only audit record for quote transitions.
type QuoteHistory struct {
	ID         string      `json:"id"`
	QuoteID    string      `json:"quote_id"`
	Action     string      `json:"action"`
	FromStatus QuoteStatus `json:"from_status"`
	ToStatus   QuoteStatus `json:"to_status"`
	ActorID    string      `json:"actor_id"`
	ActorRole  Role        `json:"actor_role"`
	Note       string      `json:"note,omitempty"`
	CreatedAt  time.Time   `json:"created_at"`
}
