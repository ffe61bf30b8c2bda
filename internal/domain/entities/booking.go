package entities

import "time"

// BookingStatus represents the service booking lifecycle.
//
// Domain notes:
//   - Bookings are created as pending by the public booking flow and are
//     mutated exclusively through the transition executor afterwards.
//   - Terminal bookings are never deleted; they are retained for audit.

type BookingStatus string

const (
	BookingStatusPending            BookingStatus = "pending"
	BookingStatusConfirmed          BookingStatus = "confirmed"
	BookingStatusRescheduled        BookingStatus = "rescheduled"
	BookingStatusQuotePending       BookingStatus = "quote_pending"
	BookingStatusQuoteSent          BookingStatus = "quote_sent"
	BookingStatusQuoteApproved      BookingStatus = "quote_approved"
	BookingStatusQuoteRejected      BookingStatus = "quote_rejected"
	BookingStatusAwaitingPayment    BookingStatus = "awaiting_payment"
	BookingStatusPaymentPartial     BookingStatus = "payment_partial"
	BookingStatusInProgress         BookingStatus = "in_progress"
	BookingStatusAwaitingCollection BookingStatus = "awaiting_collection"
	BookingStatusCompleted          BookingStatus = "completed"
	BookingStatusCancelled          BookingStatus = "cancelled"
	BookingStatusNoShow             BookingStatus = "no_show"
)

func (s BookingStatus) Terminal() bool {
	switch s {
	case BookingStatusCompleted, BookingStatusCancelled, BookingStatusNoShow:
		return true
	}
	return false
}

// Booking is a tailoring service booking persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (customer_id-index): customer_id
//
// FinalPrice is set exactly once, when the booking's quote is approved, and
// is never recomputed afterwards.

type Booking struct {
	ID            string        `json:"id"`
	ServiceID     string        `json:"service_id"`
	CustomerID    string        `json:"customer_id"`
	Status        BookingStatus `json:"status"`
	ScheduledDate string        `json:"scheduled_date"`
	ScheduledTime string        `json:"scheduled_time"`
	Price         float64       `json:"price"`
	FinalPrice    *float64      `json:"final_price,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// ProgressEntry is the append-only audit record for booking transitions.
// Entries are immutable once written and strictly time-ordered per booking.
type ProgressEntry struct {
	ID         string        `json:"id"`
	BookingID  string        `json:"booking_id"`
	Action     string        `json:"action"`
	FromStatus BookingStatus `json:"from_status"`
	ToStatus   BookingStatus `json:"to_status"`
	ActorID    string        `json:"actor_id"`
	ActorRole  Role          `json:"actor_role"`
	Note       string        `json:"note,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// Measurement is the zero-or-one measurement sheet owned by a booking.
// Upserted by tailors; keyed by booking id.
type Measurement struct {
	BookingID string             `json:"booking_id"`
	Values    map[string]float64 `json:"values"`
	Note      string             `json:"note,omitempty"`
	TakenBy   string             `json:"taken_by"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
}

// BookingPaymentType distinguishes how a captured payment moves the booking.
type BookingPaymentType string

const (
	BookingPaymentDown    BookingPaymentType = "down"
	BookingPaymentPartial BookingPaymentType = "partial"
	BookingPaymentFinal   BookingPaymentType = "final"
)

// BookingPayment records a captured payment fact consumed from the payment
// collaborator. The engine never initiates payments itself. ProviderResponse
// keeps the provider's raw payment document for audit.
type BookingPayment struct {
	ID                string             `json:"id"`
	BookingID         string             `json:"booking_id"`
	Type              BookingPaymentType `json:"type"`
	Amount            float64            `json:"amount"`
	ProviderPaymentID string             `json:"provider_payment_id"`
	ProviderResponse  string             `json:"provider_response,omitempty"`
	PaidAt            time.Time          `json:"paid_at"`
}
