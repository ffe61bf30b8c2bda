package response

import (
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/usecase"
)

type BookingResponse struct {
	ID            string    `json:"id"`
	ServiceID     string    `json:"service_id"`
	CustomerID    string    `json:"customer_id"`
	Status        string    `json:"status"`
	ScheduledDate string    `json:"scheduled_date"`
	ScheduledTime string    `json:"scheduled_time"`
	Price         float64   `json:"price"`
	FinalPrice    *float64  `json:"final_price,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type QuoteResponse struct {
	ID                string     `json:"id"`
	BookingID         string     `json:"booking_id"`
	Status            string     `json:"status"`
	MaterialCost      float64    `json:"material_cost"`
	LaborCost         float64    `json:"labor_cost"`
	LaborHours        float64    `json:"labor_hours"`
	TotalCost         float64    `json:"total_cost"`
	DownPaymentAmount float64    `json:"down_payment_amount"`
	ValidityDays      int        `json:"validity_days"`
	ValidUntil        *time.Time `json:"valid_until,omitempty"`
	SentAt            *time.Time `json:"sent_at,omitempty"`
	DecidedAt         *time.Time `json:"decided_at,omitempty"`
}

type QuoteHistoryResponse struct {
	ID         string    `json:"id"`
	QuoteID    string    `json:"quote_id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type MeasurementResponse struct {
	BookingID string             `json:"booking_id"`
	Values    map[string]float64 `json:"values"`
	Note      string             `json:"note,omitempty"`
	TakenBy   string             `json:"taken_by"`
	UpdatedAt time.Time          `json:"updated_at"`
}

type BookingPaymentResponse struct {
	ID                string    `json:"id"`
	Type              string    `json:"type"`
	Amount            float64   `json:"amount"`
	ProviderPaymentID string    `json:"provider_payment_id"`
	PaidAt            time.Time `json:"paid_at"`
}

type ProgressEntryResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type BookingDetailResponse struct {
	Booking      BookingResponse          `json:"booking"`
	Quote        *QuoteResponse           `json:"quote,omitempty"`
	QuoteHistory []QuoteHistoryResponse   `json:"quote_history,omitempty"`
	Measurement  *MeasurementResponse     `json:"measurement,omitempty"`
	Payments     []BookingPaymentResponse `json:"payments"`
	Progress     []ProgressEntryResponse  `json:"progress"`
}

func FromBookingDetail(d usecase.BookingDetail) BookingDetailResponse {
	resp := BookingDetailResponse{
		Booking:  fromBooking(d.Booking),
		Payments: make([]BookingPaymentResponse, 0, len(d.Payments)),
		Progress: make([]ProgressEntryResponse, 0, len(d.Progress)),
	}
	if d.Quote != nil {
		q := fromQuote(*d.Quote)
		resp.Quote = &q
		resp.QuoteHistory = make([]QuoteHistoryResponse, 0, len(d.QuoteHistory))
		for _, h := range d.QuoteHistory {
			resp.QuoteHistory = append(resp.QuoteHistory, fromQuoteHistory(h))
		}
	}
	if d.Measurement != nil {
		m := fromMeasurement(*d.Measurement)
		resp.Measurement = &m
	}
	for _, p := range d.Payments {
		resp.Payments = append(resp.Payments, fromBookingPayment(p))
	}
	for _, e := range d.Progress {
		resp.Progress = append(resp.Progress, fromProgressEntry(e))
	}
	return resp
}

func fromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		ServiceID:     b.ServiceID,
		CustomerID:    b.CustomerID,
		Status:        string(b.Status),
		ScheduledDate: b.ScheduledDate,
		ScheduledTime: b.ScheduledTime,
		Price:         b.Price,
		FinalPrice:    b.FinalPrice,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

func fromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:                q.ID,
		BookingID:         q.BookingID,
		Status:            string(q.Status),
		MaterialCost:      q.MaterialCost,
		LaborCost:         q.LaborCost,
		LaborHours:        q.LaborHours,
		TotalCost:         q.TotalCost,
		DownPaymentAmount: q.DownPaymentAmount,
		ValidityDays:      q.ValidityDays,
		ValidUntil:        q.ValidUntil,
		SentAt:            q.SentAt,
		DecidedAt:         q.DecidedAt,
	}
}

func fromQuoteHistory(h entities.QuoteHistory) QuoteHistoryResponse {
	return QuoteHistoryResponse{
		ID:         h.ID,
		QuoteID:    h.QuoteID,
		Action:     h.Action,
		FromStatus: string(h.FromStatus),
		ToStatus:   string(h.ToStatus),
		ActorID:    h.ActorID,
		ActorRole:  string(h.ActorRole),
		Note:       h.Note,
		CreatedAt:  h.CreatedAt,
	}
}

func fromMeasurement(m entities.Measurement) MeasurementResponse {
	return MeasurementResponse{
		BookingID: m.BookingID,
		Values:    m.Values,
		Note:      m.Note,
		TakenBy:   m.TakenBy,
		UpdatedAt: m.UpdatedAt,
	}
}

func fromBookingPayment(p entities.BookingPayment) BookingPaymentResponse {
	return BookingPaymentResponse{
		ID:                p.ID,
		Type:              string(p.Type),
		Amount:            p.Amount,
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            p.PaidAt,
	}
}

func fromProgressEntry(e entities.ProgressEntry) ProgressEntryResponse {
	return ProgressEntryResponse{
		ID:         e.ID,
		Action:     e.Action,
		FromStatus: string(e.FromStatus),
		ToStatus:   string(e.ToStatus),
		ActorID:    e.ActorID,
		ActorRole:  string(e.ActorRole),
		Note:       e.Note,
		CreatedAt:  e.CreatedAt,
	}
}
