package response

import (
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/usecase"
)

type RepairResponse struct {
	ID                string     `json:"id"`
	CustomerID        string     `json:"customer_id"`
	TechnicianID      string     `json:"technician_id,omitempty"`
	Status            string     `json:"status"`
	Device            string     `json:"device"`
	IssueSummary      string     `json:"issue_summary"`
	Diagnosis         string     `json:"diagnosis,omitempty"`
	IntakePhotos      []string   `json:"intake_photos,omitempty"`
	PartsCost         float64    `json:"parts_cost"`
	LaborCost         float64    `json:"labor_cost"`
	DiagnosticFee     float64    `json:"diagnostic_fee"`
	TotalQuote        float64    `json:"total_quote"`
	QuoteValidUntil   *time.Time `json:"quote_valid_until,omitempty"`
	FinalCost         *float64   `json:"final_cost,omitempty"`
	PaymentStatus     string     `json:"payment_status"`
	WarrantyMonths    int        `json:"warranty_months"`
	WarrantyExpiresAt *time.Time `json:"warranty_expires_at,omitempty"`
	Rating            *int       `json:"rating,omitempty"`
	ReviewComment     string     `json:"review_comment,omitempty"`
	ReceivedAt        *time.Time `json:"received_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type RepairPaymentResponse struct {
	ID                string    `json:"id"`
	Amount            float64   `json:"amount"`
	Method            string    `json:"method,omitempty"`
	ProviderPaymentID string    `json:"provider_payment_id,omitempty"`
	PaidAt            time.Time `json:"paid_at"`
}

type RepairProgressResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type RepairDetailResponse struct {
	Repair   RepairResponse           `json:"repair"`
	Payments []RepairPaymentResponse  `json:"payments"`
	Progress []RepairProgressResponse `json:"progress"`
}

func FromRepairDetail(d usecase.RepairDetail) RepairDetailResponse {
	resp := RepairDetailResponse{
		Repair:   fromRepair(d.Repair),
		Payments: make([]RepairPaymentResponse, 0, len(d.Payments)),
		Progress: make([]RepairProgressResponse, 0, len(d.Progress)),
	}
	for _, p := range d.Payments {
		resp.Payments = append(resp.Payments, fromRepairPayment(p))
	}
	for _, e := range d.Progress {
		resp.Progress = append(resp.Progress, fromRepairProgress(e))
	}
	return resp
}

func fromRepair(r entities.RepairRequest) RepairResponse {
	return RepairResponse{
		ID:                r.ID,
		CustomerID:        r.CustomerID,
		TechnicianID:      r.TechnicianID,
		Status:            string(r.Status),
		Device:            r.Device,
		IssueSummary:      r.IssueSummary,
		Diagnosis:         r.Diagnosis,
		IntakePhotos:      r.IntakePhotos,
		PartsCost:         r.PartsCost,
		LaborCost:         r.LaborCost,
		DiagnosticFee:     r.DiagnosticFee,
		TotalQuote:        r.TotalQuote,
		QuoteValidUntil:   r.QuoteValidUntil,
		FinalCost:         r.FinalCost,
		PaymentStatus:     string(r.PaymentStatus),
		WarrantyMonths:    r.WarrantyMonths,
		WarrantyExpiresAt: r.WarrantyExpiresAt,
		Rating:            r.Rating,
		ReviewComment:     r.ReviewComment,
		ReceivedAt:        r.ReceivedAt,
		CompletedAt:       r.CompletedAt,
		CreatedAt:         r.CreatedAt,
		UpdatedAt:         r.UpdatedAt,
	}
}

func fromRepairPayment(p entities.RepairPayment) RepairPaymentResponse {
	return RepairPaymentResponse{
		ID:                p.ID,
		Amount:            p.Amount,
		Method:            p.Method,
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            p.PaidAt,
	}
}

func fromRepairProgress(e entities.RepairProgress) RepairProgressResponse {
	return RepairProgressResponse{
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
