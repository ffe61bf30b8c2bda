package response

import (
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/usecase"
)

type DepositResponse struct {
	ID                 string     `json:"id"`
	InvestorID         string     `json:"investor_id"`
	GrossAmount        float64    `json:"gross_amount"`
	Charges            float64    `json:"charges"`
	Amount             float64    `json:"amount"`
	ConfirmationStatus string     `json:"confirmation_status"`
	ReceiptURL         string     `json:"receipt_url,omitempty"`
	InvestorReceiptURL string     `json:"investor_receipt_url,omitempty"`
	InvestorNotes      string     `json:"investor_notes,omitempty"`
	Notes              string     `json:"notes,omitempty"`
	VerifiedAt         *time.Time `json:"verified_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

type DepositLogResponse struct {
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	FromStatus string    `json:"from_status"`
	ToStatus   string    `json:"to_status"`
	ActorID    string    `json:"actor_id"`
	ActorRole  string    `json:"actor_role"`
	Note       string    `json:"note,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type DepositDetailResponse struct {
	Deposit DepositResponse      `json:"deposit"`
	Log     []DepositLogResponse `json:"log"`
}

func FromDepositDetail(d usecase.DepositDetail) DepositDetailResponse {
	resp := DepositDetailResponse{
		Deposit: fromDeposit(d.Deposit),
		Log:     make([]DepositLogResponse, 0, len(d.Log)),
	}
	for _, l := range d.Log {
		resp.Log = append(resp.Log, fromDepositLog(l))
	}
	return resp
}

func fromDeposit(d entities.InvestorDeposit) DepositResponse {
	return DepositResponse{
		ID:                 d.ID,
		InvestorID:         d.InvestorID,
		GrossAmount:        d.GrossAmount,
		Charges:            d.Charges,
		Amount:             d.Amount,
		ConfirmationStatus: string(d.ConfirmationStatus),
		ReceiptURL:         d.ReceiptURL,
		InvestorReceiptURL: d.InvestorReceiptURL,
		InvestorNotes:      d.InvestorNotes,
		Notes:              d.Notes,
		VerifiedAt:         d.VerifiedAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func fromDepositLog(l entities.DepositLog) DepositLogResponse {
	return DepositLogResponse{
		ID:         l.ID,
		Action:     l.Action,
		FromStatus: string(l.FromStatus),
		ToStatus:   string(l.ToStatus),
		ActorID:    l.ActorID,
		ActorRole:  string(l.ActorRole),
		Note:       l.Note,
		CreatedAt:  l.CreatedAt,
	}
}
