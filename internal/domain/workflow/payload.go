package workflow

import (
	"errors"
	"strings"
)

// Payload is the typed per-action input validated before any guard runs.
// Handlers decode the raw request body into the payload matching
// (entityType, action); arbitrary JSON never reaches the executor.

type Payload interface {
	Validate() error
}

// NoPayload is used by actions that carry no input.
type NoPayload struct{}

func (NoPayload) Validate() error { return nil }

// ---- booking payloads ----

type ReschedulePayload struct {
	ScheduledDate string `json:"scheduled_date"`
	ScheduledTime string `json:"scheduled_time"`
}

func (p ReschedulePayload) Validate() error {
	if strings.TrimSpace(p.ScheduledDate) == "" {
		return errors.New("scheduled_date is required")
	}
	return nil
}

// MaterialLine is one material cost line on a quote draft. Totals are always
// recomputed from the lines server-side.
type MaterialLine struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type DraftQuotePayload struct {
	Materials         []MaterialLine `json:"materials"`
	LaborCost         float64        `json:"labor_cost"`
	LaborHours        float64        `json:"labor_hours"`
	DownPaymentAmount float64        `json:"down_payment_amount"`
	ValidityDays      int            `json:"validity_days"`
}

func (p DraftQuotePayload) Validate() error {
	if p.LaborCost < 0 || p.LaborHours < 0 || p.DownPaymentAmount < 0 {
		return errors.New("cost fields must not be negative")
	}
	if p.ValidityDays <= 0 {
		return errors.New("validity_days must be positive")
	}
	for _, m := range p.Materials {
		if m.Price < 0 || m.Quantity < 0 {
			return errors.New("material lines must not be negative")
		}
	}
	if p.MaterialCost() <= 0 && p.LaborCost <= 0 {
		return errors.New("quote must carry a positive cost")
	}
	return nil
}

func (p DraftQuotePayload) MaterialCost() float64 {
	total := 0.0
	for _, m := range p.Materials {
		qty := m.Quantity
		if qty == 0 {
			qty = 1
		}
		total += m.Price * float64(qty)
	}
	return total
}

type NotePayload struct {
	Note string `json:"note"`
}

func (NotePayload) Validate() error { return nil }

type RejectQuotePayload struct {
	Reason string `json:"reason"`
}

func (p RejectQuotePayload) Validate() error {
	if strings.TrimSpace(p.Reason) == "" {
		return errors.New("reason is required")
	}
	return nil
}

type MeasurementPayload struct {
	Values map[string]float64 `json:"values"`
	Note   string             `json:"note"`
}

func (p MeasurementPayload) Validate() error {
	if len(p.Values) == 0 {
		return errors.New("values are required")
	}
	for name, v := range p.Values {
		if strings.TrimSpace(name) == "" || v <= 0 {
			return errors.New("measurement values must be named and positive")
		}
	}
	return nil
}

type ConfirmPaymentPayload struct {
	ProviderPaymentID string  `json:"provider_payment_id"`
	Amount            float64 `json:"amount"`
}

func (p ConfirmPaymentPayload) Validate() error {
	if strings.TrimSpace(p.ProviderPaymentID) == "" {
		return errors.New("provider_payment_id is required")
	}
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type CancelPayload struct {
	Reason string `json:"reason"`
}

func (CancelPayload) Validate() error { return nil }

// ---- repair payloads ----

type ReceivePayload struct {
	TechnicianID string   `json:"technician_id"`
	IntakePhotos []string `json:"intake_photos"`
}

func (ReceivePayload) Validate() error { return nil }

type DiagnosePayload struct {
	Diagnosis string `json:"diagnosis"`
}

func (p DiagnosePayload) Validate() error {
	if strings.TrimSpace(p.Diagnosis) == "" {
		return errors.New("diagnosis is required")
	}
	return nil
}

type RepairQuotePayload struct {
	PartsCost      float64 `json:"parts_cost"`
	LaborCost      float64 `json:"labor_cost"`
	DiagnosticFee  float64 `json:"diagnostic_fee"`
	ValidityDays   int     `json:"validity_days"`
	WarrantyMonths int     `json:"warranty_months"`
}

func (p RepairQuotePayload) Validate() error {
	if p.PartsCost < 0 || p.LaborCost < 0 || p.DiagnosticFee < 0 {
		return errors.New("cost fields must not be negative")
	}
	if p.PartsCost+p.LaborCost+p.DiagnosticFee <= 0 {
		return errors.New("quote must carry a positive cost")
	}
	if p.ValidityDays <= 0 {
		return errors.New("validity_days must be positive")
	}
	if p.WarrantyMonths < 0 {
		return errors.New("warranty_months must not be negative")
	}
	return nil
}

type RecordPaymentPayload struct {
	Amount            float64 `json:"amount"`
	Method            string  `json:"method"`
	ProviderPaymentID string  `json:"provider_payment_id"`
}

func (p RecordPaymentPayload) Validate() error {
	if p.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type ReviewPayload struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

func (p ReviewPayload) Validate() error {
	if p.Rating < 1 || p.Rating > 5 {
		return errors.New("rating must be between 1 and 5")
	}
	return nil
}

// ---- deposit payloads ----

type UploadReceiptPayload struct {
	ReceiptURL string `json:"receipt_url"`
}

func (p UploadReceiptPayload) Validate() error {
	if strings.TrimSpace(p.ReceiptURL) == "" {
		return errors.New("receipt_url is required")
	}
	return nil
}

type AttachReceiptPayload struct {
	ReceiptURL string  `json:"receipt_url"`
	Charges    float64 `json:"charges"`
}

func (p AttachReceiptPayload) Validate() error {
	if strings.TrimSpace(p.ReceiptURL) == "" {
		return errors.New("receipt_url is required")
	}
	if p.Charges < 0 {
		return errors.New("charges must not be negative")
	}
	return nil
}

type AdminConfirmPayload struct {
	Charges float64 `json:"charges"`
}

func (p AdminConfirmPayload) Validate() error {
	if p.Charges < 0 {
		return errors.New("charges must not be negative")
	}
	return nil
}

type DisputePayload struct {
	Note string `json:"note"`
}

func (p DisputePayload) Validate() error {
	if strings.TrimSpace(p.Note) == "" {
		return errors.New("note is required")
	}
	return nil
}

type ResolveDisputePayload struct {
	Response string `json:"response"`
}

func (p ResolveDisputePayload) Validate() error {
	if strings.TrimSpace(p.Response) == "" {
		return errors.New("response is required")
	}
	return nil
}
