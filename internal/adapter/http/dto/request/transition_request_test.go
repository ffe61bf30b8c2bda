package request

import (
	"encoding/json"
	"errors"
	"testing"

	"atelier_backoffice/internal/domain/workflow"
)

func TestDecodeTransitionPayload(t *testing.T) {
	t.Run("no-input action tolerates an empty body", func(t *testing.T) {
		p, err := DecodeTransitionPayload(workflow.EntityBooking, workflow.BookingConfirm, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := p.(workflow.NoPayload); !ok {
			t.Fatalf("expected NoPayload, got %T", p)
		}
	})

	t.Run("typed action decodes into its own shape", func(t *testing.T) {
		raw := json.RawMessage(`{"materials":[{"name":"oak panel","price":50,"quantity":2}],"labor_cost":50,"validity_days":14}`)
		p, err := DecodeTransitionPayload(workflow.EntityBooking, workflow.BookingDraftQuote, raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dq, ok := p.(workflow.DraftQuotePayload)
		if !ok {
			t.Fatalf("expected DraftQuotePayload, got %T", p)
		}
		if dq.MaterialCost() != 100 {
			t.Fatalf("expected material cost 100, got %.2f", dq.MaterialCost())
		}
	})

	t.Run("unknown fields are rejected", func(t *testing.T) {
		raw := json.RawMessage(`{"diagnosis":"cracked board","severity":"high"}`)
		_, err := DecodeTransitionPayload(workflow.EntityRepair, workflow.RepairDiagnose, raw)
		if !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload, got %v", err)
		}
	})

	t.Run("malformed json is rejected", func(t *testing.T) {
		_, err := DecodeTransitionPayload(workflow.EntityDeposit, workflow.DepositDispute, json.RawMessage("{"))
		if !errors.Is(err, ErrMalformedPayload) {
			t.Fatalf("expected ErrMalformedPayload, got %v", err)
		}
	})

	t.Run("optional payload action accepts an empty body", func(t *testing.T) {
		p, err := DecodeTransitionPayload(workflow.EntityDeposit, workflow.DepositAdminConfirm, json.RawMessage("null"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ac, ok := p.(workflow.AdminConfirmPayload)
		if !ok {
			t.Fatalf("expected AdminConfirmPayload, got %T", p)
		}
		if ac.Charges != 0 {
			t.Fatalf("expected zero charges, got %.2f", ac.Charges)
		}
	})

	t.Run("optional payload action still decodes a body", func(t *testing.T) {
		p, err := DecodeTransitionPayload(workflow.EntityRepair, workflow.RepairCancel, json.RawMessage(`{"reason":"customer gave up"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		cp, ok := p.(workflow.CancelPayload)
		if !ok {
			t.Fatalf("expected CancelPayload, got %T", p)
		}
		if cp.Reason != "customer gave up" {
			t.Fatalf("unexpected reason %q", cp.Reason)
		}
	})

	t.Run("unknown action", func(t *testing.T) {
		if _, err := DecodeTransitionPayload(workflow.EntityBooking, workflow.Action("teleport"), nil); err == nil {
			t.Fatal("expected an error for an unknown action")
		}
	})

	t.Run("unknown entity type", func(t *testing.T) {
		if _, err := DecodeTransitionPayload(workflow.EntityType("invoice"), workflow.BookingConfirm, nil); err == nil {
			t.Fatal("expected an error for an unknown entity type")
		}
	})
}
