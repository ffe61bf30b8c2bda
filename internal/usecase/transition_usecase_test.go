package usecase

import (
	"context"
	"errors"
	"testing"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
)

// stubWorkflow satisfies all three per-entity executor interfaces so the
// dispatcher test can observe which one was routed to.
type stubWorkflow struct {
	applied *workflow.EntityType
	tag     workflow.EntityType
	payload workflow.Payload
}

func (s *stubWorkflow) Apply(_ context.Context, _ string, _ workflow.Action, _ entities.Actor, payload workflow.Payload) (TransitionResult, error) {
	*s.applied = s.tag
	s.payload = payload
	return TransitionResult{NewState: "routed"}, nil
}

func (s *stubWorkflow) GetByID(context.Context, string) (BookingDetail, error) {
	return BookingDetail{}, nil
}

type stubRepairWorkflow struct{ stubWorkflow }

func (s *stubRepairWorkflow) GetByID(context.Context, string) (RepairDetail, error) {
	return RepairDetail{}, nil
}

type stubDepositWorkflow struct{ stubWorkflow }

func (s *stubDepositWorkflow) GetByID(context.Context, string) (DepositDetail, error) {
	return DepositDetail{}, nil
}

func newDispatcherFixture() (*TransitionUseCase, *workflow.EntityType, *stubWorkflow) {
	applied := workflow.EntityType("")
	booking := &stubWorkflow{applied: &applied, tag: workflow.EntityBooking}
	repair := &stubRepairWorkflow{stubWorkflow{applied: &applied, tag: workflow.EntityRepair}}
	deposit := &stubDepositWorkflow{stubWorkflow{applied: &applied, tag: workflow.EntityDeposit}}
	return NewTransitionUseCase(booking, repair, deposit), &applied, booking
}

func TestTransitionUseCase_Apply(t *testing.T) {
	actor := entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}

	t.Run("blank entity id", func(t *testing.T) {
		uc, _, _ := newDispatcherFixture()
		_, err := uc.Apply(context.Background(), TransitionCommand{
			EntityType: workflow.EntityBooking, EntityID: "   ", Action: workflow.BookingConfirm, Actor: actor,
		})
		if !errors.Is(err, ErrInvalidEntityID) {
			t.Fatalf("expected ErrInvalidEntityID, got %v", err)
		}
	})

	t.Run("actor without a valid role", func(t *testing.T) {
		uc, _, _ := newDispatcherFixture()
		_, err := uc.Apply(context.Background(), TransitionCommand{
			EntityType: workflow.EntityBooking, EntityID: "bkg-1", Action: workflow.BookingConfirm,
			Actor: entities.Actor{ID: "x", Role: entities.Role("auditor")},
		})
		if !errors.Is(err, ErrInvalidActor) {
			t.Fatalf("expected ErrInvalidActor, got %v", err)
		}
	})

	t.Run("payload validation failure is wrapped", func(t *testing.T) {
		uc, _, _ := newDispatcherFixture()
		_, err := uc.Apply(context.Background(), TransitionCommand{
			EntityType: workflow.EntityRepair, EntityID: "rep-1", Action: workflow.RepairReview,
			Actor: actor, Payload: workflow.ReviewPayload{Rating: 9},
		})
		if !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	})

	t.Run("nil payload is normalized before dispatch", func(t *testing.T) {
		uc, _, booking := newDispatcherFixture()
		_, err := uc.Apply(context.Background(), TransitionCommand{
			EntityType: workflow.EntityBooking, EntityID: "bkg-1", Action: workflow.BookingConfirm, Actor: actor,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := booking.payload.(workflow.NoPayload); !ok {
			t.Fatalf("expected NoPayload, got %T", booking.payload)
		}
	})

	t.Run("routes by entity type", func(t *testing.T) {
		cases := []struct {
			entityType workflow.EntityType
			action     workflow.Action
		}{
			{workflow.EntityBooking, workflow.BookingConfirm},
			{workflow.EntityRepair, workflow.RepairStartDiagnosis},
			{workflow.EntityDeposit, workflow.DepositRequestReceipt},
		}
		for _, tc := range cases {
			t.Run(string(tc.entityType), func(t *testing.T) {
				uc, applied, _ := newDispatcherFixture()
				res, err := uc.Apply(context.Background(), TransitionCommand{
					EntityType: tc.entityType, EntityID: "id-1", Action: tc.action,
					Actor: entities.Actor{ID: "adm-1", Role: entities.RoleAdmin},
				})
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if *applied != tc.entityType {
					t.Fatalf("routed to %s, expected %s", *applied, tc.entityType)
				}
				if res.NewState != "routed" {
					t.Fatalf("unexpected result %+v", res)
				}
			})
		}
	})

	t.Run("unknown entity type", func(t *testing.T) {
		uc, _, _ := newDispatcherFixture()
		_, err := uc.Apply(context.Background(), TransitionCommand{
			EntityType: workflow.EntityType("invoice"), EntityID: "inv-1", Action: workflow.BookingConfirm, Actor: actor,
		})
		if !errors.Is(err, ErrUnknownEntityType) {
			t.Fatalf("expected ErrUnknownEntityType, got %v", err)
		}
	})
}
