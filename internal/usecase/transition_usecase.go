package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
)

var (
	ErrInvalidEntityID   = errors.New("invalid entity id")
	ErrInvalidActor      = errors.New("invalid actor")
	ErrInvalidPayload    = errors.New("invalid payload")
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// TransitionCommand is the single logical operation of the engine:
// ApplyTransition(entityType, entityId, action, actor, payload).
type TransitionCommand struct {
	EntityType workflow.EntityType
	EntityID   string
	Action     workflow.Action
	Actor      entities.Actor
	Payload    workflow.Payload
}

// TransitionResult reports the committed outcome of a transition.
type TransitionResult struct {
	NewState       string `json:"new_state"`
	HistoryEntryID string `json:"history_entry_id"`
}

// ITransitionUseCase dispatches transition commands to the per-entity
// workflow executors.

type ITransitionUseCase interface {
	Apply(ctx context.Context, cmd TransitionCommand) (TransitionResult, error)
}

type TransitionUseCase struct {
	bookings IBookingWorkflowUseCase
	repairs  IRepairWorkflowUseCase
	deposits IDepositWorkflowUseCase
}

var _ ITransitionUseCase = (*TransitionUseCase)(nil)

func NewTransitionUseCase(bookings IBookingWorkflowUseCase, repairs IRepairWorkflowUseCase, deposits IDepositWorkflowUseCase) *TransitionUseCase {
	return &TransitionUseCase{bookings: bookings, repairs: repairs, deposits: deposits}
}

func (u *TransitionUseCase) Apply(ctx context.Context, cmd TransitionCommand) (TransitionResult, error) {
	cmd.EntityID = strings.TrimSpace(cmd.EntityID)
	if cmd.EntityID == "" {
		return TransitionResult{}, ErrInvalidEntityID
	}
	if strings.TrimSpace(cmd.Actor.ID) == "" || !cmd.Actor.Role.Valid() {
		return TransitionResult{}, ErrInvalidActor
	}
	if cmd.Payload == nil {
		cmd.Payload = workflow.NoPayload{}
	}
	if err := cmd.Payload.Validate(); err != nil {
		return TransitionResult{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	switch cmd.EntityType {
	case workflow.EntityBooking:
		return u.bookings.Apply(ctx, cmd.EntityID, cmd.Action, cmd.Actor, cmd.Payload)
	case workflow.EntityRepair:
		return u.repairs.Apply(ctx, cmd.EntityID, cmd.Action, cmd.Actor, cmd.Payload)
	case workflow.EntityDeposit:
		return u.deposits.Apply(ctx, cmd.EntityID, cmd.Action, cmd.Actor, cmd.Payload)
	default:
		return TransitionResult{}, ErrUnknownEntityType
	}
}
