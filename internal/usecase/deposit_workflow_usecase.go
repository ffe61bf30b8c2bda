package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// DepositDetail is the read model for one investor deposit.
type DepositDetail struct {
	Deposit entities.InvestorDeposit
	Log     []entities.DepositLog
}

// IDepositWorkflowUseCase executes investor deposit confirmation transitions.

type IDepositWorkflowUseCase interface {
	Apply(ctx context.Context, depositID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error)
	GetByID(ctx context.Context, id string) (DepositDetail, error)
}

type DepositWorkflowUseCase struct {
	deposits interfaces.IInvestorDepositRepository
	uowf     interfaces.IUnitOfWorkFactory
	notifier interfaces.INotificationDispatcher
	now      func() time.Time
}

var _ IDepositWorkflowUseCase = (*DepositWorkflowUseCase)(nil)

func NewDepositWorkflowUseCase(
	deposits interfaces.IInvestorDepositRepository,
	uowf interfaces.IUnitOfWorkFactory,
	notifier interfaces.INotificationDispatcher,
) *DepositWorkflowUseCase {
	return &DepositWorkflowUseCase{
		deposits: deposits,
		uowf:     uowf,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *DepositWorkflowUseCase) Apply(ctx context.Context, depositID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error) {
	log.Printf("[deposit][usecase] transition start deposit_id=%s action=%s actor_id=%s role=%s", depositID, action, actor.ID, actor.Role)

	d, err := u.deposits.GetByID(ctx, depositID)
	if err != nil {
		return TransitionResult{}, err
	}
	if d.ID == "" {
		return TransitionResult{}, workflow.NotFound("deposit not found")
	}

	rule, err := workflow.DepositTable.Resolve(workflow.State(d.ConfirmationStatus), action, actor, d.InvestorID)
	if err != nil {
		log.Printf("[deposit][usecase] transition refused deposit_id=%s action=%s err=%v", depositID, action, err)
		return TransitionResult{}, err
	}

	now := u.now()
	from := d.ConfirmationStatus
	to := entities.DepositConfirmationStatus(rule.To)
	note := ""

	switch action {
	case workflow.DepositRequestReceipt:
		// State move only.

	case workflow.DepositUploadReceipt:
		p, ok := payload.(workflow.UploadReceiptPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		d.InvestorReceiptURL = p.ReceiptURL

	case workflow.DepositAttachReceipt:
		p, ok := payload.(workflow.AttachReceiptPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if p.Charges > d.GrossAmount {
			return TransitionResult{}, workflow.PreconditionFailed("charges exceed the gross deposit amount")
		}
		d.ReceiptURL = p.ReceiptURL
		d.Charges = p.Charges

	case workflow.DepositAdminConfirm:
		p, ok := payload.(workflow.AdminConfirmPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if p.Charges > d.GrossAmount {
			return TransitionResult{}, workflow.PreconditionFailed("charges exceed the gross deposit amount")
		}
		if p.Charges > 0 {
			d.Charges = p.Charges
		}
		d.VerifiedAt = &now

	case workflow.DepositInvestorConfirm:
		d.VerifiedAt = &now

	case workflow.DepositDispute:
		p, ok := payload.(workflow.DisputePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		d.InvestorNotes = p.Note
		note = p.Note

	case workflow.DepositResolveDispute:
		p, ok := payload.(workflow.ResolveDisputePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		// Both sides of the dispute are preserved for audit before the
		// investor's note is cleared.
		entry := fmt.Sprintf("investor: %s | admin: %s", d.InvestorNotes, p.Response)
		if d.Notes != "" {
			d.Notes += "\n"
		}
		d.Notes += entry
		d.InvestorNotes = ""
		note = p.Response

	default:
		return TransitionResult{}, workflow.InvalidTransition("unhandled deposit action " + string(action))
	}

	// Net amount is derived, never stored independently of its inputs.
	d.Amount = d.GrossAmount - d.Charges
	d.ConfirmationStatus = to
	d.UpdatedAt = now

	uow := u.uowf.Begin()
	uow.StageDeposit(d, from)

	logEntry := entities.DepositLog{
		ID:         uuid.NewString(),
		DepositID:  d.ID,
		Action:     string(action),
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Note:       note,
		CreatedAt:  now,
	}
	uow.AppendDepositLog(logEntry)

	if err := uow.Commit(ctx); err != nil {
		log.Printf("[deposit][usecase] transition commit failed deposit_id=%s action=%s err=%v", depositID, action, err)
		return TransitionResult{}, err
	}
	log.Printf("[deposit][usecase] transition success deposit_id=%s action=%s from=%s to=%s", depositID, action, from, to)

	u.notify(ctx, d.ID, to)
	return TransitionResult{NewState: string(to), HistoryEntryID: logEntry.ID}, nil
}

func (u *DepositWorkflowUseCase) GetByID(ctx context.Context, id string) (DepositDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return DepositDetail{}, ErrInvalidEntityID
	}

	d, err := u.deposits.GetByID(ctx, id)
	if err != nil {
		return DepositDetail{}, err
	}
	if d.ID == "" {
		return DepositDetail{}, workflow.NotFound("deposit not found")
	}

	detail := DepositDetail{Deposit: d}
	if detail.Log, err = u.deposits.ListLogByDepositID(ctx, id); err != nil {
		return DepositDetail{}, err
	}
	return detail, nil
}

func (u *DepositWorkflowUseCase) notify(ctx context.Context, depositID string, status entities.DepositConfirmationStatus) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Dispatch(ctx, string(workflow.EntityDeposit), depositID, string(status)); err != nil {
		log.Printf("[deposit][usecase] notification dispatch failed deposit_id=%s err=%v", depositID, err)
	}
}
