package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// RepairDetail is the read model for one repair request.
type RepairDetail struct {
	Repair   entities.RepairRequest
	Payments []entities.RepairPayment
	Progress []entities.RepairProgress
}

// IRepairWorkflowUseCase executes repair request lifecycle transitions.

type IRepairWorkflowUseCase interface {
	Apply(ctx context.Context, repairID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error)
	GetByID(ctx context.Context, id string) (RepairDetail, error)
}

type RepairWorkflowUseCase struct {
	repairs  interfaces.IRepairRequestRepository
	uowf     interfaces.IUnitOfWorkFactory
	notifier interfaces.INotificationDispatcher
	now      func() time.Time
}

var _ IRepairWorkflowUseCase = (*RepairWorkflowUseCase)(nil)

func NewRepairWorkflowUseCase(
	repairs interfaces.IRepairRequestRepository,
	uowf interfaces.IUnitOfWorkFactory,
	notifier interfaces.INotificationDispatcher,
) *RepairWorkflowUseCase {
	return &RepairWorkflowUseCase{
		repairs:  repairs,
		uowf:     uowf,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *RepairWorkflowUseCase) Apply(ctx context.Context, repairID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error) {
	log.Printf("[repair][usecase] transition start repair_id=%s action=%s actor_id=%s role=%s", repairID, action, actor.ID, actor.Role)

	r, err := u.repairs.GetByID(ctx, repairID)
	if err != nil {
		return TransitionResult{}, err
	}
	if r.ID == "" {
		return TransitionResult{}, workflow.NotFound("repair request not found")
	}

	// A technician may only touch repairs assigned to them, regardless of
	// whether the requested transition would otherwise be valid. The intake
	// action is the exception: it may be what assigns the technician.
	if actor.Role == entities.RoleTechnician && action != workflow.RepairReceive && r.TechnicianID != actor.ID {
		return TransitionResult{}, workflow.Unauthorized("technician is not assigned to this repair")
	}

	rule, err := workflow.RepairTable.Resolve(workflow.State(r.Status), action, actor, r.CustomerID)
	if err != nil {
		log.Printf("[repair][usecase] transition refused repair_id=%s action=%s err=%v", repairID, action, err)
		return TransitionResult{}, err
	}

	now := u.now()
	from := r.Status
	to := entities.RepairStatus(rule.To)
	note := ""
	uow := u.uowf.Begin()

	switch action {
	case workflow.RepairStartDiagnosis, workflow.RepairOrderParts, workflow.RepairStart, workflow.RepairStartTesting, workflow.RepairMarkReady:
		// State move only.

	case workflow.RepairReceive:
		p, ok := payload.(workflow.ReceivePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		r.ReceivedAt = &now
		r.IntakePhotos = p.IntakePhotos
		if p.TechnicianID != "" {
			r.TechnicianID = p.TechnicianID
		} else if actor.Role == entities.RoleTechnician {
			r.TechnicianID = actor.ID
		}

	case workflow.RepairDiagnose:
		p, ok := payload.(workflow.DiagnosePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		r.Diagnosis = p.Diagnosis
		if r.DiagnosedAt == nil {
			r.DiagnosedAt = &now
		}
		note = p.Diagnosis

	case workflow.RepairCreateQuote:
		p, ok := payload.(workflow.RepairQuotePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		r.PartsCost = p.PartsCost
		r.LaborCost = p.LaborCost
		r.DiagnosticFee = p.DiagnosticFee
		// The total is never trusted from client input.
		r.TotalQuote = p.PartsCost + p.LaborCost + p.DiagnosticFee
		r.WarrantyMonths = p.WarrantyMonths
		validUntil := now.AddDate(0, 0, p.ValidityDays)
		r.QuoteValidUntil = &validUntil
		r.QuoteSentAt = &now

	case workflow.RepairApproveQuote:
		if r.QuoteValidUntil != nil && now.After(*r.QuoteValidUntil) {
			return TransitionResult{}, workflow.PreconditionFailed("Quote has expired")
		}
		// finalCost is assigned exactly once, here, and never recomputed.
		if r.FinalCost == nil {
			total := r.TotalQuote
			r.FinalCost = &total
		}
		r.QuoteDecidedAt = &now
		if r.WarrantyMonths > 0 {
			expires := now.AddDate(0, r.WarrantyMonths, 0)
			r.WarrantyExpiresAt = &expires
		}

	case workflow.RepairRejectQuote:
		p, ok := payload.(workflow.RejectQuotePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		r.QuoteDecidedAt = &now
		note = p.Reason

	case workflow.RepairRecordPayment:
		p, ok := payload.(workflow.RecordPaymentPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if err := u.recordPayment(ctx, uow, &r, p, now); err != nil {
			return TransitionResult{}, err
		}

	case workflow.RepairPickup:
		if err := u.guardPickup(ctx, r); err != nil {
			return TransitionResult{}, err
		}
		r.CompletedAt = &now
		r.PaymentStatus = entities.RepairPaymentPaid

	case workflow.RepairReview:
		p, ok := payload.(workflow.ReviewPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if err := u.review(ctx, uow, &r, p, now); err != nil {
			return TransitionResult{}, err
		}
		note = p.Comment

	case workflow.RepairCancel:
		if p, ok := payload.(workflow.CancelPayload); ok {
			note = p.Reason
		}

	default:
		return TransitionResult{}, workflow.InvalidTransition("unhandled repair action " + string(action))
	}

	r.Status = to
	r.UpdatedAt = now
	uow.StageRepair(r, from)

	entry := entities.RepairProgress{
		ID:         uuid.NewString(),
		RepairID:   r.ID,
		Action:     string(action),
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Note:       note,
		CreatedAt:  now,
	}
	uow.AppendRepairProgress(entry)

	if err := uow.Commit(ctx); err != nil {
		log.Printf("[repair][usecase] transition commit failed repair_id=%s action=%s err=%v", repairID, action, err)
		return TransitionResult{}, err
	}
	log.Printf("[repair][usecase] transition success repair_id=%s action=%s from=%s to=%s", repairID, action, from, to)

	u.notify(ctx, r.ID, to)
	return TransitionResult{NewState: string(to), HistoryEntryID: entry.ID}, nil
}

func (u *RepairWorkflowUseCase) recordPayment(ctx context.Context, uow interfaces.IUnitOfWork, r *entities.RepairRequest, p workflow.RecordPaymentPayload, now time.Time) error {
	payments, err := u.repairs.ListPaymentsByRepairID(ctx, r.ID)
	if err != nil {
		return err
	}
	paid := 0.0
	for _, existing := range payments {
		if p.ProviderPaymentID != "" && existing.ProviderPaymentID == p.ProviderPaymentID {
			return workflow.PreconditionFailed("payment has already been recorded")
		}
		paid += existing.Amount
	}

	uow.StageRepairPayment(entities.RepairPayment{
		ID:                uuid.NewString(),
		RepairID:          r.ID,
		Amount:            p.Amount,
		Method:            p.Method,
		ProviderPaymentID: p.ProviderPaymentID,
		PaidAt:            now,
	})

	r.PaymentStatus = entities.RepairPaymentPartial
	if r.FinalCost != nil && paid+p.Amount >= *r.FinalCost {
		r.PaymentStatus = entities.RepairPaymentPaid
	}
	return nil
}

func (u *RepairWorkflowUseCase) guardPickup(ctx context.Context, r entities.RepairRequest) error {
	if r.FinalCost == nil {
		return nil
	}
	payments, err := u.repairs.ListPaymentsByRepairID(ctx, r.ID)
	if err != nil {
		return err
	}
	paid := 0.0
	for _, p := range payments {
		paid += p.Amount
	}
	if paid < *r.FinalCost {
		return workflow.PreconditionFailedf("Payment not complete - balance due: %.2f", *r.FinalCost-paid)
	}
	return nil
}

func (u *RepairWorkflowUseCase) review(ctx context.Context, uow interfaces.IUnitOfWork, r *entities.RepairRequest, p workflow.ReviewPayload, now time.Time) error {
	if r.Rating != nil {
		return workflow.PreconditionFailed("repair has already been reviewed")
	}
	rating := p.Rating
	r.Rating = &rating
	r.ReviewComment = p.Comment

	if r.TechnicianID == "" {
		return nil
	}

	// Read-aggregate-write inside the same unit of work: the staged rating
	// conditions on the observed count, so a concurrent review aborts
	// instead of publishing a stale average.
	rated, err := u.repairs.ListRatedByTechnicianID(ctx, r.TechnicianID)
	if err != nil {
		return err
	}
	sum := float64(rating)
	count := 1
	for _, other := range rated {
		if other.ID == r.ID || other.Rating == nil {
			continue
		}
		sum += float64(*other.Rating)
		count++
	}
	uow.StageTechnicianRating(entities.TechnicianRating{
		TechnicianID: r.TechnicianID,
		Average:      sum / float64(count),
		RatedCount:   count,
		UpdatedAt:    now,
	}, count-1)
	return nil
}

func (u *RepairWorkflowUseCase) GetByID(ctx context.Context, id string) (RepairDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return RepairDetail{}, ErrInvalidEntityID
	}

	r, err := u.repairs.GetByID(ctx, id)
	if err != nil {
		return RepairDetail{}, err
	}
	if r.ID == "" {
		return RepairDetail{}, workflow.NotFound("repair request not found")
	}

	detail := RepairDetail{Repair: r}
	if detail.Payments, err = u.repairs.ListPaymentsByRepairID(ctx, id); err != nil {
		return RepairDetail{}, err
	}
	if detail.Progress, err = u.repairs.ListProgressByRepairID(ctx, id); err != nil {
		return RepairDetail{}, err
	}
	return detail, nil
}

func (u *RepairWorkflowUseCase) notify(ctx context.Context, repairID string, status entities.RepairStatus) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Dispatch(ctx, string(workflow.EntityRepair), repairID, string(status)); err != nil {
		log.Printf("[repair][usecase] notification dispatch failed repair_id=%s err=%v", repairID, err)
	}
}
