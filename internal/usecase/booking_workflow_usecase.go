package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// ErrPaymentVerifierNotConfigured is returned when a payment confirmation
// arrives but the payment collaborator was not wired at startup.
var ErrPaymentVerifierNotConfigured = errors.New("payment verifier is not configured")

// BookingDetail is the read model for one booking and its owned records.
type BookingDetail struct {
	Booking      entities.Booking
	Quote        *entities.Quote
	QuoteHistory []entities.QuoteHistory
	Measurement  *entities.Measurement
	Payments     []entities.BookingPayment
	Progress     []entities.ProgressEntry
}

// IBookingWorkflowUseCase executes booking lifecycle transitions.

type IBookingWorkflowUseCase interface {
	Apply(ctx context.Context, bookingID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error)
	GetByID(ctx context.Context, id string) (BookingDetail, error)
}

type BookingWorkflowUseCase struct {
	bookings interfaces.IBookingRepository
	quotes   interfaces.IQuoteRepository
	uowf     interfaces.IUnitOfWorkFactory
	verifier interfaces.IPaymentVerifier
	notifier interfaces.INotificationDispatcher
	now      func() time.Time
}

var _ IBookingWorkflowUseCase = (*BookingWorkflowUseCase)(nil)

func NewBookingWorkflowUseCase(
	bookings interfaces.IBookingRepository,
	quotes interfaces.IQuoteRepository,
	uowf interfaces.IUnitOfWorkFactory,
	verifier interfaces.IPaymentVerifier,
	notifier interfaces.INotificationDispatcher,
) *BookingWorkflowUseCase {
	return &BookingWorkflowUseCase{
		bookings: bookings,
		quotes:   quotes,
		uowf:     uowf,
		verifier: verifier,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (u *BookingWorkflowUseCase) Apply(ctx context.Context, bookingID string, action workflow.Action, actor entities.Actor, payload workflow.Payload) (TransitionResult, error) {
	log.Printf("[booking][usecase] transition start booking_id=%s action=%s actor_id=%s role=%s", bookingID, action, actor.ID, actor.Role)

	b, err := u.bookings.GetByID(ctx, bookingID)
	if err != nil {
		return TransitionResult{}, err
	}
	if b.ID == "" {
		return TransitionResult{}, workflow.NotFound("booking not found")
	}

	rule, err := workflow.BookingTable.Resolve(workflow.State(b.Status), action, actor, b.CustomerID)
	if err != nil {
		log.Printf("[booking][usecase] transition refused booking_id=%s action=%s err=%v", bookingID, action, err)
		return TransitionResult{}, err
	}

	now := u.now()
	from := b.Status
	to := entities.BookingStatus(rule.To)
	note := ""
	uow := u.uowf.Begin()

	switch action {
	case workflow.BookingConfirm, workflow.BookingIssuePaymentRequest, workflow.BookingReadyForCollection, workflow.BookingNoShow:
		// State move only.

	case workflow.BookingReschedule:
		p, ok := payload.(workflow.ReschedulePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		b.ScheduledDate = p.ScheduledDate
		b.ScheduledTime = p.ScheduledTime
		note = "rescheduled to " + p.ScheduledDate

	case workflow.BookingCancel:
		if p, ok := payload.(workflow.CancelPayload); ok {
			note = p.Reason
		}

	case workflow.BookingDraftQuote:
		p, ok := payload.(workflow.DraftQuotePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if err := u.draftQuote(ctx, uow, &b, p, actor, now); err != nil {
			return TransitionResult{}, err
		}

	case workflow.BookingSendQuote:
		if err := u.sendQuote(ctx, uow, b, payload, actor, now); err != nil {
			return TransitionResult{}, err
		}

	case workflow.BookingApproveQuote:
		if err := u.approveQuote(ctx, uow, &b, actor, now); err != nil {
			return TransitionResult{}, err
		}

	case workflow.BookingRejectQuote:
		p, ok := payload.(workflow.RejectQuotePayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if err := u.rejectQuote(ctx, uow, b, p, actor, now); err != nil {
			return TransitionResult{}, err
		}
		note = p.Reason

	case workflow.BookingRecordMeasurement:
		p, ok := payload.(workflow.MeasurementPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		first, err := u.recordMeasurement(ctx, uow, b, p, actor, now)
		if err != nil {
			return TransitionResult{}, err
		}
		// Only the first measurement on an approved quote starts the work;
		// later updates leave the booking where it is.
		if !first && to == entities.BookingStatusInProgress {
			to = from
		}

	case workflow.BookingConfirmDownPayment, workflow.BookingConfirmPartialPayment, workflow.BookingConfirmFinalPayment:
		p, ok := payload.(workflow.ConfirmPaymentPayload)
		if !ok {
			return TransitionResult{}, ErrInvalidPayload
		}
		if err := u.confirmPayment(ctx, uow, b, action, p, now); err != nil {
			return TransitionResult{}, err
		}

	default:
		return TransitionResult{}, workflow.InvalidTransition("unhandled booking action " + string(action))
	}

	b.Status = to
	b.UpdatedAt = now
	uow.StageBooking(b, from)

	entry := entities.ProgressEntry{
		ID:         uuid.NewString(),
		BookingID:  b.ID,
		Action:     string(action),
		FromStatus: from,
		ToStatus:   to,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Note:       note,
		CreatedAt:  now,
	}
	uow.AppendBookingProgress(entry)

	if err := uow.Commit(ctx); err != nil {
		log.Printf("[booking][usecase] transition commit failed booking_id=%s action=%s err=%v", bookingID, action, err)
		return TransitionResult{}, err
	}
	log.Printf("[booking][usecase] transition success booking_id=%s action=%s from=%s to=%s", bookingID, action, from, to)

	u.notify(ctx, b.ID, to)
	return TransitionResult{NewState: string(to), HistoryEntryID: entry.ID}, nil
}

func (u *BookingWorkflowUseCase) draftQuote(ctx context.Context, uow interfaces.IUnitOfWork, b *entities.Booking, p workflow.DraftQuotePayload, actor entities.Actor, now time.Time) error {
	existing, err := u.quotes.GetByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if existing.ID != "" {
		return workflow.PreconditionFailed("a quote already exists for this booking")
	}

	materialCost := p.MaterialCost()
	q := entities.Quote{
		ID:                b.ID,
		BookingID:         b.ID,
		Status:            entities.QuoteStatusDraft,
		MaterialCost:      materialCost,
		LaborCost:         p.LaborCost,
		LaborHours:        p.LaborHours,
		TotalCost:         materialCost + p.LaborCost,
		DownPaymentAmount: p.DownPaymentAmount,
		ValidityDays:      p.ValidityDays,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	uow.StageNewQuote(q)
	uow.AppendQuoteHistory(entities.QuoteHistory{
		ID:        uuid.NewString(),
		QuoteID:   q.ID,
		Action:    string(workflow.BookingDraftQuote),
		ToStatus:  entities.QuoteStatusDraft,
		ActorID:   actor.ID,
		ActorRole: actor.Role,
		CreatedAt: now,
	})
	return nil
}

func (u *BookingWorkflowUseCase) sendQuote(ctx context.Context, uow interfaces.IUnitOfWork, b entities.Booking, payload workflow.Payload, actor entities.Actor, now time.Time) error {
	q, err := u.quotes.GetByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if q.ID == "" {
		return workflow.PreconditionFailed("no quote has been drafted for this booking")
	}
	if q.Status != entities.QuoteStatusDraft {
		return workflow.PreconditionFailed("quote has already been sent")
	}

	note := ""
	if p, ok := payload.(workflow.NotePayload); ok {
		note = p.Note
	}

	validUntil := now.AddDate(0, 0, q.ValidityDays)
	from := q.Status
	q.Status = entities.QuoteStatusSent
	q.SentAt = &now
	q.ValidUntil = &validUntil
	q.UpdatedAt = now
	uow.StageQuote(q, from)
	uow.AppendQuoteHistory(entities.QuoteHistory{
		ID:         uuid.NewString(),
		QuoteID:    q.ID,
		Action:     string(workflow.BookingSendQuote),
		FromStatus: from,
		ToStatus:   q.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Note:       note,
		CreatedAt:  now,
	})
	return nil
}

func (u *BookingWorkflowUseCase) approveQuote(ctx context.Context, uow interfaces.IUnitOfWork, b *entities.Booking, actor entities.Actor, now time.Time) error {
	q, err := u.quotes.GetByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if q.ID == "" || q.Status != entities.QuoteStatusSent {
		return workflow.PreconditionFailed("quote is not awaiting approval")
	}
	if q.Expired(now) {
		return workflow.PreconditionFailed("Quote has expired")
	}

	from := q.Status
	q.Status = entities.QuoteStatusApproved
	q.DecidedAt = &now
	q.UpdatedAt = now
	uow.StageQuote(q, from)
	uow.AppendQuoteHistory(entities.QuoteHistory{
		ID:         uuid.NewString(),
		QuoteID:    q.ID,
		Action:     string(workflow.BookingApproveQuote),
		FromStatus: from,
		ToStatus:   q.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		CreatedAt:  now,
	})

	// Final price locks in at approval and is never recomputed afterwards.
	if b.FinalPrice == nil {
		total := q.TotalCost
		b.FinalPrice = &total
	}
	return nil
}

func (u *BookingWorkflowUseCase) rejectQuote(ctx context.Context, uow interfaces.IUnitOfWork, b entities.Booking, p workflow.RejectQuotePayload, actor entities.Actor, now time.Time) error {
	q, err := u.quotes.GetByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	if q.ID == "" || q.Status != entities.QuoteStatusSent {
		return workflow.PreconditionFailed("quote is not awaiting approval")
	}

	from := q.Status
	q.Status = entities.QuoteStatusRejected
	q.DecidedAt = &now
	q.UpdatedAt = now
	uow.StageQuote(q, from)
	uow.AppendQuoteHistory(entities.QuoteHistory{
		ID:         uuid.NewString(),
		QuoteID:    q.ID,
		Action:     string(workflow.BookingRejectQuote),
		FromStatus: from,
		ToStatus:   q.Status,
		ActorID:    actor.ID,
		ActorRole:  actor.Role,
		Note:       p.Reason,
		CreatedAt:  now,
	})
	return nil
}

func (u *BookingWorkflowUseCase) recordMeasurement(ctx context.Context, uow interfaces.IUnitOfWork, b entities.Booking, p workflow.MeasurementPayload, actor entities.Actor, now time.Time) (first bool, err error) {
	existing, err := u.bookings.GetMeasurement(ctx, b.ID)
	if err != nil {
		return false, err
	}
	first = existing.BookingID == ""

	m := entities.Measurement{
		BookingID: b.ID,
		Values:    p.Values,
		Note:      p.Note,
		TakenBy:   actor.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !first {
		m.CreatedAt = existing.CreatedAt
	}
	uow.StageMeasurement(m)
	return first, nil
}

func (u *BookingWorkflowUseCase) confirmPayment(ctx context.Context, uow interfaces.IUnitOfWork, b entities.Booking, action workflow.Action, p workflow.ConfirmPaymentPayload, now time.Time) error {
	if u.verifier == nil {
		log.Printf("[booking][usecase] payment confirmation refused booking_id=%s err=verifier not configured", b.ID)
		return ErrPaymentVerifierNotConfigured
	}

	payments, err := u.bookings.ListPaymentsByBookingID(ctx, b.ID)
	if err != nil {
		return err
	}
	paid := 0.0
	for _, existing := range payments {
		if existing.ProviderPaymentID == p.ProviderPaymentID {
			return workflow.PreconditionFailed("payment has already been recorded")
		}
		paid += existing.Amount
	}

	captured, amount, providerResp, err := u.verifier.VerifyCaptured(ctx, p.ProviderPaymentID)
	if err != nil {
		return err
	}
	if !captured {
		return workflow.PreconditionFailed("payment has not been captured by the provider")
	}
	if amount <= 0 {
		amount = p.Amount
	}

	paymentType := entities.BookingPaymentPartial
	switch action {
	case workflow.BookingConfirmDownPayment:
		paymentType = entities.BookingPaymentDown
	case workflow.BookingConfirmFinalPayment:
		paymentType = entities.BookingPaymentFinal
		if b.FinalPrice != nil && paid+amount < *b.FinalPrice {
			return workflow.PreconditionFailedf("Payment not complete - balance due: %.2f", *b.FinalPrice-paid-amount)
		}
	}

	uow.StageBookingPayment(entities.BookingPayment{
		ID:                uuid.NewString(),
		BookingID:         b.ID,
		Type:              paymentType,
		Amount:            amount,
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderResponse:  string(providerResp),
		PaidAt:            now,
	})
	return nil
}

func (u *BookingWorkflowUseCase) GetByID(ctx context.Context, id string) (BookingDetail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return BookingDetail{}, ErrInvalidEntityID
	}

	b, err := u.bookings.GetByID(ctx, id)
	if err != nil {
		return BookingDetail{}, err
	}
	if b.ID == "" {
		return BookingDetail{}, workflow.NotFound("booking not found")
	}

	detail := BookingDetail{Booking: b}

	if q, err := u.quotes.GetByBookingID(ctx, id); err != nil {
		return BookingDetail{}, err
	} else if q.ID != "" {
		detail.Quote = &q
		if detail.QuoteHistory, err = u.quotes.ListHistoryByQuoteID(ctx, q.ID); err != nil {
			return BookingDetail{}, err
		}
	}
	if m, err := u.bookings.GetMeasurement(ctx, id); err != nil {
		return BookingDetail{}, err
	} else if m.BookingID != "" {
		detail.Measurement = &m
	}
	if detail.Payments, err = u.bookings.ListPaymentsByBookingID(ctx, id); err != nil {
		return BookingDetail{}, err
	}
	if detail.Progress, err = u.bookings.ListProgressByBookingID(ctx, id); err != nil {
		return BookingDetail{}, err
	}
	return detail, nil
}

func (u *BookingWorkflowUseCase) notify(ctx context.Context, bookingID string, status entities.BookingStatus) {
	if u.notifier == nil {
		return
	}
	if err := u.notifier.Dispatch(ctx, string(workflow.EntityBooking), bookingID, string(status)); err != nil {
		log.Printf("[booking][usecase] notification dispatch failed booking_id=%s err=%v", bookingID, err)
	}
}
