package interfaces

import (
	"context"

	"atelier_backoffice/internal/domain/entities"
)

// IUnitOfWork collects the writes of one transition so that the state
// change, its side effects and the history append commit atomically or not
// at all.
//
// Stage* methods carry the status the entity held when it was read; the
// store re-validates it at commit time. StageNew* and Append* writes require
// the target item not to exist yet.
//
// Commit returns a workflow ConflictingState error when any staged
// precondition no longer holds (a concurrent transition won).

type IUnitOfWork interface {
	StageBooking(b entities.Booking, expected entities.BookingStatus)
	StageNewQuote(q entities.Quote)
	StageQuote(q entities.Quote, expected entities.QuoteStatus)
	StageRepair(r entities.RepairRequest, expected entities.RepairStatus)
	StageDeposit(d entities.InvestorDeposit, expected entities.DepositConfirmationStatus)
	StageMeasurement(m entities.Measurement)
	StageBookingPayment(p entities.BookingPayment)
	StageRepairPayment(p entities.RepairPayment)
	// StageTechnicianRating conditions on the previously observed rated
	// count so two concurrent reviews cannot produce a stale average.
	StageTechnicianRating(r entities.TechnicianRating, expectedCount int)
	AppendBookingProgress(e entities.ProgressEntry)
	AppendQuoteHistory(e entities.QuoteHistory)
	AppendRepairProgress(e entities.RepairProgress)
	AppendDepositLog(e entities.DepositLog)
	Commit(ctx context.Context) error
}

// IUnitOfWorkFactory begins a fresh unit of work per transition request.
type IUnitOfWorkFactory interface {
	Begin() IUnitOfWork
}
