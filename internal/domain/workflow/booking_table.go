package workflow

import "atelier_backoffice/internal/domain/entities"

// Booking lifecycle actions.
//
// Payment confirmation is split into three actions so that every outcome is
// a static table edge: a captured down payment starts the work, a partial
// payment parks the booking in payment_partial, the final payment completes
// it.
const (
	BookingConfirm               Action = "confirm"
	BookingReschedule            Action = "reschedule"
	BookingDraftQuote            Action = "draft_quote"
	BookingSendQuote             Action = "send_quote"
	BookingApproveQuote          Action = "approve_quote"
	BookingRejectQuote           Action = "reject_quote"
	BookingRecordMeasurement     Action = "record_measurement"
	BookingIssuePaymentRequest   Action = "issue_payment_request"
	BookingConfirmDownPayment    Action = "confirm_down_payment"
	BookingConfirmPartialPayment Action = "confirm_partial_payment"
	BookingConfirmFinalPayment   Action = "confirm_final_payment"
	BookingReadyForCollection    Action = "ready_for_collection"
	BookingCancel                Action = "cancel"
	BookingNoShow                Action = "no_show"
)

// BookingTable is the static transition map for service bookings.
var BookingTable = NewTable(EntityBooking, bookingRules())

func bookingRules() []Rule {
	staff := []entities.Role{entities.RoleAdmin, entities.RoleTailor}
	owner := []entities.Role{entities.RoleCustomer}
	ownerOrAdmin := []entities.Role{entities.RoleCustomer, entities.RoleAdmin}
	payer := []entities.Role{entities.RoleCustomer, entities.RoleAdmin}

	s := func(st entities.BookingStatus) State { return State(st) }

	rules := []Rule{
		{From: s(entities.BookingStatusPending), Action: BookingConfirm, To: s(entities.BookingStatusConfirmed), Roles: staff},
		{From: s(entities.BookingStatusRescheduled), Action: BookingConfirm, To: s(entities.BookingStatusConfirmed), Roles: staff},
		{From: s(entities.BookingStatusPending), Action: BookingReschedule, To: s(entities.BookingStatusRescheduled), Roles: ownerOrAdmin, OwnerOnly: true},
		{From: s(entities.BookingStatusConfirmed), Action: BookingReschedule, To: s(entities.BookingStatusRescheduled), Roles: ownerOrAdmin, OwnerOnly: true},

		{From: s(entities.BookingStatusPending), Action: BookingDraftQuote, To: s(entities.BookingStatusQuotePending), Roles: staff},
		{From: s(entities.BookingStatusConfirmed), Action: BookingDraftQuote, To: s(entities.BookingStatusQuotePending), Roles: staff},
		{From: s(entities.BookingStatusQuotePending), Action: BookingSendQuote, To: s(entities.BookingStatusQuoteSent), Roles: staff},
		{From: s(entities.BookingStatusQuoteSent), Action: BookingApproveQuote, To: s(entities.BookingStatusQuoteApproved), Roles: owner, OwnerOnly: true},
		{From: s(entities.BookingStatusQuoteSent), Action: BookingRejectQuote, To: s(entities.BookingStatusQuoteRejected), Roles: owner, OwnerOnly: true},

		{From: s(entities.BookingStatusQuoteApproved), Action: BookingIssuePaymentRequest, To: s(entities.BookingStatusAwaitingPayment), Roles: staff},
		{From: s(entities.BookingStatusQuoteApproved), Action: BookingConfirmDownPayment, To: s(entities.BookingStatusInProgress), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusAwaitingPayment), Action: BookingConfirmDownPayment, To: s(entities.BookingStatusInProgress), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusAwaitingPayment), Action: BookingConfirmPartialPayment, To: s(entities.BookingStatusPaymentPartial), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusPaymentPartial), Action: BookingConfirmPartialPayment, To: s(entities.BookingStatusPaymentPartial), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusAwaitingPayment), Action: BookingConfirmFinalPayment, To: s(entities.BookingStatusCompleted), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusPaymentPartial), Action: BookingConfirmFinalPayment, To: s(entities.BookingStatusCompleted), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusInProgress), Action: BookingConfirmFinalPayment, To: s(entities.BookingStatusCompleted), Roles: payer, OwnerOnly: true},
		{From: s(entities.BookingStatusAwaitingCollection), Action: BookingConfirmFinalPayment, To: s(entities.BookingStatusCompleted), Roles: payer, OwnerOnly: true},

		{From: s(entities.BookingStatusInProgress), Action: BookingReadyForCollection, To: s(entities.BookingStatusAwaitingCollection), Roles: staff},
	}

	// Measurements may be recorded while a booking is still being quoted;
	// the first measurement on an approved quote starts the work.
	tailor := []entities.Role{entities.RoleTailor}
	for _, st := range []entities.BookingStatus{
		entities.BookingStatusPending,
		entities.BookingStatusQuotePending,
		entities.BookingStatusQuoteSent,
		entities.BookingStatusInProgress,
	} {
		rules = append(rules, Rule{From: s(st), Action: BookingRecordMeasurement, To: s(st), Roles: tailor})
	}
	rules = append(rules, Rule{From: s(entities.BookingStatusQuoteApproved), Action: BookingRecordMeasurement, To: s(entities.BookingStatusInProgress), Roles: tailor})

	// cancelled and no_show are reachable from any non-terminal state.
	for _, st := range bookingNonTerminalStates() {
		rules = append(rules,
			Rule{From: s(st), Action: BookingCancel, To: s(entities.BookingStatusCancelled), Roles: ownerOrAdmin, OwnerOnly: true},
			Rule{From: s(st), Action: BookingNoShow, To: s(entities.BookingStatusNoShow), Roles: staff},
		)
	}
	return rules
}

func bookingNonTerminalStates() []entities.BookingStatus {
	return []entities.BookingStatus{
		entities.BookingStatusPending,
		entities.BookingStatusConfirmed,
		entities.BookingStatusRescheduled,
		entities.BookingStatusQuotePending,
		entities.BookingStatusQuoteSent,
		entities.BookingStatusQuoteApproved,
		entities.BookingStatusQuoteRejected,
		entities.BookingStatusAwaitingPayment,
		entities.BookingStatusPaymentPartial,
		entities.BookingStatusInProgress,
		entities.BookingStatusAwaitingCollection,
	}
}
