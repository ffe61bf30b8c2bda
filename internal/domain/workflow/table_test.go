package workflow

import (
	"testing"

	"atelier_backoffice/internal/domain/entities"
)

func TestParseEntityType(t *testing.T) {
	for _, valid := range []string{"booking", "repair", "deposit"} {
		if _, ok := ParseEntityType(valid); !ok {
			t.Fatalf("expected %q to parse", valid)
		}
	}
	if _, ok := ParseEntityType("invoice"); ok {
		t.Fatalf("expected unknown type to be rejected")
	}
}

func TestTableResolve(t *testing.T) {
	table := NewTable(EntityBooking, []Rule{
		{From: "draft", Action: "submit", To: "submitted", Roles: []entities.Role{entities.RoleCustomer}, OwnerOnly: true},
		{From: "submitted", Action: "accept", To: "accepted", Roles: []entities.Role{entities.RoleAdmin}},
	})

	t.Run("undefined pair is invalid transition", func(t *testing.T) {
		_, err := table.Resolve("draft", "accept", entities.Actor{ID: "a", Role: entities.RoleAdmin}, "c-1")
		if !IsKind(err, KindInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})

	t.Run("role not in rule is unauthorized", func(t *testing.T) {
		_, err := table.Resolve("submitted", "accept", entities.Actor{ID: "c-1", Role: entities.RoleCustomer}, "c-1")
		if !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("owner mismatch is unauthorized", func(t *testing.T) {
		_, err := table.Resolve("draft", "submit", entities.Actor{ID: "c-2", Role: entities.RoleCustomer}, "c-1")
		if !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("owner match resolves", func(t *testing.T) {
		rule, err := table.Resolve("draft", "submit", entities.Actor{ID: "c-1", Role: entities.RoleCustomer}, "c-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rule.To != "submitted" {
			t.Fatalf("expected to=submitted, got %s", rule.To)
		}
	})

	t.Run("state guard is checked before authorization", func(t *testing.T) {
		// Wrong state AND wrong actor: the refusal must name the state, not
		// the actor, so a probing caller learns nothing about authorization.
		_, err := table.Resolve("accepted", "submit", entities.Actor{ID: "c-2", Role: entities.RoleCustomer}, "c-1")
		if !IsKind(err, KindInvalidTransition) {
			t.Fatalf("expected invalid transition, got %v", err)
		}
	})
}

func TestTableIsStep(t *testing.T) {
	table := NewTable(EntityRepair, []Rule{
		{From: "a", Action: "go", To: "b", Roles: []entities.Role{entities.RoleAdmin}},
	})
	if !table.IsStep("a", "b") {
		t.Fatalf("expected a->b to be a step")
	}
	if !table.IsStep("a", "a") {
		t.Fatalf("expected self-loop to be a step")
	}
	if table.IsStep("b", "a") {
		t.Fatalf("did not expect b->a to be a step")
	}
}

func TestBookingTable(t *testing.T) {
	admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
	tailor := entities.Actor{ID: "tlr-1", Role: entities.RoleTailor}
	owner := entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}

	t.Run("cancel is reachable from every non-terminal state", func(t *testing.T) {
		for _, st := range bookingNonTerminalStates() {
			if _, err := BookingTable.Resolve(State(st), BookingCancel, admin, "cus-1"); err != nil {
				t.Fatalf("cancel from %s: %v", st, err)
			}
		}
	})

	t.Run("terminal states accept nothing", func(t *testing.T) {
		for _, st := range []entities.BookingStatus{
			entities.BookingStatusCompleted,
			entities.BookingStatusCancelled,
			entities.BookingStatusNoShow,
		} {
			for _, action := range []Action{BookingCancel, BookingConfirm, BookingReschedule, BookingConfirmFinalPayment} {
				if _, err := BookingTable.Resolve(State(st), action, admin, "cus-1"); !IsKind(err, KindInvalidTransition) {
					t.Fatalf("expected invalid transition for %s from %s, got %v", action, st, err)
				}
			}
		}
	})

	t.Run("only the owning customer approves a quote", func(t *testing.T) {
		if _, err := BookingTable.Resolve(State(entities.BookingStatusQuoteSent), BookingApproveQuote, owner, "cus-1"); err != nil {
			t.Fatalf("owner approve: %v", err)
		}
		other := entities.Actor{ID: "cus-2", Role: entities.RoleCustomer}
		if _, err := BookingTable.Resolve(State(entities.BookingStatusQuoteSent), BookingApproveQuote, other, "cus-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized for non-owner, got %v", err)
		}
		if _, err := BookingTable.Resolve(State(entities.BookingStatusQuoteSent), BookingApproveQuote, admin, "cus-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized for admin, got %v", err)
		}
	})

	t.Run("measurement on approved quote promotes to in_progress", func(t *testing.T) {
		rule, err := BookingTable.Resolve(State(entities.BookingStatusQuoteApproved), BookingRecordMeasurement, tailor, "cus-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rule.To != State(entities.BookingStatusInProgress) {
			t.Fatalf("expected in_progress, got %s", rule.To)
		}
	})

	t.Run("measurement elsewhere is a self-loop", func(t *testing.T) {
		rule, err := BookingTable.Resolve(State(entities.BookingStatusQuoteSent), BookingRecordMeasurement, tailor, "cus-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rule.To != State(entities.BookingStatusQuoteSent) {
			t.Fatalf("expected self-loop, got %s", rule.To)
		}
	})

	t.Run("every rule names at least one role", func(t *testing.T) {
		for _, rule := range bookingRules() {
			if len(rule.Roles) == 0 {
				t.Fatalf("rule %s/%s has no roles", rule.From, rule.Action)
			}
		}
	})
}

func TestRepairTable(t *testing.T) {
	admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
	owner := entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}

	t.Run("happy path is a valid walk", func(t *testing.T) {
		walk := []entities.RepairStatus{
			entities.RepairStatusPending,
			entities.RepairStatusReceived,
			entities.RepairStatusDiagnosing,
			entities.RepairStatusDiagnosed,
			entities.RepairStatusQuoteSent,
			entities.RepairStatusQuoteApproved,
			entities.RepairStatusWaitingParts,
			entities.RepairStatusInRepair,
			entities.RepairStatusTesting,
			entities.RepairStatusReadyForPickup,
			entities.RepairStatusCompleted,
		}
		for i := 1; i < len(walk); i++ {
			if !RepairTable.IsStep(State(walk[i-1]), State(walk[i])) {
				t.Fatalf("%s -> %s is not a step", walk[i-1], walk[i])
			}
		}
	})

	t.Run("no state skipping", func(t *testing.T) {
		if RepairTable.IsStep(State(entities.RepairStatusDiagnosed), State(entities.RepairStatusInRepair)) {
			t.Fatalf("diagnosed must not jump straight to in_repair")
		}
		if RepairTable.IsStep(State(entities.RepairStatusReceived), State(entities.RepairStatusCompleted)) {
			t.Fatalf("received must not jump straight to completed")
		}
	})

	t.Run("record_payment only for admin", func(t *testing.T) {
		if _, err := RepairTable.Resolve(State(entities.RepairStatusInRepair), RepairRecordPayment, admin, "cus-1"); err != nil {
			t.Fatalf("admin record payment: %v", err)
		}
		tech := entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
		if _, err := RepairTable.Resolve(State(entities.RepairStatusInRepair), RepairRecordPayment, tech, "cus-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized for technician, got %v", err)
		}
	})

	t.Run("cancel stops once a quote is decided", func(t *testing.T) {
		if _, err := RepairTable.Resolve(State(entities.RepairStatusQuoteSent), RepairCancel, owner, "cus-1"); err != nil {
			t.Fatalf("cancel from quote_sent: %v", err)
		}
		if _, err := RepairTable.Resolve(State(entities.RepairStatusQuoteApproved), RepairCancel, owner, "cus-1"); !IsKind(err, KindInvalidTransition) {
			t.Fatalf("expected invalid transition after approval, got %v", err)
		}
	})

	t.Run("review is owner only on completed", func(t *testing.T) {
		if _, err := RepairTable.Resolve(State(entities.RepairStatusCompleted), RepairReview, owner, "cus-1"); err != nil {
			t.Fatalf("owner review: %v", err)
		}
		other := entities.Actor{ID: "cus-2", Role: entities.RoleCustomer}
		if _, err := RepairTable.Resolve(State(entities.RepairStatusCompleted), RepairReview, other, "cus-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized for non-owner, got %v", err)
		}
	})
}

func TestDepositTable(t *testing.T) {
	admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}
	investor := entities.Actor{ID: "inv-1", Role: entities.RoleInvestor}

	t.Run("investor branch closed by admin", func(t *testing.T) {
		rule, err := DepositTable.Resolve(State(entities.DepositStatusAwaitingPayment), DepositUploadReceipt, investor, "inv-1")
		if err != nil {
			t.Fatalf("upload: %v", err)
		}
		if rule.To != State(entities.DepositStatusAwaitingAdmin) {
			t.Fatalf("expected awaiting_admin_confirmation, got %s", rule.To)
		}
		rule, err = DepositTable.Resolve(rule.To, DepositAdminConfirm, admin, "inv-1")
		if err != nil {
			t.Fatalf("admin confirm: %v", err)
		}
		if rule.To != State(entities.DepositStatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", rule.To)
		}
	})

	t.Run("admin branch closed by investor", func(t *testing.T) {
		rule, err := DepositTable.Resolve(State(entities.DepositStatusAwaitingReceipt), DepositAttachReceipt, admin, "inv-1")
		if err != nil {
			t.Fatalf("attach: %v", err)
		}
		if rule.To != State(entities.DepositStatusPendingConfirm) {
			t.Fatalf("expected pending_confirmation, got %s", rule.To)
		}
		if _, err := DepositTable.Resolve(rule.To, DepositInvestorConfirm, investor, "inv-1"); err != nil {
			t.Fatalf("investor confirm: %v", err)
		}
	})

	t.Run("a party cannot close its own branch", func(t *testing.T) {
		if _, err := DepositTable.Resolve(State(entities.DepositStatusAwaitingAdmin), DepositAdminConfirm, investor, "inv-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
		if _, err := DepositTable.Resolve(State(entities.DepositStatusPendingConfirm), DepositInvestorConfirm, admin, "inv-1"); !IsKind(err, KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("dispute cycle returns to pending confirmation", func(t *testing.T) {
		rule, err := DepositTable.Resolve(State(entities.DepositStatusPendingConfirm), DepositDispute, investor, "inv-1")
		if err != nil {
			t.Fatalf("dispute: %v", err)
		}
		rule, err = DepositTable.Resolve(rule.To, DepositResolveDispute, admin, "inv-1")
		if err != nil {
			t.Fatalf("resolve: %v", err)
		}
		if rule.To != State(entities.DepositStatusPendingConfirm) {
			t.Fatalf("expected pending_confirmation after resolution, got %s", rule.To)
		}
	})

	t.Run("confirmed is terminal", func(t *testing.T) {
		for _, action := range []Action{DepositDispute, DepositInvestorConfirm, DepositAdminConfirm, DepositUploadReceipt} {
			if _, err := DepositTable.Resolve(State(entities.DepositStatusConfirmed), action, admin, "inv-1"); !IsKind(err, KindInvalidTransition) {
				t.Fatalf("expected invalid transition for %s, got %v", action, err)
			}
		}
	})
}
