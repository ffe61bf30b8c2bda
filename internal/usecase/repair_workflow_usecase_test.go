package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	mock_interfaces "atelier_backoffice/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type repairFixture struct {
	repairs *mock_interfaces.MockIRepairRequestRepository
	uowf    *mock_interfaces.MockIUnitOfWorkFactory
	uow     *mock_interfaces.MockIUnitOfWork
	uc      *RepairWorkflowUseCase
}

func newRepairFixture(t *testing.T) repairFixture {
	ctrl := gomock.NewController(t)
	f := repairFixture{
		repairs: mock_interfaces.NewMockIRepairRequestRepository(ctrl),
		uowf:    mock_interfaces.NewMockIUnitOfWorkFactory(ctrl),
		uow:     mock_interfaces.NewMockIUnitOfWork(ctrl),
	}
	f.uc = NewRepairWorkflowUseCase(f.repairs, f.uowf, nil)
	f.uc.now = func() time.Time { return testNow }
	return f
}

func TestRepairWorkflowUseCase_Apply(t *testing.T) {
	owner := entities.Actor{ID: "cus-1", Role: entities.RoleCustomer}
	tech := entities.Actor{ID: "tech-1", Role: entities.RoleTechnician}
	admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}

	t.Run("unassigned technician is rejected before the table is consulted", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", TechnicianID: "tech-2", Status: entities.RepairStatusDiagnosing,
		}, nil)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairDiagnose, tech, workflow.DiagnosePayload{Diagnosis: "loose solder joint"})
		if !workflow.IsKind(err, workflow.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("intake assigns the receiving technician", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusPending,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageRepair(gomock.Any(), entities.RepairStatusPending).Do(func(r entities.RepairRequest, _ entities.RepairStatus) {
			if r.TechnicianID != "tech-1" {
				t.Errorf("expected receiving technician to be assigned, got %q", r.TechnicianID)
			}
			if r.ReceivedAt == nil {
				t.Errorf("expected received_at to be set")
			}
		})
		f.uow.EXPECT().AppendRepairProgress(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairReceive, tech, workflow.ReceivePayload{IntakePhotos: []string{"front.jpg"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.RepairStatusReceived) {
			t.Fatalf("expected received, got %s", res.NewState)
		}
	})

	t.Run("quote totals are recomputed server-side", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", TechnicianID: "tech-1", Status: entities.RepairStatusDiagnosed,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageRepair(gomock.Any(), entities.RepairStatusDiagnosed).Do(func(r entities.RepairRequest, _ entities.RepairStatus) {
			if r.TotalQuote != 175 {
				t.Errorf("expected total 175, got %.2f", r.TotalQuote)
			}
			if r.QuoteValidUntil == nil || !r.QuoteValidUntil.Equal(testNow.AddDate(0, 0, 10)) {
				t.Errorf("expected validity 10 days out, got %v", r.QuoteValidUntil)
			}
		})
		f.uow.EXPECT().AppendRepairProgress(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairCreateQuote, tech, workflow.RepairQuotePayload{
			PartsCost: 100, LaborCost: 50, DiagnosticFee: 25, ValidityDays: 10, WarrantyMonths: 3,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("expired quote cannot be approved", func(t *testing.T) {
		f := newRepairFixture(t)
		expired := testNow.AddDate(0, 0, -2)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusQuoteSent,
			TotalQuote: 175, QuoteValidUntil: &expired,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairApproveQuote, owner, workflow.NoPayload{})
		var we *workflow.Error
		if !errors.As(err, &we) || we.Kind != workflow.KindPreconditionFailed || we.Reason != "Quote has expired" {
			t.Fatalf("expected expiry precondition, got %v", err)
		}
	})

	t.Run("approval locks final cost and warranty", func(t *testing.T) {
		f := newRepairFixture(t)
		valid := testNow.AddDate(0, 0, 5)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusQuoteSent,
			TotalQuote: 175, QuoteValidUntil: &valid, WarrantyMonths: 3,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageRepair(gomock.Any(), entities.RepairStatusQuoteSent).Do(func(r entities.RepairRequest, _ entities.RepairStatus) {
			if r.FinalCost == nil || *r.FinalCost != 175 {
				t.Errorf("expected final cost 175, got %v", r.FinalCost)
			}
			if r.WarrantyExpiresAt == nil || !r.WarrantyExpiresAt.Equal(testNow.AddDate(0, 3, 0)) {
				t.Errorf("expected warranty 3 months out, got %v", r.WarrantyExpiresAt)
			}
		})
		f.uow.EXPECT().AppendRepairProgress(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairApproveQuote, owner, workflow.NoPayload{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.RepairStatusQuoteApproved) {
			t.Fatalf("expected quote_approved, got %s", res.NewState)
		}
	})

	t.Run("pickup refused while balance remains", func(t *testing.T) {
		f := newRepairFixture(t)
		final := 100.0
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusReadyForPickup, FinalCost: &final,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.repairs.EXPECT().ListPaymentsByRepairID(gomock.Any(), "rep-1").Return([]entities.RepairPayment{
			{ID: "pay-1", Amount: 60},
		}, nil)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairPickup, admin, workflow.NoPayload{})
		var we *workflow.Error
		if !errors.As(err, &we) || we.Reason != "Payment not complete - balance due: 40.00" {
			t.Fatalf("expected balance reason, got %v", err)
		}
	})

	t.Run("pickup completes once fully paid", func(t *testing.T) {
		f := newRepairFixture(t)
		final := 100.0
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusReadyForPickup, FinalCost: &final,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.repairs.EXPECT().ListPaymentsByRepairID(gomock.Any(), "rep-1").Return([]entities.RepairPayment{
			{ID: "pay-1", Amount: 60}, {ID: "pay-2", Amount: 40},
		}, nil)
		f.uow.EXPECT().StageRepair(gomock.Any(), entities.RepairStatusReadyForPickup).Do(func(r entities.RepairRequest, _ entities.RepairStatus) {
			if r.CompletedAt == nil {
				t.Errorf("expected completed_at to be set")
			}
			if r.PaymentStatus != entities.RepairPaymentPaid {
				t.Errorf("expected paid, got %s", r.PaymentStatus)
			}
		})
		f.uow.EXPECT().AppendRepairProgress(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairPickup, admin, workflow.NoPayload{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.RepairStatusCompleted) {
			t.Fatalf("expected completed, got %s", res.NewState)
		}
	})

	t.Run("second review refused", func(t *testing.T) {
		f := newRepairFixture(t)
		rated := 5
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusCompleted, Rating: &rated,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairReview, owner, workflow.ReviewPayload{Rating: 4})
		if !workflow.IsKind(err, workflow.KindPreconditionFailed) {
			t.Fatalf("expected precondition failure, got %v", err)
		}
	})

	t.Run("review recomputes the technician average guarded by count", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-3").Return(entities.RepairRequest{
			ID: "rep-3", CustomerID: "cus-1", TechnicianID: "tech-1", Status: entities.RepairStatusCompleted,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		r1, r2 := 5, 3
		f.repairs.EXPECT().ListRatedByTechnicianID(gomock.Any(), "tech-1").Return([]entities.RepairRequest{
			{ID: "rep-1", Rating: &r1}, {ID: "rep-2", Rating: &r2},
		}, nil)
		f.uow.EXPECT().StageTechnicianRating(gomock.Any(), 2).Do(func(tr entities.TechnicianRating, _ int) {
			if tr.RatedCount != 3 {
				t.Errorf("expected 3 ratings, got %d", tr.RatedCount)
			}
			if tr.Average != 4 {
				t.Errorf("expected average 4 (5+3+4)/3, got %.2f", tr.Average)
			}
		})
		f.uow.EXPECT().StageRepair(gomock.Any(), entities.RepairStatusCompleted)
		f.uow.EXPECT().AppendRepairProgress(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "rep-3", workflow.RepairReview, owner, workflow.ReviewPayload{Rating: 4, Comment: "good as new"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.RepairStatusCompleted) {
			t.Fatalf("review must not move the repair, got %s", res.NewState)
		}
	})

	t.Run("duplicate payment reference refused", func(t *testing.T) {
		f := newRepairFixture(t)
		f.repairs.EXPECT().GetByID(gomock.Any(), "rep-1").Return(entities.RepairRequest{
			ID: "rep-1", CustomerID: "cus-1", Status: entities.RepairStatusInRepair,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.repairs.EXPECT().ListPaymentsByRepairID(gomock.Any(), "rep-1").Return([]entities.RepairPayment{
			{ID: "pay-1", ProviderPaymentID: "mp-1", Amount: 50},
		}, nil)

		_, err := f.uc.Apply(context.Background(), "rep-1", workflow.RepairRecordPayment, admin, workflow.RecordPaymentPayload{
			Amount: 50, ProviderPaymentID: "mp-1",
		})
		if !workflow.IsKind(err, workflow.KindPreconditionFailed) {
			t.Fatalf("expected precondition failure, got %v", err)
		}
	})
}
