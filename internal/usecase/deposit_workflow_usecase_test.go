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

type depositFixture struct {
	deposits *mock_interfaces.MockIInvestorDepositRepository
	uowf     *mock_interfaces.MockIUnitOfWorkFactory
	uow      *mock_interfaces.MockIUnitOfWork
	uc       *DepositWorkflowUseCase
}

func newDepositFixture(t *testing.T) depositFixture {
	ctrl := gomock.NewController(t)
	f := depositFixture{
		deposits: mock_interfaces.NewMockIInvestorDepositRepository(ctrl),
		uowf:     mock_interfaces.NewMockIUnitOfWorkFactory(ctrl),
		uow:      mock_interfaces.NewMockIUnitOfWork(ctrl),
	}
	f.uc = NewDepositWorkflowUseCase(f.deposits, f.uowf, nil)
	f.uc.now = func() time.Time { return testNow }
	return f
}

func TestDepositWorkflowUseCase_Apply(t *testing.T) {
	investor := entities.Actor{ID: "inv-1", Role: entities.RoleInvestor}
	admin := entities.Actor{ID: "adm-1", Role: entities.RoleAdmin}

	t.Run("not found", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-x").Return(entities.InvestorDeposit{}, nil)

		_, err := f.uc.Apply(context.Background(), "dep-x", workflow.DepositInvestorConfirm, investor, workflow.NoPayload{})
		if !workflow.IsKind(err, workflow.KindNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("investor cannot close their own branch", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", ConfirmationStatus: entities.DepositStatusAwaitingAdmin,
		}, nil)

		_, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositAdminConfirm, investor, workflow.AdminConfirmPayload{})
		if !workflow.IsKind(err, workflow.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("another investor cannot confirm the deposit", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-2", ConfirmationStatus: entities.DepositStatusPendingConfirm,
		}, nil)

		_, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositInvestorConfirm, investor, workflow.NoPayload{})
		if !workflow.IsKind(err, workflow.KindUnauthorized) {
			t.Fatalf("expected unauthorized, got %v", err)
		}
	})

	t.Run("charges above the gross amount are refused before any write", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 1000, ConfirmationStatus: entities.DepositStatusAwaitingReceipt,
		}, nil)

		_, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositAttachReceipt, admin, workflow.AttachReceiptPayload{
			ReceiptURL: "https://receipts/dep-1.pdf", Charges: 1500,
		})
		if !workflow.IsKind(err, workflow.KindPreconditionFailed) {
			t.Fatalf("expected precondition failure, got %v", err)
		}
	})

	t.Run("attached receipt derives the net amount", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 1000, ConfirmationStatus: entities.DepositStatusAwaitingReceipt,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusAwaitingReceipt).Do(func(d entities.InvestorDeposit, _ entities.DepositConfirmationStatus) {
			if d.Amount != 975 {
				t.Errorf("expected net amount 975, got %.2f", d.Amount)
			}
			if d.ReceiptURL != "https://receipts/dep-1.pdf" {
				t.Errorf("unexpected receipt url %q", d.ReceiptURL)
			}
		})
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositAttachReceipt, admin, workflow.AttachReceiptPayload{
			ReceiptURL: "https://receipts/dep-1.pdf", Charges: 25,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.DepositStatusPendingConfirm) {
			t.Fatalf("expected pending_confirmation, got %s", res.NewState)
		}
	})

	t.Run("admin closes the investor branch", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 500, ConfirmationStatus: entities.DepositStatusAwaitingAdmin,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusAwaitingAdmin).Do(func(d entities.InvestorDeposit, _ entities.DepositConfirmationStatus) {
			if d.VerifiedAt == nil || !d.VerifiedAt.Equal(testNow) {
				t.Errorf("expected verified_at to be set, got %v", d.VerifiedAt)
			}
			if d.Amount != 490 {
				t.Errorf("expected net amount 490, got %.2f", d.Amount)
			}
		})
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositAdminConfirm, admin, workflow.AdminConfirmPayload{Charges: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.DepositStatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", res.NewState)
		}
	})

	t.Run("investor closes the admin branch", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 500, Charges: 5, ConfirmationStatus: entities.DepositStatusPendingConfirm,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusPendingConfirm).Do(func(d entities.InvestorDeposit, _ entities.DepositConfirmationStatus) {
			if d.Amount != 495 {
				t.Errorf("expected net amount 495, got %.2f", d.Amount)
			}
		})
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositInvestorConfirm, investor, workflow.NoPayload{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.DepositStatusConfirmed) {
			t.Fatalf("expected confirmed, got %s", res.NewState)
		}
	})

	t.Run("dispute and resolution preserve both notes", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 500, ConfirmationStatus: entities.DepositStatusPendingConfirm,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusPendingConfirm).Do(func(d entities.InvestorDeposit, _ entities.DepositConfirmationStatus) {
			if d.InvestorNotes != "amount on receipt is wrong" {
				t.Errorf("expected investor note to be stored, got %q", d.InvestorNotes)
			}
		})
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositDispute, investor, workflow.DisputePayload{Note: "amount on receipt is wrong"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.DepositStatusDisputed) {
			t.Fatalf("expected disputed, got %s", res.NewState)
		}

		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 500,
			InvestorNotes:      "amount on receipt is wrong",
			ConfirmationStatus: entities.DepositStatusDisputed,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusDisputed).Do(func(d entities.InvestorDeposit, _ entities.DepositConfirmationStatus) {
			if d.Notes != "investor: amount on receipt is wrong | admin: receipt reissued with the corrected amount" {
				t.Errorf("unexpected audit notes %q", d.Notes)
			}
			if d.InvestorNotes != "" {
				t.Errorf("expected investor note to be cleared, got %q", d.InvestorNotes)
			}
		})
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(nil)

		res, err = f.uc.Apply(context.Background(), "dep-1", workflow.DepositResolveDispute, admin, workflow.ResolveDisputePayload{Response: "receipt reissued with the corrected amount"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.NewState != string(entities.DepositStatusPendingConfirm) {
			t.Fatalf("dispute resolution must reopen pending_confirmation, got %s", res.NewState)
		}
	})

	t.Run("commit conflict surfaces as conflicting state", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", GrossAmount: 500, ConfirmationStatus: entities.DepositStatusPendingConfirm,
		}, nil)
		f.uowf.EXPECT().Begin().Return(f.uow)
		f.uow.EXPECT().StageDeposit(gomock.Any(), entities.DepositStatusPendingConfirm)
		f.uow.EXPECT().AppendDepositLog(gomock.Any())
		f.uow.EXPECT().Commit(gomock.Any()).Return(workflow.ConflictingState("the record was modified by a concurrent transition"))

		_, err := f.uc.Apply(context.Background(), "dep-1", workflow.DepositInvestorConfirm, investor, workflow.NoPayload{})
		if !workflow.IsKind(err, workflow.KindConflictingState) {
			t.Fatalf("expected conflicting state, got %v", err)
		}
	})
}

func TestDepositWorkflowUseCase_GetByID(t *testing.T) {
	t.Run("empty id", func(t *testing.T) {
		f := newDepositFixture(t)
		_, err := f.uc.GetByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidEntityID) {
			t.Fatalf("expected ErrInvalidEntityID, got %v", err)
		}
	})

	t.Run("aggregates the audit log", func(t *testing.T) {
		f := newDepositFixture(t)
		f.deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(entities.InvestorDeposit{
			ID: "dep-1", InvestorID: "inv-1", ConfirmationStatus: entities.DepositStatusConfirmed,
		}, nil)
		f.deposits.EXPECT().ListLogByDepositID(gomock.Any(), "dep-1").Return([]entities.DepositLog{
			{ID: "log-1"}, {ID: "log-2"},
		}, nil)

		detail, err := f.uc.GetByID(context.Background(), "dep-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(detail.Log) != 2 {
			t.Fatalf("expected 2 log entries, got %d", len(detail.Log))
		}
	})
}
