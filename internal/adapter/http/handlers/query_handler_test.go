package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier_backoffice/internal/adapter/http/handlers/mocks"
	"atelier_backoffice/internal/domain/entities"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQueryHandler_GetBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingWorkflowUseCase(ctrl)
		repairs := mocks.NewMockIRepairWorkflowUseCase(ctrl)
		deposits := mocks.NewMockIDepositWorkflowUseCase(ctrl)
		h := NewQueryHandler(bookings, repairs, deposits)

		bookings.EXPECT().GetByID(gomock.Any(), "bkg-x").Return(usecase.BookingDetail{}, workflow.NotFound("booking not found"))

		r := gin.New()
		r.GET("/v1/bookings/:id", h.GetBooking)
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bkg-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("returns the aggregate with its history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookings := mocks.NewMockIBookingWorkflowUseCase(ctrl)
		repairs := mocks.NewMockIRepairWorkflowUseCase(ctrl)
		deposits := mocks.NewMockIDepositWorkflowUseCase(ctrl)
		h := NewQueryHandler(bookings, repairs, deposits)

		bookings.EXPECT().GetByID(gomock.Any(), "bkg-1").Return(usecase.BookingDetail{
			Booking: entities.Booking{ID: "bkg-1", CustomerID: "cus-1", Status: entities.BookingStatusConfirmed},
			Progress: []entities.ProgressEntry{
				{ID: "hist-1", Action: "confirm"},
			},
		}, nil)

		r := gin.New()
		r.GET("/v1/bookings/:id", h.GetBooking)
		req := httptest.NewRequest(http.MethodGet, "/v1/bookings/bkg-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body struct {
			Booking struct {
				ID     string `json:"id"`
				Status string `json:"status"`
			} `json:"booking"`
			Progress []struct {
				ID string `json:"id"`
			} `json:"progress"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Booking.ID != "bkg-1" || body.Booking.Status != string(entities.BookingStatusConfirmed) {
			t.Fatalf("unexpected booking %+v", body.Booking)
		}
		if len(body.Progress) != 1 || body.Progress[0].ID != "hist-1" {
			t.Fatalf("unexpected progress %+v", body.Progress)
		}
	})
}

func TestQueryHandler_GetDeposit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	bookings := mocks.NewMockIBookingWorkflowUseCase(ctrl)
	repairs := mocks.NewMockIRepairWorkflowUseCase(ctrl)
	deposits := mocks.NewMockIDepositWorkflowUseCase(ctrl)
	h := NewQueryHandler(bookings, repairs, deposits)

	deposits.EXPECT().GetByID(gomock.Any(), "dep-1").Return(usecase.DepositDetail{
		Deposit: entities.InvestorDeposit{ID: "dep-1", GrossAmount: 1000, Charges: 25, Amount: 975, ConfirmationStatus: entities.DepositStatusConfirmed},
		Log:     []entities.DepositLog{{ID: "log-1", Action: "investor_confirm"}},
	}, nil)

	r := gin.New()
	r.GET("/v1/deposits/:id", h.GetDeposit)
	req := httptest.NewRequest(http.MethodGet, "/v1/deposits/dep-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var body struct {
		Deposit struct {
			Amount float64 `json:"amount"`
		} `json:"deposit"`
		Log []struct {
			ID string `json:"id"`
		} `json:"log"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Deposit.Amount != 975 {
		t.Fatalf("expected net amount 975, got %.2f", body.Deposit.Amount)
	}
	if len(body.Log) != 1 || body.Log[0].ID != "log-1" {
		t.Fatalf("unexpected log %+v", body.Log)
	}
}
