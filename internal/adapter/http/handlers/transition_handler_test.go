package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"atelier_backoffice/internal/adapter/http/handlers/mocks"
	"atelier_backoffice/internal/domain/workflow"
	"atelier_backoffice/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newTransitionRouter(uc usecase.ITransitionUseCase) *gin.Engine {
	r := gin.New()
	r.POST("/v1/workflows/:entity_type/:id/:action", NewTransitionHandler(uc).ApplyTransition)
	return r
}

func applyTransition(r *gin.Engine, path, body string, withActor bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	if withActor {
		req.Header.Set("X-Actor-Id", "cus-1")
		req.Header.Set("X-Actor-Role", "customer")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestTransitionHandler_ApplyTransition(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown entity type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)

		w := applyTransition(newTransitionRouter(uc), "/v1/workflows/invoice/inv-1/confirm", "", true)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)

		w := applyTransition(newTransitionRouter(uc), "/v1/workflows/booking/bkg-1/confirm", "", false)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unknown action for the entity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)

		w := applyTransition(newTransitionRouter(uc), "/v1/workflows/booking/bkg-1/teleport", "", true)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("payload with unknown fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)

		w := applyTransition(newTransitionRouter(uc), "/v1/workflows/booking/bkg-1/reschedule", `{"scheduled_date":"2025-07-01","surprise":true}`, true)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns new state and history entry", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockITransitionUseCase(ctrl)

		uc.EXPECT().Apply(gomock.Any(), gomock.Any()).DoAndReturn(func(_ any, cmd usecase.TransitionCommand) (usecase.TransitionResult, error) {
			if cmd.EntityType != workflow.EntityBooking || cmd.EntityID != "bkg-1" || cmd.Action != workflow.BookingApproveQuote {
				t.Errorf("unexpected command %+v", cmd)
			}
			if cmd.Actor.ID != "cus-1" {
				t.Errorf("unexpected actor %+v", cmd.Actor)
			}
			return usecase.TransitionResult{NewState: "quote_approved", HistoryEntryID: "hist-1"}, nil
		})

		w := applyTransition(newTransitionRouter(uc), "/v1/workflows/booking/bkg-1/approve_quote", "", true)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["new_state"] != "quote_approved" || body["history_entry_id"] != "hist-1" {
			t.Fatalf("unexpected body %v", body)
		}
	})

	t.Run("workflow refusals map to their status codes", func(t *testing.T) {
		cases := []struct {
			name   string
			err    error
			status int
			code   string
		}{
			{"not found", workflow.NotFound("booking not found"), http.StatusNotFound, "NOT_FOUND"},
			{"invalid transition", workflow.InvalidTransition("no rule"), http.StatusConflict, "INVALID_TRANSITION"},
			{"unauthorized", workflow.Unauthorized("only the owning customer may approve"), http.StatusForbidden, "UNAUTHORIZED_TRANSITION"},
			{"precondition failed", workflow.PreconditionFailed("Quote has expired"), http.StatusUnprocessableEntity, "PRECONDITION_FAILED"},
			{"conflicting state", workflow.ConflictingState("concurrent transition"), http.StatusConflict, "CONFLICTING_STATE"},
			{"verifier unavailable", usecase.ErrPaymentVerifierNotConfigured, http.StatusServiceUnavailable, "PAYMENT_VERIFIER_UNAVAILABLE"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				ctrl := gomock.NewController(t)
				defer ctrl.Finish()
				uc := mocks.NewMockITransitionUseCase(ctrl)
				uc.EXPECT().Apply(gomock.Any(), gomock.Any()).Return(usecase.TransitionResult{}, tc.err)

				w := applyTransition(newTransitionRouter(uc), "/v1/workflows/booking/bkg-1/approve_quote", "", true)
				if w.Code != tc.status {
					t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
				}
				var body struct {
					Code string `json:"code"`
				}
				if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
					t.Fatalf("invalid response body: %v", err)
				}
				if body.Code != tc.code {
					t.Fatalf("expected code %s, got %s", tc.code, body.Code)
				}
			})
		}
	})
}
