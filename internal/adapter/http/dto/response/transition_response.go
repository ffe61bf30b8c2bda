package response

import (
	"atelier_backoffice/internal/usecase"
)

type TransitionResponse struct {
	NewState       string `json:"new_state"`
	HistoryEntryID string `json:"history_entry_id"`
}

func FromTransitionResult(r usecase.TransitionResult) TransitionResponse {
	return TransitionResponse{
		NewState:       r.NewState,
		HistoryEntryID: r.HistoryEntryID,
	}
}
