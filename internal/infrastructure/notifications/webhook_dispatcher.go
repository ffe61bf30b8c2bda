package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"atelier_backoffice/internal/usecase/interfaces"
)

// WebhookDispatcher posts a small JSON event to a configured endpoint after
// each committed transition. Delivery is best effort; callers log failures
// and keep going, the transition itself has already committed.

type WebhookDispatcher struct {
	endpoint string
	client   *http.Client
}

var _ interfaces.INotificationDispatcher = (*WebhookDispatcher)(nil)

func NewWebhookDispatcherFromEnv() *WebhookDispatcher {
	return NewWebhookDispatcher(os.Getenv("TRANSITION_WEBHOOK_URL"))
}

func NewWebhookDispatcher(endpoint string) *WebhookDispatcher {
	if endpoint == "" {
		log.Printf("[notification][webhook] no endpoint configured, dispatch disabled")
	}
	return &WebhookDispatcher{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

type transitionEvent struct {
	EntityType string `json:"entity_type"`
	EntityID   string `json:"entity_id"`
	NewState   string `json:"new_state"`
}

func (d *WebhookDispatcher) Dispatch(ctx context.Context, entityType, entityID, newState string) error {
	if d.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(transitionEvent{
		EntityType: entityType,
		EntityID:   entityID,
		NewState:   newState,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook endpoint returned status %d", resp.StatusCode)
	}
	log.Printf("[notification][webhook] dispatched entity_type=%s entity_id=%s new_state=%s", entityType, entityID, newState)
	return nil
}
