package payments

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"strconv"
	"strings"

	"atelier_backoffice/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoVerifierNotConfigured = errors.New("mercado pago verifier not configured")
var ErrInvalidProviderPaymentID = errors.New("invalid provider payment id")

// MercadoPagoVerifier checks whether a payment id reported by a client was
// actually captured by Mercado Pago. Payments are created elsewhere; this
// service only reads them back before trusting a confirmation request.

type MercadoPagoVerifier struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentVerifier = (*MercadoPagoVerifier)(nil)

func NewMercadoPagoVerifier(accessToken string) (*MercadoPagoVerifier, error) {
	if isPaymentVerifierMockEnabled() {
		log.Printf("[payment][verifier] mock mode enabled")
		return &MercadoPagoVerifier{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][verifier] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][verifier] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][verifier] Mercado Pago client initialized")

	return &MercadoPagoVerifier{client: payment.NewClient(cfg)}, nil
}

func (v *MercadoPagoVerifier) VerifyCaptured(ctx context.Context, providerPaymentID string) (bool, float64, json.RawMessage, error) {
	if v != nil && v.mockMode {
		log.Printf("[payment][verifier] mock verify provider_payment_id=%s", providerPaymentID)
		b, _ := json.Marshal(map[string]any{
			"id":            providerPaymentID,
			"status":        "approved",
			"status_detail": "accredited",
		})
		return true, 0, b, nil
	}

	if v == nil || v.client == nil {
		log.Printf("[payment][verifier] verifier not configured")
		return false, 0, nil, ErrMercadoPagoVerifierNotConfigured
	}

	id, err := strconv.Atoi(strings.TrimSpace(providerPaymentID))
	if err != nil {
		log.Printf("[payment][verifier] non-numeric provider_payment_id=%q", providerPaymentID)
		return false, 0, nil, ErrInvalidProviderPaymentID
	}

	resp, err := v.client.Get(ctx, id)
	if err != nil {
		log.Printf("[payment][verifier] sdk get failed provider_payment_id=%d err=%v", id, err)
		return false, 0, nil, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][verifier] response marshal failed err=%v", err)
		return false, 0, nil, err
	}

	captured := resp.Status == "approved"
	log.Printf("[payment][verifier] verify done provider_payment_id=%d provider_status=%s captured=%t", id, resp.Status, captured)
	return captured, resp.TransactionAmount, b, nil
}

func isPaymentVerifierMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
