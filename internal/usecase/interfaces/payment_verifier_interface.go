package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentVerifier abstracts the payment collaborator (e.g. Mercado Pago).
//
// The engine never initiates payments; it only consumes the "payment
// captured" fact as a guard input before confirming a payment transition.
type IPaymentVerifier interface {
	VerifyCaptured(ctx context.Context, providerPaymentID string) (captured bool, amount float64, providerResponse json.RawMessage, err error)
}
