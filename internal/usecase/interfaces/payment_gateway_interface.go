package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentGateway is the port to the external payment provider.
//
// The deposit flow hands over the raw request payload and stores whatever the
// provider answered, raw, next to the parsed fields. Reconciliation against
// provider dashboards works off that stored response, so implementations must
// return it unmodified.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
