package request

import "encoding/json"

// DepositCollectRequest is the payload for the "collect deposit" route.
//
// `mp_payload` is stored as-is (raw JSON) to support varying Mercado Pago schemas.

type DepositCollectRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
