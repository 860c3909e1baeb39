package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// DepositStatus represents the deposit processing outcome.
//
// The shop collects a partial deposit when the guest approves a quote; the
// type supports a denied status for completeness.

type DepositStatus string

const (
	DepositStatusPending  DepositStatus = "pending"
	DepositStatusApproved DepositStatus = "approved"
	DepositStatusDenied   DepositStatus = "denied"
)

// Deposit is the up-front payment taken against an approved quote.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// MercadoPago payload:
//   - MPPayloadRaw keeps the original body (JSON) for traceability/audit.
//   - MPPayload is an optional parsed representation, useful for querying/debugging.
//     (We persist both because different MP integrations may vary in schema.)

type Deposit struct {
	ID      string          `json:"id"`
	QuoteID string          `json:"quote_id"`
	Amount  decimal.Decimal `json:"amount"`
	Date    time.Time       `json:"date"`
	Status  DepositStatus   `json:"status"`

	MPPayloadRaw json.RawMessage        `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}
