package response

import (
	"encoding/json"
	"testing"
	"time"

	"joalheria_xpto/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFromDeposit(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]interface{}{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	d := entities.Deposit{
		ID:           "pay-1",
		QuoteID:      "Q-2026-000101",
		Amount:       decimal.RequireFromString("150.00"),
		Date:         now,
		Status:       entities.DepositStatusApproved,
		MPPayloadRaw: raw,
		MPPayload:    payload,
	}

	res := FromDeposit(d)
	if res.ID != "pay-1" || res.DepositID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.QuoteID != "Q-2026-000101" || res.Status != "approved" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if res.Amount != "150.00" {
		t.Fatalf("unexpected amount: %q", res.Amount)
	}
	if !res.Date.Equal(now) {
		t.Fatalf("unexpected date: %+v", res.Date)
	}
	if res.MPPayloadRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.MPPayloadRaw)
	}
	if res.MPPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.MPPayload)
	}
}
