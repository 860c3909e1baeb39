package response

import (
	"time"

	"joalheria_xpto/internal/domain/entities"
)

type DepositResponse struct {
	DepositID string    `json:"deposit_id"`
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Amount    string    `json:"amount"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`

	MPPayloadRaw string                 `json:"mp_payload_raw,omitempty"`
	MPPayload    map[string]interface{} `json:"mp_payload,omitempty"`
}

func FromDeposit(d entities.Deposit) DepositResponse {
	return DepositResponse{
		DepositID:    d.ID,
		ID:           d.ID,
		QuoteID:      d.QuoteID,
		Amount:       d.Amount.StringFixed(2),
		Date:         d.Date,
		Status:       string(d.Status),
		MPPayloadRaw: string(d.MPPayloadRaw),
		MPPayload:    d.MPPayload,
	}
}
