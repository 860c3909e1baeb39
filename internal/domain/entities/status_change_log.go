package entities

import "time"

// StatusChangeLog is one immutable audit record of a workflow transition.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (quote_id-index): quote_id
//
// Records are append-only; nothing in the service updates or deletes them.
type StatusChangeLog struct {
	ID             string      `json:"id"`
	QuoteID        string      `json:"quote_id"`
	PreviousStatus QuoteStatus `json:"previous_status"`
	NewStatus      QuoteStatus `json:"new_status"`
	ActorID        string      `json:"actor_id"`
	Notes          string      `json:"notes,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
}
