package notification

import (
	"context"
	"log"

	"joalheria_xpto/internal/domain/entities"
	"joalheria_xpto/internal/usecase/interfaces"
)

// LogNotifier emits workflow notifications as log lines. Guest-facing
// delivery (SMS, e-mail) is a separate integration; until it lands the
// workflow records what would have been sent.

type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, msg entities.Notification) error {
	log.Printf("[notify][%s] quote_id=%s event=%s message=%q", msg.Channel, msg.QuoteID, msg.Event, msg.Message)
	return nil
}
