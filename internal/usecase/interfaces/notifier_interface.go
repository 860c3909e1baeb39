package interfaces

import (
	"context"

	"joalheria_xpto/internal/domain/entities"
)

// INotifier abstracts outbound notifications (SMS/email to the guest,
// internal alerts to staff).
//
// The workflow treats delivery as best effort: a failed send is logged and
// the transition still commits.
type INotifier interface {
	Notify(ctx context.Context, n entities.Notification) error
}
