package entities

// NotificationChannel says who a workflow notification is for.

type NotificationChannel string

const (
	NotificationChannelCustomer NotificationChannel = "customer"
	NotificationChannelInternal NotificationChannel = "internal"
)

// Notification is the message emitted after a workflow transition lands.
// Delivery is owned by whatever INotifier implementation is wired in;
// transitions never fail because a notification couldn't be sent.
type Notification struct {
	QuoteID string              `json:"quote_id"`
	Channel NotificationChannel `json:"channel"`
	Event   QuoteStatus         `json:"event"`
	Message string              `json:"message"`
}
