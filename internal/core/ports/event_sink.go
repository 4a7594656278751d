package ports

import (
	"context"
	"time"
)

// StatusNotification is the event emitted once per order status change,
// placement included. It is consumed by the external notification
// collaborator.
type StatusNotification struct {
	OrderID     int64
	OrderNumber string
	Status      string
	OccurredAt  time.Time
}

// StatusEmail is the request to send a status email to the clinic that
// placed the order.
type StatusEmail struct {
	OrderNumber    string
	Status         string
	RecipientEmail string
	OccurredAt     time.Time
}

// EventSink is the fire-and-forget outbound port for notifications and
// email requests. Delivery is best-effort: publishing happens after the
// triggering transaction commits, and a failed publish is logged by the
// caller, never propagated and never rolled back.
type EventSink interface {
	PublishStatusNotification(ctx context.Context, notification StatusNotification) error
	RequestStatusEmail(ctx context.Context, email StatusEmail) error
}
