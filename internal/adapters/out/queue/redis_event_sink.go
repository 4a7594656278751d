// Package queue provides the Redis-backed implementation of the event
// sink port. Status notifications and email requests are pushed as JSON
// onto Redis lists consumed by the external notification and email
// collaborators. Delivery is fire-and-forget: callers publish after
// commit and log failures instead of propagating them.
package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"radiopharm/internal/core/ports"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	// DefaultNotificationQueue is the list the notification collaborator consumes.
	DefaultNotificationQueue = "order_status_notifications"

	// DefaultEmailQueue is the list the email collaborator consumes.
	DefaultEmailQueue = "order_status_emails"
)

// RedisEventSink implements ports.EventSink over Redis lists.
type RedisEventSink struct {
	rdb               *redis.Client
	notificationQueue string
	emailQueue        string
}

// NewRedisEventSink connects to Redis and verifies the connection.
//
// Example:
//
//	sink, err := NewRedisEventSink("redis://localhost:6379/0",
//	    DefaultNotificationQueue, DefaultEmailQueue)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer sink.Close()
func NewRedisEventSink(redisURL, notificationQueue, emailQueue string) (*RedisEventSink, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisEventSink{
		rdb:               rdb,
		notificationQueue: notificationQueue,
		emailQueue:        emailQueue,
	}, nil
}

// statusNotificationMessage is the wire format of a status notification.
// EventID deduplicates retried deliveries on the consumer side.
type statusNotificationMessage struct {
	EventID     string    `json:"event_id"`
	OrderID     int64     `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Status      string    `json:"status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// statusEmailMessage is the wire format of an email request.
type statusEmailMessage struct {
	EventID        string    `json:"event_id"`
	OrderNumber    string    `json:"order_number"`
	Status         string    `json:"status"`
	RecipientEmail string    `json:"recipient_email"`
	OccurredAt     time.Time `json:"occurred_at"`
}

// PublishStatusNotification pushes one notification onto the
// notification queue.
func (s *RedisEventSink) PublishStatusNotification(ctx context.Context, notification ports.StatusNotification) error {
	payload, err := json.Marshal(statusNotificationMessage{
		EventID:     uuid.NewString(),
		OrderID:     notification.OrderID,
		OrderNumber: notification.OrderNumber,
		Status:      notification.Status,
		OccurredAt:  notification.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status notification: %w", err)
	}

	return s.rdb.LPush(ctx, s.notificationQueue, payload).Err()
}

// RequestStatusEmail pushes one email request onto the email queue.
func (s *RedisEventSink) RequestStatusEmail(ctx context.Context, email ports.StatusEmail) error {
	payload, err := json.Marshal(statusEmailMessage{
		EventID:        uuid.NewString(),
		OrderNumber:    email.OrderNumber,
		Status:         email.Status,
		RecipientEmail: email.RecipientEmail,
		OccurredAt:     email.OccurredAt,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal status email: %w", err)
	}

	return s.rdb.LPush(ctx, s.emailQueue, payload).Err()
}

// Close releases the Redis connection.
func (s *RedisEventSink) Close() error {
	return s.rdb.Close()
}
