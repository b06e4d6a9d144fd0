package events

import "time"

const NotificationPushTopic = "sfm.notification.push.v1"

// NotificationPushEvent is the fan-out payload carried through the outbox to
// the realtime gateway. Delivery is best-effort and unordered relative to the
// mutation that produced it.
type NotificationPushEvent struct {
	EventType      string    `json:"event_type"`
	RequestID      string    `json:"request_id,omitempty"`
	NotificationID string    `json:"notification_id"`
	UserID         string    `json:"user_id"`
	Message        string    `json:"message"`
	Link           string    `json:"link"`
	Type           string    `json:"type"`
	OccurredAt     time.Time `json:"occurred_at"`
}
