package consumer

import (
	"context"
	"encoding/json"

	"go-sfm/internal/events"
	"go-sfm/internal/realtime"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumeNotificationPush forwards outbox-published notification events to
// the websocket hub. Delivery is best-effort: a user with no open socket
// simply misses the push and reads the notification from the list endpoint.
func ConsumeNotificationPush(
	ctx context.Context,
	reader *kafkago.Reader,
	hub *realtime.Hub,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.notification_push")
	log.Info("notification push consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("notification push consumer stopped")
				return
			}
			log.Error("fetch notification push message failed", zap.Error(err))
			continue
		}

		var event events.NotificationPushEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode notification push event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.UserID == "" {
			log.Warn("notification push event without user_id, skipping",
				zap.String("notification_id", event.NotificationID),
			)
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		// The payload is re-encoded rather than forwarded raw so the socket
		// only ever carries fields the event type declares.
		payload, err := json.Marshal(event)
		if err != nil {
			log.Error("encode notification push payload failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		hub.Emit(event.UserID, payload)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit notification push message failed", zap.Error(err))
			continue
		}

		log.Info("notification pushed",
			zap.String("notification_id", event.NotificationID),
			zap.String("user_id", event.UserID),
			zap.Int("connections", hub.ConnectionCount(event.UserID)),
		)
	}
}
