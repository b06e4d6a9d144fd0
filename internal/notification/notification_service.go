package notification

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-sfm/internal/events"
	"go-sfm/internal/messaging/kafka"
	nerrors "go-sfm/internal/notification/errors"
	"go-sfm/internal/shared/contextutil"
	"go-sfm/internal/shared/dateutil"
)

const listLimit = 50

// Publisher is the write side other features depend on. Callers treat
// Publish as best-effort: a failed notification never fails the mutation
// that produced it.
type Publisher interface {
	Publish(ctx context.Context, userID, message, link, notifType string) error
}

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	Publisher
	ListMine(ctx context.Context, userID string, req ListFilterRequest) ([]NotificationResponse, error)
	MarkAllRead(ctx context.Context, userID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Publish persists the notification row and its push event in one
// transaction so the realtime fan-out can never observe a notification
// that was rolled back.
func (s *service) Publish(ctx context.Context, userID, message, link, notifType string) error {
	rid := contextutil.GetRequestID(ctx)

	uid, err := uuid.Parse(userID)
	if err != nil {
		s.logger.Warn("publish notification invalid user id",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
		)
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("publish notification begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}
	defer tx.Rollback()

	n := &Notification{
		ID:      uuid.New(),
		UserID:  uid,
		Message: message,
		Link:    link,
		Type:    notifType,
		IsRead:  false,
	}
	if err := s.repo.WithTx(tx).Create(ctx, n); err != nil {
		s.logger.Error("publish notification persist failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	if s.outbox != nil {
		event := events.NotificationPushEvent{
			EventType:      "notification_created",
			RequestID:      rid,
			NotificationID: n.ID.String(),
			UserID:         userID,
			Message:        message,
			Link:           link,
			Type:           notifType,
			OccurredAt:     time.Now().UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal notification event failed", zap.String("request_id", rid), zap.Error(err))
			return err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "notification",
			AggregateID:   n.ID.String(),
			EventType:     event.EventType,
			Topic:         events.NotificationPushTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("publish notification outbox persist failed",
				zap.String("request_id", rid),
				zap.String("notification_id", n.ID.String()),
				zap.Error(err),
			)
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("publish notification commit failed", zap.String("request_id", rid), zap.Error(err))
		return err
	}

	s.logger.Info("notification published",
		zap.String("request_id", rid),
		zap.String("notification_id", n.ID.String()),
		zap.String("user_id", userID),
		zap.String("type", notifType),
	)
	return nil
}

func (s *service) ListMine(ctx context.Context, userID string, req ListFilterRequest) ([]NotificationResponse, error) {
	from, to, err := resolveWindow(req)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByUser(ctx, userID, from, to, listLimit)
	if err != nil {
		s.logger.Error("list notifications failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) MarkAllRead(ctx context.Context, userID string) error {
	if err := s.repo.MarkAllRead(ctx, userID); err != nil {
		s.logger.Error("mark notifications read failed", zap.String("user_id", userID), zap.Error(err))
		return err
	}
	return nil
}

// resolveWindow turns the filter request into a half-open [from, to)
// interval. An explicit date range wins over year/month; both are optional.
func resolveWindow(req ListFilterRequest) (*time.Time, *time.Time, error) {
	if req.StartDate != "" || req.EndDate != "" {
		if req.StartDate == "" || req.EndDate == "" {
			return nil, nil, nerrors.ErrInvalidFilter
		}
		start, err := dateutil.ParseDay(req.StartDate)
		if err != nil {
			return nil, nil, nerrors.ErrInvalidFilter
		}
		end, err := dateutil.ParseDay(req.EndDate)
		if err != nil {
			return nil, nil, nerrors.ErrInvalidFilter
		}
		if end.Before(start) {
			return nil, nil, nerrors.ErrInvalidFilter
		}
		to := end.AddDate(0, 0, 1)
		return &start, &to, nil
	}

	if req.Year != 0 || req.Month != 0 {
		if req.Year == 0 || req.Month < 1 || req.Month > 12 {
			return nil, nil, nerrors.ErrInvalidFilter
		}
		start, end := dateutil.MonthBounds(req.Year, req.Month)
		return &start, &end, nil
	}

	return nil, nil, nil
}

func mapToResponse(n Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID.String(),
		UserID:    n.UserID.String(),
		Message:   n.Message,
		Link:      n.Link,
		Type:      n.Type,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(rows))
	for _, n := range rows {
		out = append(out, mapToResponse(n))
	}
	return out
}
