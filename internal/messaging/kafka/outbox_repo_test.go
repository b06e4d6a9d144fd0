package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() OutboxEvent {
	return OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     "req-7",
		AggregateType: "notification",
		AggregateID:   uuid.NewString(),
		EventType:     "notification.push",
		Topic:         "sfm.notification.push.v1",
		Payload:       []byte(`{"message":"hi"}`),
		Status:        OutboxStatusPending,
	}
}

func TestOutboxRepository_Create_InsertsRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := validEvent()
	mock.ExpectExec("INSERT INTO outbox_events").
		WithArgs(
			event.ID, event.RequestID, event.AggregateType,
			event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_Create_RejectsMalformedEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewOutboxRepository(db)

	event := validEvent()
	event.Topic = ""
	assert.Error(t, repo.Create(context.Background(), event))

	event = validEvent()
	event.Payload = nil
	assert.Error(t, repo.Create(context.Background(), event))

	event = validEvent()
	event.Status = "queued"
	assert.Error(t, repo.Create(context.Background(), event))

	// Nothing reached the database.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ListPending_CarriesRequestID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := validEvent()
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id",
		"event_type", "topic", "payload", "status", "retry_count", "next_retry_at",
	}).AddRow(
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status, 0, time.Now(),
	)
	mock.ExpectQuery("FROM outbox_events").
		WithArgs(OutboxStatusPending, OutboxStatusFailed, 50).
		WillReturnRows(rows)

	repo := NewOutboxRepository(db)
	pending, err := repo.ListPending(context.Background(), 50)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "req-7", pending[0].RequestID)
	assert.Equal(t, event.Topic, pending[0].Topic)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailed_SchedulesRetry(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	id := uuid.NewString()
	mock.ExpectExec("UPDATE outbox_events").
		WithArgs(id, OutboxStatusFailed, "broker unreachable").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewOutboxRepository(db)
	require.NoError(t, repo.MarkFailed(context.Background(), id, "broker unreachable"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
