package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	attendanceerrors "go-sfm/internal/attendance/errors"
)

type fakeRepo struct {
	upsertFn   func(ctx context.Context, a *Attendance) error
	createFn   func(ctx context.Context, a *Attendance) error
	byDateFn   func(ctx context.Context, executiveID string, date time.Time) (*Attendance, error)
	betweenFn  func(ctx context.Context, executiveID string, start, end time.Time) ([]Attendance, error)
	idsForDate func(ctx context.Context, date time.Time) ([]string, error)
}

func (f *fakeRepo) Upsert(ctx context.Context, a *Attendance) error { return f.upsertFn(ctx, a) }
func (f *fakeRepo) Create(ctx context.Context, a *Attendance) error { return f.createFn(ctx, a) }
func (f *fakeRepo) FindByExecutiveAndDate(ctx context.Context, executiveID string, date time.Time) (*Attendance, error) {
	return f.byDateFn(ctx, executiveID, date)
}
func (f *fakeRepo) FindByExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) ([]Attendance, error) {
	return f.betweenFn(ctx, executiveID, start, end)
}
func (f *fakeRepo) ListExecutiveIDsForDate(ctx context.Context, date time.Time) ([]string, error) {
	return f.idsForDate(ctx, date)
}

func TestService_Mark_NormalizesDate(t *testing.T) {
	executiveID := uuid.New().String()

	var upserted Attendance
	repo := &fakeRepo{}
	repo.upsertFn = func(ctx context.Context, a *Attendance) error { upserted = *a; return nil }
	repo.byDateFn = func(ctx context.Context, eid string, date time.Time) (*Attendance, error) {
		return &upserted, nil
	}

	svc := NewService(repo)
	resp, err := svc.Mark(context.Background(), executiveID, MarkRequest{
		Date:   "2026-03-15",
		Status: StatusPresent,
	})

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), upserted.AttendanceDate)
	assert.Equal(t, "2026-03-15", resp.Date)
	assert.Equal(t, StatusPresent, resp.Status)
}

func TestService_Mark_SameDayTwiceIsAnUpdate(t *testing.T) {
	executiveID := uuid.New().String()

	stored := Attendance{
		ID:             uuid.New(),
		ExecutiveID:    uuid.MustParse(executiveID),
		AttendanceDate: time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
	}
	repo := &fakeRepo{}
	repo.upsertFn = func(ctx context.Context, a *Attendance) error {
		stored.Status = a.Status
		stored.Reason = a.Reason
		return nil
	}
	repo.byDateFn = func(ctx context.Context, eid string, date time.Time) (*Attendance, error) {
		return &stored, nil
	}

	svc := NewService(repo)
	first, err := svc.Mark(context.Background(), executiveID, MarkRequest{Date: "2026-03-15", Status: StatusPresent})
	assert.NoError(t, err)

	second, err := svc.Mark(context.Background(), executiveID, MarkRequest{Date: "2026-03-15", Status: StatusHalfday, Reason: "left early"})
	assert.NoError(t, err)

	// same surviving row, updated status
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, StatusHalfday, second.Status)
	assert.Equal(t, "left early", second.Reason)
}

func TestService_Mark_Validation(t *testing.T) {
	svc := NewService(&fakeRepo{})
	executiveID := uuid.New().String()

	_, err := svc.Mark(context.Background(), executiveID, MarkRequest{Date: "2026-03-15", Status: "Vacation"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidStatus)

	_, err = svc.Mark(context.Background(), executiveID, MarkRequest{Date: "15-03-2026", Status: StatusPresent})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidDate)
}

func TestService_GetForMonth_QueriesMonthWindow(t *testing.T) {
	executiveID := uuid.New().String()

	var gotStart, gotEnd time.Time
	repo := &fakeRepo{}
	repo.betweenFn = func(ctx context.Context, eid string, start, end time.Time) ([]Attendance, error) {
		gotStart, gotEnd = start, end
		return nil, nil
	}

	svc := NewService(repo)
	_, err := svc.GetForMonth(context.Background(), executiveID, 2026, 2)

	assert.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), gotStart)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), gotEnd)
}

func TestService_UpsertLeaveDay_WritesLeaveStatus(t *testing.T) {
	executiveID := uuid.New().String()

	var upserted Attendance
	repo := &fakeRepo{}
	repo.upsertFn = func(ctx context.Context, a *Attendance) error { upserted = *a; return nil }

	svc := NewService(repo)
	day := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC) // time-bearing on purpose
	assert.NoError(t, svc.UpsertLeaveDay(context.Background(), executiveID, day))

	assert.Equal(t, StatusLeave, upserted.Status)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC), upserted.AttendanceDate)
}
