package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"go-sfm/internal/user"
)

type fakeExecutiveSource struct {
	executives []user.User
}

func (f *fakeExecutiveSource) FindActiveExecutives(ctx context.Context) ([]user.User, error) {
	return f.executives, nil
}

// monday is a known weekday anchor; Run sweeps the day before the time it is
// handed, so passing Tuesday sweeps Monday.
var monday = time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)

func TestReconciler_BackfillsAbsentForUnmarked(t *testing.T) {
	marked := user.User{ID: uuid.New()}
	unmarked := user.User{ID: uuid.New()}

	var created []Attendance
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error { created = append(created, *a); return nil },
		idsForDate: func(ctx context.Context, date time.Time) ([]string, error) {
			return []string{marked.ID.String()}, nil
		},
	}
	users := &fakeExecutiveSource{executives: []user.User{marked, unmarked}}

	rec := NewReconciler(repo, users)
	tuesday := monday.AddDate(0, 0, 1)
	assert.NoError(t, rec.Run(context.Background(), tuesday))

	assert.Len(t, created, 1)
	assert.Equal(t, unmarked.ID, created[0].ExecutiveID)
	assert.Equal(t, StatusAbsent, created[0].Status)
	assert.Equal(t, AutoAbsentReason, created[0].Reason)
	assert.Equal(t, time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC), created[0].AttendanceDate)
}

func TestReconciler_WeekendIsZeroWrites(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			t.Fatal("no writes expected on a weekend sweep")
			return nil
		},
		idsForDate: func(ctx context.Context, date time.Time) ([]string, error) {
			t.Fatal("no reads expected on a weekend sweep")
			return nil, nil
		},
	}
	users := &fakeExecutiveSource{executives: []user.User{{ID: uuid.New()}}}

	rec := NewReconciler(repo, users)
	// Sunday 23:59 sweeps Saturday; Monday 23:59 sweeps Sunday.
	sunday := time.Date(2026, 3, 1, 23, 59, 0, 0, time.UTC)
	assert.NoError(t, rec.Run(context.Background(), sunday))
	assert.NoError(t, rec.Run(context.Background(), monday))
}

func TestReconciler_SecondRunIsNoop(t *testing.T) {
	e := user.User{ID: uuid.New()}

	markedSet := map[string]struct{}{}
	var created int
	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			markedSet[a.ExecutiveID.String()] = struct{}{}
			created++
			return nil
		},
		idsForDate: func(ctx context.Context, date time.Time) ([]string, error) {
			ids := make([]string, 0, len(markedSet))
			for id := range markedSet {
				ids = append(ids, id)
			}
			return ids, nil
		},
	}
	users := &fakeExecutiveSource{executives: []user.User{e}}

	rec := NewReconciler(repo, users)
	tuesday := monday.AddDate(0, 0, 1)
	assert.NoError(t, rec.Run(context.Background(), tuesday))
	assert.NoError(t, rec.Run(context.Background(), tuesday))
	assert.Equal(t, 1, created)
}

func TestReconciler_RacedInsertIsBenign(t *testing.T) {
	e := user.User{ID: uuid.New()}

	repo := &fakeRepo{
		createFn: func(ctx context.Context, a *Attendance) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_attendance_executive_date"}
		},
		idsForDate: func(ctx context.Context, date time.Time) ([]string, error) { return nil, nil },
	}
	users := &fakeExecutiveSource{executives: []user.User{e}}

	rec := NewReconciler(repo, users)
	tuesday := monday.AddDate(0, 0, 1)
	assert.NoError(t, rec.Run(context.Background(), tuesday))
}
