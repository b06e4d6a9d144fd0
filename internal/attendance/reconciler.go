package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"go-sfm/internal/shared/dateutil"
	"go-sfm/internal/user"
)

// ExecutiveSource is the slice of the user repository the sweep needs.
type ExecutiveSource interface {
	FindActiveExecutives(ctx context.Context) ([]user.User, error)
}

// Reconciler backfills Absent records for active executives who never marked
// attendance. It runs nightly from cmd/worker and is safe to run twice for
// the same day.
type Reconciler struct {
	repo   Repository
	users  ExecutiveSource
	logger *zap.Logger
}

func NewReconciler(repo Repository, users ExecutiveSource, logger ...*zap.Logger) *Reconciler {
	l := zap.L().Named("attendance.reconciler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.reconciler")
	}
	return &Reconciler{repo: repo, users: users, logger: l}
}

// Run sweeps the day before now. Weekends are skipped entirely.
func (r *Reconciler) Run(ctx context.Context, now time.Time) error {
	day := dateutil.Day(now.AddDate(0, 0, -1))
	if dateutil.IsWeekend(day) {
		r.logger.Info("reconciliation skipped, weekend", zap.Time("date", day))
		return nil
	}

	executives, err := r.users.FindActiveExecutives(ctx)
	if err != nil {
		r.logger.Error("reconciliation load executives failed", zap.Error(err))
		return err
	}

	markedIDs, err := r.repo.ListExecutiveIDsForDate(ctx, day)
	if err != nil {
		r.logger.Error("reconciliation load marked set failed", zap.Time("date", day), zap.Error(err))
		return err
	}
	marked := make(map[string]struct{}, len(markedIDs))
	for _, id := range markedIDs {
		marked[id] = struct{}{}
	}

	backfilled := 0
	for _, e := range executives {
		if _, ok := marked[e.ID.String()]; ok {
			continue
		}
		a := &Attendance{
			ID:             uuid.New(),
			ExecutiveID:    e.ID,
			AttendanceDate: day,
			Status:         StatusAbsent,
			Reason:         AutoAbsentReason,
		}
		if err := r.repo.Create(ctx, a); err != nil {
			// A concurrent mark between the list and this insert is
			// fine; the unique constraint is the backstop.
			if isUniqueViolation(err) {
				continue
			}
			r.logger.Error("reconciliation backfill failed",
				zap.String("executive_id", e.ID.String()),
				zap.Time("date", day),
				zap.Error(err),
			)
			return err
		}
		backfilled++
	}

	r.logger.Info("reconciliation complete",
		zap.Time("date", day),
		zap.Int("executives", len(executives)),
		zap.Int("backfilled", backfilled),
	)
	return nil
}
