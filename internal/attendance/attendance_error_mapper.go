package attendance

import (
	"errors"
	"strings"

	attendanceerrors "go-sfm/internal/attendance/errors"

	"github.com/jackc/pgx/v5/pgconn"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_attendance_executive_date" {
			return attendanceerrors.ErrAlreadyMarked
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_attendance_executive_date") {
		return attendanceerrors.ErrAlreadyMarked
	}

	return err
}

// isUniqueViolation reports whether err is a duplicate on the per-day
// constraint; the reconciliation sweep treats that as a benign race.
func isUniqueViolation(err error) bool {
	return errors.Is(mapRepositoryError(err), attendanceerrors.ErrAlreadyMarked)
}
