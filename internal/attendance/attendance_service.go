package attendance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	attendanceerrors "go-sfm/internal/attendance/errors"
	"go-sfm/internal/shared/dateutil"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Mark(ctx context.Context, executiveID string, req MarkRequest) (AttendanceResponse, error)
	GetForMonth(ctx context.Context, executiveID string, year, month int) ([]AttendanceResponse, error)
	GetForRange(ctx context.Context, executiveID string, start, end time.Time) ([]AttendanceResponse, error)
	// UpsertLeaveDay writes a Leave record for one day. Idempotent; leave
	// approval calls it once per day in the approved range.
	UpsertLeaveDay(ctx context.Context, executiveID string, day time.Time) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Mark(ctx context.Context, executiveID string, req MarkRequest) (AttendanceResponse, error) {
	if !IsValidStatus(req.Status) {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidStatus
	}

	day, err := dateutil.ParseDay(req.Date)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
	}

	a := &Attendance{
		ID:             uuid.New(),
		ExecutiveID:    uuid.MustParse(executiveID),
		AttendanceDate: day,
		Status:         req.Status,
		Reason:         req.Reason,
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		s.logger.Error("mark attendance failed",
			zap.String("executive_id", executiveID),
			zap.Time("date", day),
			zap.Error(err),
		)
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	// The upsert may have landed on a pre-existing row; read back the
	// surviving record so the response carries its real id.
	stored, err := s.repo.FindByExecutiveAndDate(ctx, executiveID, day)
	if err != nil {
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("attendance marked",
		zap.String("executive_id", executiveID),
		zap.Time("date", day),
		zap.String("status", req.Status),
	)
	return mapToResponse(*stored), nil
}

func (s *service) GetForMonth(ctx context.Context, executiveID string, year, month int) ([]AttendanceResponse, error) {
	start, end := dateutil.MonthBounds(year, month)
	return s.GetForRange(ctx, executiveID, start, end.AddDate(0, 0, -1))
}

// GetForRange returns records with dates in [start, end] inclusive.
func (s *service) GetForRange(ctx context.Context, executiveID string, start, end time.Time) ([]AttendanceResponse, error) {
	rows, err := s.repo.FindByExecutiveBetween(ctx, executiveID, dateutil.Day(start), dateutil.Day(end).AddDate(0, 0, 1))
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("executive_id", executiveID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) UpsertLeaveDay(ctx context.Context, executiveID string, day time.Time) error {
	a := &Attendance{
		ID:             uuid.New(),
		ExecutiveID:    uuid.MustParse(executiveID),
		AttendanceDate: dateutil.Day(day),
		Status:         StatusLeave,
		Reason:         "On approved leave",
	}
	if err := s.repo.Upsert(ctx, a); err != nil {
		return mapRepositoryError(err)
	}
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	return AttendanceResponse{
		ID:          a.ID.String(),
		ExecutiveID: a.ExecutiveID.String(),
		Date:        a.AttendanceDate.Format(dateutil.DayFormat),
		Status:      a.Status,
		Reason:      a.Reason,
	}
}

func mapToListResponse(rows []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(rows))
	for _, a := range rows {
		out = append(out, mapToResponse(a))
	}
	return out
}
