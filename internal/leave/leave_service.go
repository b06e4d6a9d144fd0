package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	leaveerrors "go-sfm/internal/leave/errors"
	"go-sfm/internal/notification"
	"go-sfm/internal/shared/dateutil"
	"go-sfm/internal/user"
)

// AttendanceMarker is the slice of the attendance service leave approval
// needs: one Leave-status upsert per approved day.
type AttendanceMarker interface {
	UpsertLeaveDay(ctx context.Context, executiveID string, day time.Time) error
}

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Apply(ctx context.Context, executiveID string, req ApplyLeaveRequest) (LeaveResponse, error)
	MyHistory(ctx context.Context, executiveID string) ([]LeaveResponse, error)
	TeamRequests(ctx context.Context, managerID string) ([]LeaveResponse, error)
	UpdateStatus(ctx context.Context, managerID, leaveID string, req UpdateStatusRequest) (LeaveResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	userRepo   user.Repository
	attendance AttendanceMarker
	notifier   notification.Publisher
	logger     *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	userRepo user.Repository,
	attendance AttendanceMarker,
	notifier notification.Publisher,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		db:         db,
		repo:       repo,
		userRepo:   userRepo,
		attendance: attendance,
		notifier:   notifier,
		logger:     l,
	}
}

func (s *service) Apply(ctx context.Context, executiveID string, req ApplyLeaveRequest) (LeaveResponse, error) {
	start, err := dateutil.ParseDay(req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	end, err := dateutil.ParseDay(req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDate
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidPeriod
	}

	executive, err := s.userRepo.FindByID(ctx, executiveID)
	if err != nil {
		s.logger.Error("apply leave load executive failed", zap.String("executive_id", executiveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if executive.ManagerID == nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("apply leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	l := &Leave{
		ID:          uuid.New(),
		ExecutiveID: executive.ID,
		ManagerID:   *executive.ManagerID,
		StartDate:   start,
		EndDate:     end,
		Reason:      req.Reason,
		Status:      StatusPending,
	}
	if err := s.repo.WithTx(tx).Create(ctx, l); err != nil {
		s.logger.Error("apply leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("apply leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave applied",
		zap.String("leave_id", l.ID.String()),
		zap.String("executive_id", executiveID),
		zap.Time("start_date", start),
		zap.Time("end_date", end),
	)

	s.notify(ctx, executive.ManagerID.String(),
		fmt.Sprintf("%s applied for leave from %s to %s.",
			executive.Name, start.Format(dateutil.DayFormat), end.Format(dateutil.DayFormat)))

	return mapToResponse(*l), nil
}

func (s *service) MyHistory(ctx context.Context, executiveID string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByExecutive(ctx, executiveID)
	if err != nil {
		s.logger.Error("leave history failed", zap.String("executive_id", executiveID), zap.Error(err))
		return nil, err
	}

	out := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, mapToResponse(l))
	}
	return out, nil
}

func (s *service) TeamRequests(ctx context.Context, managerID string) ([]LeaveResponse, error) {
	rows, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("team leave requests failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}

	out := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		resp := mapToResponse(l.Leave)
		resp.ExecutiveName = l.ExecutiveName
		out = append(out, resp)
	}
	return out, nil
}

// UpdateStatus applies the manager's decision. Transitions are terminal:
// a decided request never changes again. Approval expands the period into
// per-day Leave attendance records.
func (s *service) UpdateStatus(ctx context.Context, managerID, leaveID string, req UpdateStatusRequest) (LeaveResponse, error) {
	if req.Status != StatusApproved && req.Status != StatusRejected {
		return LeaveResponse{}, leaveerrors.ErrInvalidStatus
	}

	l, err := s.repo.FindByIDAndManager(ctx, managerID, leaveID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.IsTerminal() {
		return LeaveResponse{}, leaveerrors.ErrAlreadyDecided
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).UpdateStatus(ctx, leaveID, req.Status); err != nil {
		s.logger.Error("update leave status persist failed", zap.String("leave_id", leaveID), zap.Error(err))
		return LeaveResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update leave status commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	l.Status = req.Status

	if req.Status == StatusApproved {
		s.backfillLeaveDays(ctx, l)
	}

	s.logger.Info("leave status updated",
		zap.String("leave_id", leaveID),
		zap.String("manager_id", managerID),
		zap.String("status", req.Status),
	)

	message := "Your leave request was rejected."
	if req.Status == StatusApproved {
		message = "Your leave request was approved."
	}
	s.notify(ctx, l.ExecutiveID.String(), message)

	return mapToResponse(*l), nil
}

// backfillLeaveDays upserts a Leave attendance record for every day in the
// approved period, boundary days included. The upsert is idempotent, so a
// day the executive already marked simply flips to Leave and re-approval
// of the same period writes nothing new. A failed day is logged and the
// loop keeps going; the remaining days still land.
func (s *service) backfillLeaveDays(ctx context.Context, l *Leave) {
	executiveID := l.ExecutiveID.String()
	for _, day := range dateutil.Range(l.StartDate, l.EndDate) {
		if err := s.attendance.UpsertLeaveDay(ctx, executiveID, day); err != nil {
			s.logger.Error("leave day backfill failed",
				zap.String("leave_id", l.ID.String()),
				zap.String("executive_id", executiveID),
				zap.Time("date", day),
				zap.Error(err),
			)
		}
	}
}

// notify is fire-and-forget: a notification failure never fails the
// mutation that produced it.
func (s *service) notify(ctx context.Context, userID, message string) {
	if s.notifier == nil {
		return
	}
	if err := s.notifier.Publish(ctx, userID, message, "/leaves", notification.TypeLeave); err != nil {
		s.logger.Warn("leave notification failed",
			zap.String("user_id", userID),
			zap.Error(err),
		)
	}
}

func mapToResponse(l Leave) LeaveResponse {
	return LeaveResponse{
		ID:          l.ID.String(),
		ExecutiveID: l.ExecutiveID.String(),
		StartDate:   l.StartDate.Format(dateutil.DayFormat),
		EndDate:     l.EndDate.Format(dateutil.DayFormat),
		Reason:      l.Reason,
		Status:      l.Status,
		CreatedAt:   l.CreatedAt.UTC().Format(time.RFC3339),
	}
}
