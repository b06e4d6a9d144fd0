package target

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"go-sfm/internal/shared/dateutil"
	targeterrors "go-sfm/internal/target/errors"
	"go-sfm/internal/user"
)

// SalesAggregator feeds progress derivation: the summed sale amounts for an
// executive across an inclusive day range.
type SalesAggregator interface {
	SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error)
}

//go:generate mockgen -source=target_service.go -destination=mock/target_service_mock.go -package=mock
type Service interface {
	Set(ctx context.Context, managerID string, req SetTargetRequest) (TargetResponse, error)
	TeamTargets(ctx context.Context, managerID string, filter TeamFilterRequest) ([]TargetResponse, error)
	MyTargets(ctx context.Context, executiveID string) ([]TargetResponse, error)
	Update(ctx context.Context, managerID, id string, req UpdateTargetRequest) (TargetResponse, error)
	Delete(ctx context.Context, managerID, id string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	sales    SalesAggregator
	now      func() time.Time
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, sales SalesAggregator, logger ...*zap.Logger) Service {
	l := zap.L().Named("target.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("target.service")
	}
	return &service{
		repo:     repo,
		userRepo: userRepo,
		sales:    sales,
		now:      time.Now,
		logger:   l,
	}
}

func (s *service) Set(ctx context.Context, managerID string, req SetTargetRequest) (TargetResponse, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return TargetResponse{}, err
	}

	if _, err := s.userRepo.FindByIDAndManager(ctx, managerID, req.ExecutiveID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TargetResponse{}, targeterrors.ErrExecutiveNotManaged
		}
		return TargetResponse{}, err
	}

	if err := s.checkOverlap(ctx, req.ExecutiveID, start, end, nil); err != nil {
		return TargetResponse{}, err
	}

	t := &Target{
		ID:          uuid.New(),
		ExecutiveID: uuid.MustParse(req.ExecutiveID),
		ManagerID:   uuid.MustParse(managerID),
		Amount:      req.Amount,
		StartDate:   start,
		EndDate:     end,
		Period:      PeriodLabel(start, end),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		// A raced concurrent Set can slip past the pre-check and land on
		// the unique constraint; re-run the overlap check on normalized
		// dates so the caller sees the same ConflictError either way.
		if isUniqueViolation(err) {
			if overlapErr := s.checkOverlap(ctx, req.ExecutiveID, start, end, nil); overlapErr != nil {
				return TargetResponse{}, overlapErr
			}
			return TargetResponse{}, targeterrors.ErrOverlappingTarget
		}
		s.logger.Error("set target persist failed", zap.String("manager_id", managerID), zap.Error(err))
		return TargetResponse{}, err
	}

	s.logger.Info("target set",
		zap.String("manager_id", managerID),
		zap.String("executive_id", req.ExecutiveID),
		zap.String("target_id", t.ID.String()),
		zap.String("period", t.Period),
	)
	return s.withProgress(ctx, *t)
}

func (s *service) TeamTargets(ctx context.Context, managerID string, filter TeamFilterRequest) ([]TargetResponse, error) {
	var (
		rows []Target
		err  error
	)
	if filter.Year != 0 && filter.Month != 0 {
		monthStart, monthEnd := dateutil.MonthBounds(filter.Year, filter.Month)
		rows, err = s.repo.FindByManagerStartingIn(ctx, managerID, monthStart, monthEnd)
	} else {
		rows, err = s.repo.FindByManager(ctx, managerID)
	}
	if err != nil {
		s.logger.Error("team targets failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}
	return s.withProgressList(ctx, rows)
}

func (s *service) MyTargets(ctx context.Context, executiveID string) ([]TargetResponse, error) {
	rows, err := s.repo.FindByExecutive(ctx, executiveID)
	if err != nil {
		s.logger.Error("my targets failed", zap.String("executive_id", executiveID), zap.Error(err))
		return nil, err
	}
	return s.withProgressList(ctx, rows)
}

func (s *service) Update(ctx context.Context, managerID, id string, req UpdateTargetRequest) (TargetResponse, error) {
	start, end, err := parsePeriod(req.StartDate, req.EndDate)
	if err != nil {
		return TargetResponse{}, err
	}

	t, err := s.repo.FindByIDAndManager(ctx, managerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TargetResponse{}, targeterrors.ErrTargetNotFound
		}
		return TargetResponse{}, err
	}

	if err := s.checkOverlap(ctx, t.ExecutiveID.String(), start, end, &id); err != nil {
		return TargetResponse{}, err
	}

	t.Amount = req.Amount
	t.StartDate = start
	t.EndDate = end
	t.Period = PeriodLabel(start, end)

	if err := s.repo.Update(ctx, t); err != nil {
		if isUniqueViolation(err) {
			return TargetResponse{}, targeterrors.ErrOverlappingTarget
		}
		s.logger.Error("update target persist failed", zap.String("target_id", id), zap.Error(err))
		return TargetResponse{}, err
	}

	s.logger.Info("target updated", zap.String("manager_id", managerID), zap.String("target_id", id))
	return s.withProgress(ctx, *t)
}

func (s *service) Delete(ctx context.Context, managerID, id string) error {
	t, err := s.repo.FindByIDAndManager(ctx, managerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return targeterrors.ErrTargetNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, t); err != nil {
		s.logger.Error("delete target failed", zap.String("target_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("target deleted", zap.String("manager_id", managerID), zap.String("target_id", id))
	return nil
}

func (s *service) checkOverlap(ctx context.Context, executiveID string, start, end time.Time, excludeID *string) error {
	existing, err := s.repo.FindOverlapping(ctx, executiveID, start, end, excludeID)
	if err != nil {
		s.logger.Error("target overlap check failed", zap.String("executive_id", executiveID), zap.Error(err))
		return err
	}
	for _, t := range existing {
		if t.Overlaps(start, end) {
			s.logger.Warn("overlapping target rejected",
				zap.String("executive_id", executiveID),
				zap.Time("start_date", start),
				zap.Time("end_date", end),
				zap.String("existing_id", t.ID.String()),
			)
			return targeterrors.ErrOverlappingTarget
		}
	}
	return nil
}

func (s *service) withProgress(ctx context.Context, t Target) (TargetResponse, error) {
	achieved, err := s.sales.SumForExecutiveBetween(ctx, t.ExecutiveID.String(), t.StartDate, t.EndDate)
	if err != nil {
		s.logger.Error("target progress aggregation failed", zap.String("target_id", t.ID.String()), zap.Error(err))
		return TargetResponse{}, err
	}

	return TargetResponse{
		ID:             t.ID.String(),
		ExecutiveID:    t.ExecutiveID.String(),
		Amount:         t.Amount,
		StartDate:      t.StartDate.Format(dateutil.DayFormat),
		EndDate:        t.EndDate.Format(dateutil.DayFormat),
		Period:         t.Period,
		AchievedAmount: achieved,
		Status:         ProgressStatus(t.Amount, achieved, t.EndDate, s.now()),
	}, nil
}

func (s *service) withProgressList(ctx context.Context, rows []Target) ([]TargetResponse, error) {
	out := make([]TargetResponse, 0, len(rows))
	for _, t := range rows {
		resp, err := s.withProgress(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func parsePeriod(startDate, endDate string) (time.Time, time.Time, error) {
	start, err := dateutil.ParseDay(startDate)
	if err != nil {
		return time.Time{}, time.Time{}, targeterrors.ErrInvalidDate
	}
	end, err := dateutil.ParseDay(endDate)
	if err != nil {
		return time.Time{}, time.Time{}, targeterrors.ErrInvalidDate
	}
	if start.After(end) {
		return time.Time{}, time.Time{}, targeterrors.ErrInvalidPeriod
	}
	return start, end, nil
}
