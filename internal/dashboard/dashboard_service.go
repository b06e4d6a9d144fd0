package dashboard

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"go-sfm/internal/shared/dateutil"
	"go-sfm/internal/target"
	"go-sfm/internal/user"
)

// ExecutiveSource lists the executives a manager supervises.
type ExecutiveSource interface {
	FindExecutivesByManager(ctx context.Context, managerID string) ([]user.User, error)
}

// SalesAggregator totals sale amounts across an inclusive date range.
type SalesAggregator interface {
	SumForExecutiveBetween(ctx context.Context, executiveID string, start, end time.Time) (float64, error)
}

// TargetSource returns the manager's targets starting inside a month window.
type TargetSource interface {
	FindByManagerStartingIn(ctx context.Context, managerID string, monthStart, monthEnd time.Time) ([]target.Target, error)
}

type Service interface {
	// TeamSummary ranks the manager's executives by sales recorded in the
	// month and annotates each with that month's target progress.
	TeamSummary(ctx context.Context, managerID string, year, month int) (TeamSummaryResponse, error)
}

type service struct {
	users   ExecutiveSource
	sales   SalesAggregator
	targets TargetSource
	now     func() time.Time
	logger  *zap.Logger
}

func NewService(users ExecutiveSource, sales SalesAggregator, targets TargetSource, logger ...*zap.Logger) Service {
	l := zap.L().Named("dashboard.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("dashboard.service")
	}
	return &service{
		users:   users,
		sales:   sales,
		targets: targets,
		now:     time.Now,
		logger:  l,
	}
}

func (s *service) TeamSummary(ctx context.Context, managerID string, year, month int) (TeamSummaryResponse, error) {
	monthStart, nextMonth := dateutil.MonthBounds(year, month)
	monthEnd := nextMonth.AddDate(0, 0, -1)

	executives, err := s.users.FindExecutivesByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("team summary list executives failed", zap.Error(err))
		return TeamSummaryResponse{}, err
	}

	targets, err := s.targets.FindByManagerStartingIn(ctx, managerID, monthStart, nextMonth)
	if err != nil {
		s.logger.Error("team summary list targets failed", zap.Error(err))
		return TeamSummaryResponse{}, err
	}
	targetByExecutive := make(map[string]target.Target, len(targets))
	for _, t := range targets {
		targetByExecutive[t.ExecutiveID.String()] = t
	}

	resp := TeamSummaryResponse{
		Period:      fmt.Sprintf("%04d-%02d", year, month),
		Leaderboard: make([]LeaderboardEntry, 0, len(executives)),
	}

	for _, exec := range executives {
		execID := exec.ID.String()

		monthTotal, err := s.sales.SumForExecutiveBetween(ctx, execID, monthStart, monthEnd)
		if err != nil {
			s.logger.Error("team summary sales sum failed",
				zap.String("executive_id", execID),
				zap.Error(err),
			)
			return TeamSummaryResponse{}, err
		}

		entry := LeaderboardEntry{
			ExecutiveID: execID,
			Name:        exec.Name,
			TotalSales:  monthTotal,
		}

		if tg, ok := targetByExecutive[execID]; ok {
			// Progress is judged against the target's own window, which
			// may extend past the month being ranked.
			achieved, err := s.sales.SumForExecutiveBetween(ctx, execID, tg.StartDate, tg.EndDate)
			if err != nil {
				s.logger.Error("team summary target sum failed",
					zap.String("executive_id", execID),
					zap.Error(err),
				)
				return TeamSummaryResponse{}, err
			}
			entry.TargetAmount = tg.Amount
			entry.TargetStatus = target.ProgressStatus(tg.Amount, achieved, tg.EndDate, s.now())
		}

		resp.TotalSales += monthTotal
		resp.Leaderboard = append(resp.Leaderboard, entry)
	}

	sort.SliceStable(resp.Leaderboard, func(i, j int) bool {
		if resp.Leaderboard[i].TotalSales != resp.Leaderboard[j].TotalSales {
			return resp.Leaderboard[i].TotalSales > resp.Leaderboard[j].TotalSales
		}
		return resp.Leaderboard[i].Name < resp.Leaderboard[j].Name
	})
	for i := range resp.Leaderboard {
		resp.Leaderboard[i].Rank = i + 1
	}

	return resp, nil
}
