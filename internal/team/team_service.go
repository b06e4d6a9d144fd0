package team

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	teamerrors "go-sfm/internal/team/errors"
	"go-sfm/internal/user"
)

//go:generate mockgen -source=team_service.go -destination=mock/team_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, managerID string, req CreateTeamRequest) (TeamResponse, error)
	ListMine(ctx context.Context, managerID string) ([]TeamResponse, error)
	UpdateMembers(ctx context.Context, managerID, teamID string, req UpdateMembersRequest) (TeamResponse, error)
	Delete(ctx context.Context, managerID, teamID string) error
}

type service struct {
	repo     Repository
	userRepo user.Repository
	logger   *zap.Logger
}

func NewService(repo Repository, userRepo user.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("team.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("team.service")
	}
	return &service{repo: repo, userRepo: userRepo, logger: l}
}

func (s *service) Create(ctx context.Context, managerID string, req CreateTeamRequest) (TeamResponse, error) {
	t := &Team{
		ID:        uuid.New(),
		Name:      req.Name,
		ManagerID: uuid.MustParse(managerID),
	}
	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("create team persist failed", zap.String("manager_id", managerID), zap.Error(err))
		return TeamResponse{}, mapRepositoryError(err)
	}

	if len(req.MemberIDs) > 0 {
		if err := s.assignMembers(ctx, managerID, t.ID.String(), req.MemberIDs); err != nil {
			return TeamResponse{}, err
		}
	}

	s.logger.Info("team created",
		zap.String("manager_id", managerID),
		zap.String("team_id", t.ID.String()),
		zap.Int("members", len(req.MemberIDs)),
	)
	return s.buildResponse(ctx, managerID, *t)
}

func (s *service) ListMine(ctx context.Context, managerID string) ([]TeamResponse, error) {
	teams, err := s.repo.FindByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("list teams failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}

	executives, err := s.userRepo.FindExecutivesByManager(ctx, managerID)
	if err != nil {
		s.logger.Error("list team members failed", zap.String("manager_id", managerID), zap.Error(err))
		return nil, err
	}

	membersByTeam := make(map[string][]MemberResponse)
	for _, e := range executives {
		if e.TeamID == nil {
			continue
		}
		tid := e.TeamID.String()
		membersByTeam[tid] = append(membersByTeam[tid], mapMember(e))
	}

	out := make([]TeamResponse, 0, len(teams))
	for _, t := range teams {
		resp := mapToResponse(t)
		resp.Members = membersByTeam[t.ID.String()]
		if resp.Members == nil {
			resp.Members = []MemberResponse{}
		}
		out = append(out, resp)
	}
	return out, nil
}

// UpdateMembers replaces the full member set: everyone currently pointing at
// the team is unassigned, then the requested executives are re-pointed.
func (s *service) UpdateMembers(ctx context.Context, managerID, teamID string, req UpdateMembersRequest) (TeamResponse, error) {
	t, err := s.repo.FindByIDAndManager(ctx, managerID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TeamResponse{}, teamerrors.ErrTeamNotFound
		}
		return TeamResponse{}, err
	}

	if err := s.userRepo.ClearTeam(ctx, teamID); err != nil {
		s.logger.Error("clear team members failed", zap.String("team_id", teamID), zap.Error(err))
		return TeamResponse{}, err
	}
	if len(req.MemberIDs) > 0 {
		if err := s.assignMembers(ctx, managerID, teamID, req.MemberIDs); err != nil {
			return TeamResponse{}, err
		}
	}

	s.logger.Info("team members replaced",
		zap.String("team_id", teamID),
		zap.Int("members", len(req.MemberIDs)),
	)
	return s.buildResponse(ctx, managerID, *t)
}

func (s *service) Delete(ctx context.Context, managerID, teamID string) error {
	t, err := s.repo.FindByIDAndManager(ctx, managerID, teamID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return teamerrors.ErrTeamNotFound
		}
		return err
	}

	// Members are unassigned first so no executive keeps a dangling team_id.
	if err := s.userRepo.ClearTeam(ctx, teamID); err != nil {
		s.logger.Error("clear team members failed", zap.String("team_id", teamID), zap.Error(err))
		return err
	}
	if err := s.repo.Delete(ctx, t); err != nil {
		s.logger.Error("delete team failed", zap.String("team_id", teamID), zap.Error(err))
		return err
	}

	s.logger.Info("team deleted", zap.String("manager_id", managerID), zap.String("team_id", teamID))
	return nil
}

// assignMembers verifies each candidate is one of the manager's executives
// before re-pointing them at the team.
func (s *service) assignMembers(ctx context.Context, managerID, teamID string, memberIDs []string) error {
	for _, id := range memberIDs {
		if _, err := s.userRepo.FindByIDAndManager(ctx, managerID, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return teamerrors.ErrMemberNotManaged
			}
			return err
		}
	}
	if err := s.userRepo.AssignTeam(ctx, memberIDs, &teamID); err != nil {
		s.logger.Error("assign team members failed", zap.String("team_id", teamID), zap.Error(err))
		return err
	}
	return nil
}

func (s *service) buildResponse(ctx context.Context, managerID string, t Team) (TeamResponse, error) {
	executives, err := s.userRepo.FindExecutivesByManager(ctx, managerID)
	if err != nil {
		return TeamResponse{}, err
	}

	resp := mapToResponse(t)
	resp.Members = []MemberResponse{}
	for _, e := range executives {
		if e.TeamID != nil && e.TeamID.String() == t.ID.String() {
			resp.Members = append(resp.Members, mapMember(e))
		}
	}
	return resp, nil
}

func mapToResponse(t Team) TeamResponse {
	return TeamResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		ManagerID: t.ManagerID.String(),
		CreatedAt: t.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func mapMember(u user.User) MemberResponse {
	return MemberResponse{
		ID:       u.ID.String(),
		Name:     u.Name,
		Email:    u.Email,
		IsActive: u.IsActive,
	}
}
