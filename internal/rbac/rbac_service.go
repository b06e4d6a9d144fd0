package rbac

import (
	"sync"

	"go-sfm/internal/domain"

	"github.com/casbin/casbin/v2"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req domain.EnforceRequest) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
}

func NewService(enforcer *casbin.Enforcer) (Service, error) {
	s := &service{enforcer: enforcer}
	if err := s.seedPolicy(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedPolicy installs the fixed two-role policy. Roles are static in this
// system, so policy lives in code rather than in a table.
func (s *service) seedPolicy() error {
	policies := [][]string{
		// Managers supervise: teams, targets, products, leave decisions, reports.
		{domain.RoleManager, "users", "read"},
		{domain.RoleManager, "users", "write"},
		{domain.RoleManager, "teams", "read"},
		{domain.RoleManager, "teams", "write"},
		{domain.RoleManager, "products", "read"},
		{domain.RoleManager, "products", "write"},
		{domain.RoleManager, "targets", "read"},
		{domain.RoleManager, "targets", "write"},
		{domain.RoleManager, "leaves", "read"},
		{domain.RoleManager, "leaves", "decide"},
		{domain.RoleManager, "sales", "read"},
		{domain.RoleManager, "reports", "read"},
		{domain.RoleManager, "notifications", "read"},

		// Executives act on their own records only; row scoping happens in
		// the repositories, this layer just gates the endpoints.
		{domain.RoleExecutive, "attendance", "read"},
		{domain.RoleExecutive, "attendance", "write"},
		{domain.RoleExecutive, "leaves", "read"},
		{domain.RoleExecutive, "leaves", "apply"},
		{domain.RoleExecutive, "targets", "read"},
		{domain.RoleExecutive, "sales", "read"},
		{domain.RoleExecutive, "sales", "write"},
		{domain.RoleExecutive, "products", "read"},
		{domain.RoleExecutive, "notifications", "read"},
	}

	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.enforcer.Enforce(req.Role, req.Resource, req.Action)
}
