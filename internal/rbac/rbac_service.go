package rbac

import (
	"errors"
	"net/http"
	"strings"
	"sync"

	"go-hotel/internal/domain"
	"go-hotel/internal/shared/apperror"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var (
	ErrRoleNotFound       = apperror.New(apperror.CodeNotFound, "role not found", http.StatusNotFound)
	ErrRoleExists         = apperror.New(apperror.CodeConflict, "a role with this name already exists", http.StatusConflict)
	ErrUnknownPermission  = apperror.New(apperror.CodeInvalidInput, "unknown permission", http.StatusBadRequest)
	ErrAssignmentNotFound = apperror.New(apperror.CodeNotFound, "employee does not hold this role", http.StatusNotFound)
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(companyID string) error
	Enforce(req domain.EnforceRequest) (bool, error)
	ListRoles(companyID string) ([]domain.RoleResponse, error)
	ListPermissions() ([]domain.PermissionResponse, error)
	CreateRole(companyID string, req domain.CreateRoleRequest) (domain.RoleResponse, error)
	AssignRole(companyID string, req domain.RoleAssignment) error
	RevokeRole(companyID string, req domain.RoleAssignment) error
	SyncCatalog() error
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0]
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadCompanyPolicy(companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(companyID)
}

func (s *service) loadCompanyPolicyUnlocked(companyID string) error {
	s.enforcer.ClearPolicy()

	employeeRoles, err := s.repo.GetEmployeeRoles(companyID)
	if err != nil {
		return err
	}

	for _, er := range employeeRoles {
		if _, err := s.enforcer.AddGroupingPolicy(er.EmployeeID, er.RoleID, companyID); err != nil {
			return err
		}
	}

	rolePerms, err := s.repo.GetRolePermissions(companyID)
	if err != nil {
		return err
	}

	for _, rp := range rolePerms {
		if _, err := s.enforcer.AddPolicy(rp.RoleID, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
	}

	s.logger.Debug("rbac policy loaded",
		zap.String("company_id", companyID),
		zap.Int("employee_roles", len(employeeRoles)),
		zap.Int("role_permissions", len(rolePerms)),
	)
	return nil
}

func (s *service) Enforce(req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(req.CompanyID); err != nil {
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.EmployeeID, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("employee_id", req.EmployeeID),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("employee_id", req.EmployeeID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) ListRoles(companyID string) ([]domain.RoleResponse, error) {
	roles, err := s.repo.ListRoles(companyID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RoleResponse, 0, len(roles))
	for _, role := range roles {
		perms, err := s.repo.GetPermissionsByRoleID(role.ID)
		if err != nil {
			return nil, err
		}
		names := make([]string, 0, len(perms))
		for _, p := range perms {
			names = append(names, p.Resource+":"+p.Action)
		}
		result = append(result, domain.RoleResponse{
			ID:          role.ID,
			Name:        role.Name,
			Description: role.Description,
			Permissions: names,
		})
	}
	return result, nil
}

func (s *service) ListPermissions() ([]domain.PermissionResponse, error) {
	perms, err := s.repo.ListPermissions()
	if err != nil {
		return nil, err
	}

	result := make([]domain.PermissionResponse, 0, len(perms))
	for _, p := range perms {
		result = append(result, domain.PermissionResponse{
			ID:       p.ID,
			Resource: p.Resource,
			Action:   p.Action,
			Label:    p.Label,
			Category: p.Category,
		})
	}
	return result, nil
}

func (s *service) AssignRole(companyID string, req domain.RoleAssignment) error {
	if _, err := s.repo.GetRoleByID(companyID, req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	if err := s.repo.AssignEmployeeRole(req.EmployeeID, req.RoleID); err != nil {
		return err
	}

	s.logger.Info("role assigned",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("role_id", req.RoleID),
	)
	return nil
}

// CreateRole validates every grant against Catalog; duplicates are folded.
func (s *service) CreateRole(companyID string, req domain.CreateRoleRequest) (domain.RoleResponse, error) {
	name := strings.TrimSpace(req.Name)

	known := catalogKeys()
	seen := make(map[string]bool, len(req.Permissions))
	keys := make([]PermissionKey, 0, len(req.Permissions))
	for _, raw := range req.Permissions {
		resource, action, _ := strings.Cut(strings.TrimSpace(raw), ":")
		key := PermissionKey{Resource: resource, Action: action}
		if !known[key] {
			return domain.RoleResponse{}, ErrUnknownPermission.WithDetails(raw)
		}
		if seen[key.String()] {
			continue
		}
		seen[key.String()] = true
		keys = append(keys, key)
	}

	if _, err := s.repo.GetRoleByName(companyID, name); err == nil {
		return domain.RoleResponse{}, ErrRoleExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RoleResponse{}, err
	}

	role := &RoleRow{CompanyID: companyID, Name: name, Description: strings.TrimSpace(req.Description)}
	if err := s.repo.CreateRole(role, keys); err != nil {
		s.logger.Error("create role failed", zap.String("company_id", companyID), zap.String("name", name), zap.Error(err))
		return domain.RoleResponse{}, err
	}

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k.String())
	}
	s.logger.Info("role created",
		zap.String("company_id", companyID),
		zap.String("role_id", role.ID),
		zap.Int("permissions", len(names)),
	)
	return domain.RoleResponse{
		ID:          role.ID,
		Name:        role.Name,
		Description: role.Description,
		Permissions: names,
	}, nil
}

func (s *service) RevokeRole(companyID string, req domain.RoleAssignment) error {
	if _, err := s.repo.GetRoleByID(companyID, req.RoleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRoleNotFound
		}
		return err
	}

	removed, err := s.repo.RevokeEmployeeRole(req.EmployeeID, req.RoleID)
	if err != nil {
		return err
	}
	if removed == 0 {
		return ErrAssignmentNotFound
	}

	s.logger.Info("role revoked",
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("role_id", req.RoleID),
	)
	return nil
}

// SyncCatalog makes sure every permission in Catalog exists.
func (s *service) SyncCatalog() error {
	added, err := s.repo.EnsurePermissions(Catalog)
	if err != nil {
		s.logger.Error("rbac catalog sync failed", zap.Error(err))
		return err
	}
	s.logger.Info("rbac catalog synced",
		zap.Int("catalog_size", len(Catalog)),
		zap.Int64("added", added),
	)
	return nil
}
