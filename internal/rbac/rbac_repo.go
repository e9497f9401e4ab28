package rbac

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=rbac_repo.go -destination=mock/rbac_repo_mock.go -package=mock
type Repository interface {
	GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error)
	GetRolePermissions(companyID string) ([]RolePermissionRow, error)

	ListRoles(companyID string) ([]RoleRow, error)
	GetRoleByID(companyID, id string) (*RoleRow, error)
	GetPermissionsByRoleID(roleID string) ([]PermissionRow, error)
	ListPermissions() ([]PermissionRow, error)
	GetRoleByName(companyID, name string) (*RoleRow, error)
	CreateRole(role *RoleRow, perms []PermissionKey) error
	AssignEmployeeRole(employeeID, roleID string) error
	RevokeEmployeeRole(employeeID, roleID string) (int64, error)
	EnsurePermissions(perms []PermissionRow) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type RoleRow struct {
	ID          string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	CompanyID   string `gorm:"type:uuid;not null;uniqueIndex:uq_role_name,priority:1"`
	Name        string `gorm:"type:varchar(100);not null;uniqueIndex:uq_role_name,priority:2"`
	Description string
}

func (RoleRow) TableName() string { return "roles" }

type PermissionRow struct {
	ID       string `gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	Resource string `gorm:"uniqueIndex:uq_permission,priority:1"`
	Action   string `gorm:"uniqueIndex:uq_permission,priority:2"`
	Label    string
	Category string
}

func (PermissionRow) TableName() string { return "permissions" }

// PermissionKey identifies a permission by resource and action.
type PermissionKey struct {
	Resource string
	Action   string
}

func (k PermissionKey) String() string { return k.Resource + ":" + k.Action }

type EmployeeRoleRow struct {
	EmployeeID string
	RoleID     string
}

type RolePermissionRow struct {
	RoleID   string
	Resource string
	Action   string
}

func (r *repository) GetEmployeeRoles(companyID string) ([]EmployeeRoleRow, error) {
	var result []EmployeeRoleRow

	err := r.db.
		Table("employee_roles").
		Select("employee_roles.employee_id, employee_roles.role_id").
		Joins("JOIN roles ON roles.id = employee_roles.role_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) GetRolePermissions(companyID string) ([]RolePermissionRow, error) {
	var result []RolePermissionRow

	err := r.db.
		Table("role_permissions").
		Select("role_permissions.role_id, permissions.resource, permissions.action").
		Joins("JOIN roles ON roles.id = role_permissions.role_id").
		Joins("JOIN permissions ON permissions.id = role_permissions.permission_id").
		Where("roles.company_id = ?", companyID).
		Scan(&result).Error

	return result, err
}

func (r *repository) ListRoles(companyID string) ([]RoleRow, error) {
	var result []RoleRow
	err := r.db.Where("company_id = ?", companyID).Order("name").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByID(companyID, id string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.Where("company_id = ? AND id = ?", companyID, id).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (r *repository) GetPermissionsByRoleID(roleID string) ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.
		Table("permissions").
		Select("permissions.*").
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Scan(&result).Error
	return result, err
}

func (r *repository) ListPermissions() ([]PermissionRow, error) {
	var result []PermissionRow
	err := r.db.Order("category, label").Find(&result).Error
	return result, err
}

func (r *repository) GetRoleByName(companyID, name string) (*RoleRow, error) {
	var result RoleRow
	err := r.db.Where("company_id = ? AND LOWER(name) = LOWER(?)", companyID, name).First(&result).Error
	if err != nil {
		return nil, err
	}
	return &result, nil
}

// CreateRole stores role and its grants in one transaction. Every key must
// already exist in the permissions table.
func (r *repository) CreateRole(role *RoleRow, perms []PermissionKey) error {
	pairs := make([][]any, 0, len(perms))
	for _, p := range perms {
		pairs = append(pairs, []any{p.Resource, p.Action})
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(role).Error; err != nil {
			return err
		}

		var ids []string
		if err := tx.Model(&PermissionRow{}).Where("(resource, action) IN ?", pairs).Pluck("id", &ids).Error; err != nil {
			return err
		}
		if len(ids) != len(perms) {
			return fmt.Errorf("create role %s: %d of %d permissions found", role.Name, len(ids), len(perms))
		}

		grants := make([]map[string]any, 0, len(ids))
		for _, id := range ids {
			grants = append(grants, map[string]any{"role_id": role.ID, "permission_id": id})
		}
		return tx.Table("role_permissions").Create(grants).Error
	})
}

func (r *repository) AssignEmployeeRole(employeeID, roleID string) error {
	return r.db.Exec(
		"INSERT INTO employee_roles (employee_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
		employeeID, roleID,
	).Error
}

func (r *repository) RevokeEmployeeRole(employeeID, roleID string) (int64, error) {
	result := r.db.Exec(
		"DELETE FROM employee_roles WHERE employee_id = ? AND role_id = ?",
		employeeID, roleID,
	)
	return result.RowsAffected, result.Error
}

// EnsurePermissions inserts missing resource:action rows and leaves existing
// ones untouched. It returns how many rows were added.
func (r *repository) EnsurePermissions(perms []PermissionRow) (int64, error) {
	if len(perms) == 0 {
		return 0, nil
	}
	rows := make([]PermissionRow, len(perms))
	copy(rows, perms)

	result := r.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "resource"}, {Name: "action"}},
			DoNothing: true,
		}).
		Create(&rows)
	return result.RowsAffected, result.Error
}
