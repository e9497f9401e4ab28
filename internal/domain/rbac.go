// Package domain holds the access control types shared by the rbac package
// and the authorization middleware.
package domain

// EnforceRequest asks whether an employee may perform action on resource
// within one company.
type EnforceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	CompanyID  string `json:"company_id" binding:"required"`
	Resource   string `json:"resource" binding:"required"`
	Action     string `json:"action" binding:"required"`
}

type EnforceResponse struct {
	Allowed bool `json:"allowed"`
}

// CreateRoleRequest defines a company role. Permissions are written as
// resource:action, e.g. room:change_status.
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required,max=100"`
	Description string   `json:"description" binding:"max=255"`
	Permissions []string `json:"permissions" binding:"required,min=1,dive,required"`
}

type RoleResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
}

type PermissionResponse struct {
	ID       string `json:"id"`
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
	Category string `json:"category"`
}

// RoleAssignment links an employee to a role; it is the body of both the
// assign and the revoke endpoints.
type RoleAssignment struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
	RoleID     string `json:"role_id" binding:"required,uuid"`
}
