package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	FullName         string          `json:"full_name" binding:"required,max=150"`
	Email            string          `json:"email" binding:"required,email"`
	Phone            string          `json:"phone" binding:"omitempty,max=30"`
	Department       string          `json:"department" binding:"required,max=80"`
	Position         string          `json:"position" binding:"required,max=80"`
	HireDate         string          `json:"hire_date" binding:"required"`
	EmploymentStatus string          `json:"employment_status" binding:"omitempty,oneof=active on_leave terminated"`
	StartingSalary   decimal.Decimal `json:"starting_salary"`
}

type UpdateEmployeeRequest struct {
	FullName         string `json:"full_name" binding:"required,max=150"`
	Email            string `json:"email" binding:"required,email"`
	Phone            string `json:"phone" binding:"omitempty,max=30"`
	Department       string `json:"department" binding:"required,max=80"`
	Position         string `json:"position" binding:"required,max=80"`
	HireDate         string `json:"hire_date" binding:"required"`
	EmploymentStatus string `json:"employment_status" binding:"required,oneof=active on_leave terminated"`
}

type EmployeeResponse struct {
	ID               string `json:"id"`
	CompanyID        string `json:"company_id"`
	EmployeeCode     string `json:"employee_code"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Phone            string `json:"phone,omitempty"`
	Department       string `json:"department"`
	Position         string `json:"position"`
	HireDate         string `json:"hire_date"`
	EmploymentStatus string `json:"employment_status"`
}

// EmployeeOption is the trimmed shape used by select inputs.
type EmployeeOption struct {
	ID           string `json:"id"`
	EmployeeCode string `json:"employee_code"`
	FullName     string `json:"full_name"`
	Department   string `json:"department"`
}
