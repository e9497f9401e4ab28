package payroll

import "github.com/shopspring/decimal"

// CreatePayrollRequest triggers a calculation for one employee and month.
// BasicSalary defaults to the salary effective at the end of the month and
// WorkingDays to the attended days of the month.
type CreatePayrollRequest struct {
	EmployeeID    string           `json:"employee_id" binding:"required,uuid"`
	Month         int              `json:"month" binding:"required,min=1,max=12"`
	Year          int              `json:"year" binding:"required,min=2000,max=2100"`
	BasicSalary   *decimal.Decimal `json:"basic_salary"`
	WorkingDays   *int             `json:"working_days" binding:"omitempty,min=0"`
	OvertimeHours decimal.Decimal  `json:"overtime_hours"`
	Allowances    decimal.Decimal  `json:"allowances"`
	Deductions    decimal.Decimal  `json:"deductions"`
	Notes         *string          `json:"notes" binding:"omitempty,max=500"`
}

// RecalculatePayrollRequest overrides inputs of a draft; nil keeps the stored value.
type RecalculatePayrollRequest struct {
	BasicSalary   *decimal.Decimal `json:"basic_salary"`
	WorkingDays   *int             `json:"working_days" binding:"omitempty,min=0"`
	OvertimeHours *decimal.Decimal `json:"overtime_hours"`
	Allowances    *decimal.Decimal `json:"allowances"`
	Deductions    *decimal.Decimal `json:"deductions"`
	Notes         *string          `json:"notes" binding:"omitempty,max=500"`
}

type BatchPayrollRequest struct {
	Month       int             `json:"month" binding:"required,min=1,max=12"`
	Year        int             `json:"year" binding:"required,min=2000,max=2100"`
	EmployeeIDs []string        `json:"employee_ids" binding:"omitempty,dive,uuid"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
}

type BatchFailure struct {
	EmployeeID string `json:"employee_id"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

type BatchPayrollResponse struct {
	Created []PayrollResponse `json:"created"`
	Failed  []BatchFailure    `json:"failed"`
}

// CalculateRequest is the preview input; nothing is stored.
type CalculateRequest struct {
	BasicSalary   decimal.Decimal `json:"basic_salary"`
	OvertimeHours decimal.Decimal `json:"overtime_hours"`
	WorkingDays   int             `json:"working_days" binding:"min=0,max=31"`
	Allowances    decimal.Decimal `json:"allowances"`
	Deductions    decimal.Decimal `json:"deductions"`
}

type ListFilter struct {
	Month      int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year       int    `form:"year" binding:"omitempty,min=2000,max=2100"`
	Status     string `form:"status"`
	EmployeeID string `form:"employee_id" binding:"omitempty,uuid"`
}

type PayrollResponse struct {
	ID               string          `json:"id"`
	CompanyID        string          `json:"company_id"`
	EmployeeID       string          `json:"employee_id"`
	EmployeeCode     string          `json:"employee_code,omitempty"`
	EmployeeName     string          `json:"employee_name,omitempty"`
	Month            int             `json:"month"`
	Year             int             `json:"year"`
	WorkingDays      int             `json:"working_days"`
	BasicSalary      decimal.Decimal `json:"basic_salary"`
	OvertimeHours    decimal.Decimal `json:"overtime_hours"`
	OvertimePay      decimal.Decimal `json:"overtime_pay"`
	Allowances       decimal.Decimal `json:"allowances"`
	Deductions       decimal.Decimal `json:"deductions"`
	GrossPay         decimal.Decimal `json:"gross_pay"`
	Tax              decimal.Decimal `json:"tax"`
	SocialInsurance  decimal.Decimal `json:"social_insurance"`
	HealthInsurance  decimal.Decimal `json:"health_insurance"`
	NetPay           decimal.Decimal `json:"net_pay"`
	Status           string          `json:"status"`
	Notes            *string         `json:"notes,omitempty"`
	CreatedBy        string          `json:"created_by"`
	ProcessedAt      *string         `json:"processed_at,omitempty"`
	PaidAt           *string         `json:"paid_at,omitempty"`
	CancelledAt      *string         `json:"cancelled_at,omitempty"`
	PayslipAvailable bool            `json:"payslip_available"`
}
