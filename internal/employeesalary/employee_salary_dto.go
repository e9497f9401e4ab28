package employeesalary

import "github.com/shopspring/decimal"

type CreateEmployeeSalaryRequest struct {
	EmployeeID    string          `json:"employee_id" binding:"required,uuid"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	EffectiveDate string          `json:"effective_date" binding:"required"`
}

type UpdateEmployeeSalaryRequest struct {
	BaseSalary    decimal.Decimal `json:"base_salary"`
	EffectiveDate string          `json:"effective_date" binding:"required"`
}

type EmployeeSalaryResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	EmployeeName  string          `json:"employee_name,omitempty"`
	BaseSalary    decimal.Decimal `json:"base_salary"`
	EffectiveDate string          `json:"effective_date"`
}
