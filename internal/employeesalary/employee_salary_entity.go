package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmployeeSalary is one row of an employee's salary history. The row with the
// latest EffectiveDate not after a given day is the salary in force that day.
type EmployeeSalary struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID    uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_effective,priority:1"`
	BaseSalary    decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	EffectiveDate time.Time       `gorm:"type:date;not null;uniqueIndex:uq_employee_salary_effective,priority:2"`
	EmployeeName  string          `gorm:"->;-:migration"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
