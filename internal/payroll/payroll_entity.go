package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	StatusDraft     = "DRAFT"
	StatusProcessed = "PROCESSED"
	StatusPaid      = "PAID"
	StatusCancelled = "CANCELLED"
)

// Payroll is one employee's pay for one calendar month. Amounts are the
// calculator's rounded breakdown and are never recomputed once PAID.
type Payroll struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID        `gorm:"type:uuid;not null;index:idx_payroll_company_period"`
	EmployeeID uuid.UUID        `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_employee_period,priority:1"`
	Employee   *PayrollEmployee `gorm:"foreignKey:EmployeeID;references:ID"`

	Month int `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:2;index:idx_payroll_company_period"`
	Year  int `gorm:"not null;uniqueIndex:uq_payroll_employee_period,priority:3;index:idx_payroll_company_period"`

	BasicSalary     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	WorkingDays     int             `gorm:"not null"`
	DailySalary     decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	AdjustedBasic   decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	OvertimeHours   decimal.Decimal `gorm:"type:numeric(7,2);not null;default:0"`
	OvertimeRate    decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	OvertimePay     decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	Allowances      decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	Deductions      decimal.Decimal `gorm:"type:numeric(15,2);not null;default:0"`
	GrossPay        decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	TaxMode         string          `gorm:"type:varchar(10);not null"`
	TaxRate         decimal.Decimal `gorm:"type:numeric(5,4);not null"`
	Tax             decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	SocialInsurance decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	HealthInsurance decimal.Decimal `gorm:"type:numeric(15,2);not null"`
	NetPay          decimal.Decimal `gorm:"type:numeric(15,2);not null"`

	Status    string    `gorm:"type:varchar(20);not null;default:'DRAFT';index"`
	Notes     *string   `gorm:"type:text"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`

	ProcessedAt        *time.Time
	PaidAt             *time.Time
	CancelledAt        *time.Time
	PayslipPath        *string
	PayslipGeneratedAt *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          gorm.DeletedAt `gorm:"index"`
}

type PayrollEmployee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	FullName     string    `gorm:"column:full_name"`
	Department   string    `gorm:"column:department"`
	Position     string    `gorm:"column:position"`
}

func (PayrollEmployee) TableName() string {
	return "employees"
}

func (p *Payroll) applyBreakdown(b Breakdown) {
	p.BasicSalary = b.BasicSalary
	p.WorkingDays = b.WorkingDays
	p.DailySalary = b.DailySalary
	p.AdjustedBasic = b.AdjustedBasic
	p.OvertimeHours = b.OvertimeHours
	p.OvertimeRate = b.OvertimeRate
	p.OvertimePay = b.OvertimePay
	p.Allowances = b.Allowances
	p.Deductions = b.Deductions
	p.GrossPay = b.GrossPay
	p.TaxMode = string(b.TaxMode)
	p.TaxRate = b.TaxRate
	p.Tax = b.Tax
	p.SocialInsurance = b.SocialInsurance
	p.HealthInsurance = b.HealthInsurance
	p.NetPay = b.NetPay
}

func (p Payroll) breakdown() Breakdown {
	return Breakdown{
		BasicSalary:     p.BasicSalary,
		WorkingDays:     p.WorkingDays,
		DailySalary:     p.DailySalary,
		AdjustedBasic:   p.AdjustedBasic,
		OvertimeHours:   p.OvertimeHours,
		OvertimeRate:    p.OvertimeRate,
		OvertimePay:     p.OvertimePay,
		Allowances:      p.Allowances,
		Deductions:      p.Deductions,
		GrossPay:        p.GrossPay,
		TaxMode:         TaxMode(p.TaxMode),
		TaxRate:         p.TaxRate,
		Tax:             p.Tax,
		SocialInsurance: p.SocialInsurance,
		HealthInsurance: p.HealthInsurance,
		NetPay:          p.NetPay,
	}
}
