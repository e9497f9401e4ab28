package payroll

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const overtimeHoursPerDay = 8

// Input is the calculator contract. WorkingDays is expected to be clamped to
// the days of the pay month by the caller.
type Input struct {
	BasicSalary   decimal.Decimal
	OvertimeHours decimal.Decimal
	WorkingDays   int
	Allowances    decimal.Decimal
	Deductions    decimal.Decimal
}

// Breakdown holds every intermediate and final amount, each rounded to two
// decimals. GrossPay and NetPay are derived from the rounded components.
type Breakdown struct {
	BasicSalary     decimal.Decimal `json:"basic_salary"`
	WorkingDays     int             `json:"working_days"`
	DailySalary     decimal.Decimal `json:"daily_salary"`
	AdjustedBasic   decimal.Decimal `json:"adjusted_basic"`
	OvertimeHours   decimal.Decimal `json:"overtime_hours"`
	OvertimeRate    decimal.Decimal `json:"overtime_rate"`
	OvertimePay     decimal.Decimal `json:"overtime_pay"`
	Allowances      decimal.Decimal `json:"allowances"`
	Deductions      decimal.Decimal `json:"deductions"`
	GrossPay        decimal.Decimal `json:"gross_pay"`
	TaxMode         TaxMode         `json:"tax_mode"`
	TaxRate         decimal.Decimal `json:"tax_rate"`
	Tax             decimal.Decimal `json:"tax"`
	SocialInsurance decimal.Decimal `json:"social_insurance"`
	HealthInsurance decimal.Decimal `json:"health_insurance"`
	NetPay          decimal.Decimal `json:"net_pay"`
}

// ValidationError reports every rejected input field at once.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, name := range []string{"basic_salary", "overtime_hours", "working_days", "allowances", "deductions"} {
		if msg, ok := e.Fields[name]; ok {
			parts = append(parts, fmt.Sprintf("%s %s", name, msg))
		}
	}
	return "invalid payroll input: " + strings.Join(parts, ", ")
}

// Calculator is stateless apart from its policy and safe for concurrent use.
type Calculator struct {
	policy Policy
}

func NewCalculator(policy Policy) *Calculator {
	return &Calculator{policy: policy}
}

func (c *Calculator) Policy() Policy {
	return c.policy
}

func (c *Calculator) Calculate(in Input) (Breakdown, error) {
	if err := validateInput(in); err != nil {
		return Breakdown{}, err
	}

	p := c.policy
	standardDays := decimal.NewFromInt(int64(p.StandardWorkingDays))

	daily := in.BasicSalary.Div(standardDays)
	adjustedBasic := daily.Mul(decimal.NewFromInt(int64(in.WorkingDays))).Round(2)
	hourlyOvertime := in.BasicSalary.
		Div(standardDays).
		Div(decimal.NewFromInt(overtimeHoursPerDay)).
		Mul(p.OvertimeMultiplier)
	overtimePay := in.OvertimeHours.Mul(hourlyOvertime).Round(2)

	allowances := in.Allowances.Round(2)
	deductions := in.Deductions.Round(2)
	gross := adjustedBasic.Add(overtimePay).Add(allowances).Sub(deductions)

	rate, tax := c.tax(gross)
	tax = tax.Round(2)

	social := in.BasicSalary.Mul(p.SocialInsuranceRate).Round(2)
	health := in.BasicSalary.Mul(p.HealthInsuranceRate).Round(2)
	net := gross.Sub(tax).Sub(social).Sub(health)

	return Breakdown{
		BasicSalary:     in.BasicSalary.Round(2),
		WorkingDays:     in.WorkingDays,
		DailySalary:     daily.Round(2),
		AdjustedBasic:   adjustedBasic,
		OvertimeHours:   in.OvertimeHours,
		OvertimeRate:    hourlyOvertime.Round(2),
		OvertimePay:     overtimePay,
		Allowances:      allowances,
		Deductions:      deductions,
		GrossPay:        gross,
		TaxMode:         p.TaxMode,
		TaxRate:         rate,
		Tax:             tax,
		SocialInsurance: social,
		HealthInsurance: health,
		NetPay:          net,
	}, nil
}

// tax returns the rate of the bracket gross falls into and the amount due.
// In marginal mode the returned rate is the top bracket reached.
func (c *Calculator) tax(gross decimal.Decimal) (decimal.Decimal, decimal.Decimal) {
	if !gross.IsPositive() {
		return decimal.Zero, decimal.Zero
	}

	if c.policy.TaxMode == TaxModeMarginal {
		total := decimal.Zero
		rate := decimal.Zero
		for _, b := range c.policy.TaxBrackets {
			if !gross.GreaterThan(b.Min) {
				break
			}
			upper := gross
			if b.Max != nil && b.Max.LessThan(gross) {
				upper = *b.Max
			}
			total = total.Add(upper.Sub(b.Min).Mul(b.Rate))
			rate = b.Rate
		}
		return rate, total
	}

	for _, b := range c.policy.TaxBrackets {
		if b.contains(gross) {
			return b.Rate, gross.Mul(b.Rate)
		}
	}
	return decimal.Zero, decimal.Zero
}

func validateInput(in Input) error {
	fields := map[string]string{}
	if !in.BasicSalary.IsPositive() {
		fields["basic_salary"] = "must be greater than zero"
	}
	if in.OvertimeHours.IsNegative() {
		fields["overtime_hours"] = "cannot be negative"
	}
	if in.WorkingDays < 0 {
		fields["working_days"] = "cannot be negative"
	}
	if in.Allowances.IsNegative() {
		fields["allowances"] = "cannot be negative"
	}
	if in.Deductions.IsNegative() {
		fields["deductions"] = "cannot be negative"
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
