package payroll

import (
	"errors"
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type TaxMode string

const (
	TaxModeFlat     TaxMode = "flat"
	TaxModeMarginal TaxMode = "marginal"
)

// TaxBracket covers gross pay in (Min, Max]. A nil Max is unbounded.
type TaxBracket struct {
	Min  decimal.Decimal
	Max  *decimal.Decimal
	Rate decimal.Decimal
}

func (b TaxBracket) contains(gross decimal.Decimal) bool {
	if !gross.GreaterThan(b.Min) {
		return false
	}
	return b.Max == nil || gross.LessThanOrEqual(*b.Max)
}

type Policy struct {
	StandardWorkingDays int
	OvertimeMultiplier  decimal.Decimal
	TaxBrackets         []TaxBracket
	TaxMode             TaxMode
	SocialInsuranceRate decimal.Decimal
	HealthInsuranceRate decimal.Decimal
}

func DefaultPolicy() Policy {
	bracket1Max := decimal.NewFromInt(11_000_000)
	bracket2Max := decimal.NewFromInt(20_000_000)

	return Policy{
		StandardWorkingDays: 22,
		OvertimeMultiplier:  decimal.RequireFromString("1.5"),
		TaxBrackets: []TaxBracket{
			{Min: decimal.Zero, Max: &bracket1Max, Rate: decimal.RequireFromString("0.05")},
			{Min: bracket1Max, Max: &bracket2Max, Rate: decimal.RequireFromString("0.10")},
			{Min: bracket2Max, Rate: decimal.RequireFromString("0.15")},
		},
		TaxMode:             TaxModeFlat,
		SocialInsuranceRate: decimal.RequireFromString("0.08"),
		HealthInsuranceRate: decimal.RequireFromString("0.025"),
	}
}

// Validate checks that brackets are ordered, contiguous and that only the last
// one is unbounded.
func (p Policy) Validate() error {
	if p.StandardWorkingDays <= 0 {
		return errors.New("standard_working_days must be positive")
	}
	if p.OvertimeMultiplier.IsNegative() {
		return errors.New("overtime_multiplier cannot be negative")
	}
	if p.TaxMode != TaxModeFlat && p.TaxMode != TaxModeMarginal {
		return fmt.Errorf("unknown tax_mode %q", p.TaxMode)
	}
	if !isRate(p.SocialInsuranceRate) || !isRate(p.HealthInsuranceRate) {
		return errors.New("insurance rates must be between 0 and 1")
	}
	if len(p.TaxBrackets) == 0 {
		return errors.New("at least one tax bracket is required")
	}

	for i, b := range p.TaxBrackets {
		if !isRate(b.Rate) {
			return fmt.Errorf("tax bracket %d: rate must be between 0 and 1", i+1)
		}
		if i == 0 && b.Min.IsNegative() {
			return errors.New("tax bracket 1: min cannot be negative")
		}
		if b.Max == nil {
			if i != len(p.TaxBrackets)-1 {
				return fmt.Errorf("tax bracket %d: only the last bracket may be unbounded", i+1)
			}
			continue
		}
		if !b.Max.GreaterThan(b.Min) {
			return fmt.Errorf("tax bracket %d: max must be greater than min", i+1)
		}
		if i+1 < len(p.TaxBrackets) && !p.TaxBrackets[i+1].Min.Equal(*b.Max) {
			return fmt.Errorf("tax bracket %d: min must equal the previous max", i+2)
		}
	}

	return nil
}

func isRate(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
}

type policyFile struct {
	StandardWorkingDays *int     `yaml:"standard_working_days"`
	OvertimeMultiplier  *float64 `yaml:"overtime_multiplier"`
	TaxMode             string   `yaml:"tax_mode"`
	SocialInsuranceRate *float64 `yaml:"social_insurance_rate"`
	HealthInsuranceRate *float64 `yaml:"health_insurance_rate"`
	TaxBrackets         []struct {
		Min  float64  `yaml:"min"`
		Max  *float64 `yaml:"max"`
		Rate float64  `yaml:"rate"`
	} `yaml:"tax_brackets"`
}

// LoadPolicy reads a YAML policy file. A missing file yields DefaultPolicy;
// keys absent from the file keep their default values.
func LoadPolicy(path string) (Policy, error) {
	policy := DefaultPolicy()

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return policy, nil
		}
		return policy, fmt.Errorf("reading payroll policy: %w", err)
	}

	var f policyFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return policy, fmt.Errorf("decoding payroll policy: %w", err)
	}

	if f.StandardWorkingDays != nil {
		policy.StandardWorkingDays = *f.StandardWorkingDays
	}
	if f.OvertimeMultiplier != nil {
		policy.OvertimeMultiplier = decimal.NewFromFloat(*f.OvertimeMultiplier)
	}
	if f.TaxMode != "" {
		policy.TaxMode = TaxMode(f.TaxMode)
	}
	if f.SocialInsuranceRate != nil {
		policy.SocialInsuranceRate = decimal.NewFromFloat(*f.SocialInsuranceRate)
	}
	if f.HealthInsuranceRate != nil {
		policy.HealthInsuranceRate = decimal.NewFromFloat(*f.HealthInsuranceRate)
	}
	if len(f.TaxBrackets) > 0 {
		brackets := make([]TaxBracket, 0, len(f.TaxBrackets))
		for _, b := range f.TaxBrackets {
			bracket := TaxBracket{
				Min:  decimal.NewFromFloat(b.Min),
				Rate: decimal.NewFromFloat(b.Rate),
			}
			if b.Max != nil {
				upper := decimal.NewFromFloat(*b.Max)
				bracket.Max = &upper
			}
			brackets = append(brackets, bracket)
		}
		policy.TaxBrackets = brackets
	}

	if err := policy.Validate(); err != nil {
		return policy, fmt.Errorf("invalid payroll policy: %w", err)
	}
	return policy, nil
}
