package payroll

import (
	"encoding/json"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestCalculator_Calculate(t *testing.T) {
	t.Run("full month with default policy", func(t *testing.T) {
		calc := NewCalculator(DefaultPolicy())

		b, err := calc.Calculate(Input{
			BasicSalary: dec("22000000"),
			WorkingDays: 22,
		})

		assert.NoError(t, err)
		assert.Equal(t, "1000000.00", b.DailySalary.StringFixed(2))
		assert.Equal(t, "22000000.00", b.AdjustedBasic.StringFixed(2))
		assert.Equal(t, "0.00", b.OvertimePay.StringFixed(2))
		assert.Equal(t, "22000000.00", b.GrossPay.StringFixed(2))
		// 22,000,000 is above the 20,000,000 floor of the third bracket.
		assert.Equal(t, "0.15", b.TaxRate.StringFixed(2))
		assert.Equal(t, "3300000.00", b.Tax.StringFixed(2))
		assert.Equal(t, "1760000.00", b.SocialInsurance.StringFixed(2))
		assert.Equal(t, "550000.00", b.HealthInsurance.StringFixed(2))
		assert.Equal(t, "16390000.00", b.NetPay.StringFixed(2))
	})

	t.Run("marginal mode taxes each slice", func(t *testing.T) {
		policy := DefaultPolicy()
		policy.TaxMode = TaxModeMarginal
		calc := NewCalculator(policy)

		b, err := calc.Calculate(Input{
			BasicSalary: dec("22000000"),
			WorkingDays: 22,
		})

		assert.NoError(t, err)
		// 11M*5% + 9M*10% + 2M*15%
		assert.Equal(t, "1750000.00", b.Tax.StringFixed(2))
		assert.Equal(t, "17940000.00", b.NetPay.StringFixed(2))
	})

	t.Run("partial month with overtime, allowances and deductions", func(t *testing.T) {
		calc := NewCalculator(DefaultPolicy())

		b, err := calc.Calculate(Input{
			BasicSalary:   dec("8800000"),
			OvertimeHours: dec("10"),
			WorkingDays:   20,
			Allowances:    dec("500000"),
			Deductions:    dec("100000"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "400000.00", b.DailySalary.StringFixed(2))
		assert.Equal(t, "8000000.00", b.AdjustedBasic.StringFixed(2))
		// 8,800,000 / 22 / 8 * 1.5
		assert.Equal(t, "75000.00", b.OvertimeRate.StringFixed(2))
		assert.Equal(t, "750000.00", b.OvertimePay.StringFixed(2))
		assert.Equal(t, "9150000.00", b.GrossPay.StringFixed(2))
		assert.Equal(t, "0.05", b.TaxRate.StringFixed(2))
		assert.Equal(t, "457500.00", b.Tax.StringFixed(2))
		// insurance stays on the unadjusted basic salary
		assert.Equal(t, "704000.00", b.SocialInsurance.StringFixed(2))
		assert.Equal(t, "220000.00", b.HealthInsurance.StringFixed(2))
		assert.Equal(t, "7768500.00", b.NetPay.StringFixed(2))
	})

	t.Run("bracket upper bound is inclusive", func(t *testing.T) {
		calc := NewCalculator(DefaultPolicy())

		b, err := calc.Calculate(Input{
			BasicSalary: dec("11000000"),
			WorkingDays: 22,
		})

		assert.NoError(t, err)
		assert.Equal(t, "0.05", b.TaxRate.StringFixed(2))
		assert.Equal(t, "550000.00", b.Tax.StringFixed(2))
	})

	t.Run("no tax when gross is not positive", func(t *testing.T) {
		calc := NewCalculator(DefaultPolicy())

		b, err := calc.Calculate(Input{
			BasicSalary: dec("5000000"),
			WorkingDays: 0,
			Deductions:  dec("200000"),
		})

		assert.NoError(t, err)
		assert.Equal(t, "-200000.00", b.GrossPay.StringFixed(2))
		assert.True(t, b.Tax.IsZero())
		assert.True(t, b.NetPay.LessThanOrEqual(b.GrossPay))
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		calc := NewCalculator(DefaultPolicy())

		_, err := calc.Calculate(Input{
			BasicSalary:   decimal.Zero,
			OvertimeHours: dec("-1"),
			WorkingDays:   -2,
			Allowances:    dec("-5"),
			Deductions:    dec("-5"),
		})

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 5)
		assert.Contains(t, err.Error(), "basic_salary must be greater than zero")
	})
}

func TestCalculator_Invariants(t *testing.T) {
	for _, mode := range []TaxMode{TaxModeFlat, TaxModeMarginal} {
		policy := DefaultPolicy()
		policy.TaxMode = mode
		calc := NewCalculator(policy)
		rnd := rand.New(rand.NewSource(42))

		for i := 0; i < 500; i++ {
			in := Input{
				BasicSalary:   decimal.NewFromInt(rnd.Int63n(50_000_000) + 1),
				OvertimeHours: decimal.NewFromInt(rnd.Int63n(40)),
				WorkingDays:   rnd.Intn(32),
				Allowances:    decimal.NewFromInt(rnd.Int63n(5_000_000)),
				Deductions:    decimal.NewFromInt(rnd.Int63n(5_000_000)),
			}

			b, err := calc.Calculate(in)
			assert.NoError(t, err)

			gross := b.AdjustedBasic.Add(b.OvertimePay).Add(b.Allowances).Sub(b.Deductions)
			assert.True(t, gross.Equal(b.GrossPay), "gross mismatch for %+v", in)

			net := b.GrossPay.Sub(b.Tax).Sub(b.SocialInsurance).Sub(b.HealthInsurance)
			assert.True(t, net.Equal(b.NetPay), "net mismatch for %+v", in)

			assert.True(t, b.NetPay.LessThanOrEqual(b.GrossPay), "net above gross for %+v", in)
		}
	}
}

func TestCalculator_Deterministic(t *testing.T) {
	calc := NewCalculator(DefaultPolicy())
	in := Input{
		BasicSalary:   dec("12345678.9"),
		OvertimeHours: dec("7.5"),
		WorkingDays:   19,
		Allowances:    dec("250000"),
		Deductions:    dec("12500"),
	}

	first, err := calc.Calculate(in)
	assert.NoError(t, err)
	second, err := calc.Calculate(in)
	assert.NoError(t, err)

	a, _ := json.Marshal(first)
	b, _ := json.Marshal(second)
	assert.Equal(t, string(a), string(b))
}
