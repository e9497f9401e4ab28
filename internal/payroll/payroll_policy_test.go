package payroll

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writePolicy(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "policy.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadPolicy(t *testing.T) {
	t.Run("missing file falls back to defaults", func(t *testing.T) {
		p, err := LoadPolicy(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.NoError(t, err)
		assert.Equal(t, 22, p.StandardWorkingDays)
		assert.Equal(t, TaxModeFlat, p.TaxMode)
		assert.Len(t, p.TaxBrackets, 3)
	})

	t.Run("overrides only the given keys", func(t *testing.T) {
		path := writePolicy(t, "tax_mode: marginal\nstandard_working_days: 21\n")

		p, err := LoadPolicy(path)
		assert.NoError(t, err)
		assert.Equal(t, TaxModeMarginal, p.TaxMode)
		assert.Equal(t, 21, p.StandardWorkingDays)
		assert.Equal(t, "0.08", p.SocialInsuranceRate.String())
	})

	t.Run("custom brackets", func(t *testing.T) {
		path := writePolicy(t, `
tax_brackets:
  - {min: 0, max: 5000000, rate: 0}
  - {min: 5000000, rate: 0.2}
`)

		p, err := LoadPolicy(path)
		assert.NoError(t, err)
		assert.Len(t, p.TaxBrackets, 2)
		assert.Nil(t, p.TaxBrackets[1].Max)
		assert.Equal(t, "0.2", p.TaxBrackets[1].Rate.String())
	})

	t.Run("rejects gaps between brackets", func(t *testing.T) {
		path := writePolicy(t, `
tax_brackets:
  - {min: 0, max: 5000000, rate: 0.05}
  - {min: 6000000, rate: 0.2}
`)

		_, err := LoadPolicy(path)
		assert.ErrorContains(t, err, "min must equal the previous max")
	})

	t.Run("rejects unknown tax mode", func(t *testing.T) {
		path := writePolicy(t, "tax_mode: progressive\n")

		_, err := LoadPolicy(path)
		assert.ErrorContains(t, err, "unknown tax_mode")
	})

	t.Run("rejects malformed yaml", func(t *testing.T) {
		path := writePolicy(t, "tax_brackets: [\n")

		_, err := LoadPolicy(path)
		assert.ErrorContains(t, err, "decoding payroll policy")
	})
}

func TestDefaultPolicy_IsValid(t *testing.T) {
	assert.NoError(t, DefaultPolicy().Validate())
}
