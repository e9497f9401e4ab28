package evaluation

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uniform(v float64) Scores {
	return Scores{v, v, v, v, v, v, v}
}

func TestScore(t *testing.T) {
	t.Run("all fours average to exactly 4.00", func(t *testing.T) {
		got, err := Score(uniform(4))
		assert.NoError(t, err)
		assert.Equal(t, "4.00", got.StringFixed(2))
	})

	t.Run("rounds to two decimals", func(t *testing.T) {
		s := uniform(4)
		s.Teamwork = 4.5

		got, err := Score(s)
		assert.NoError(t, err)
		// 28.5 / 7 = 4.0714...
		assert.Equal(t, "4.07", got.String())
	})

	t.Run("boundaries", func(t *testing.T) {
		low, err := Score(uniform(0))
		assert.NoError(t, err)
		assert.True(t, low.IsZero())

		high, err := Score(uniform(5))
		assert.NoError(t, err)
		assert.Equal(t, "5.00", high.StringFixed(2))
	})

	t.Run("rejects out of range and off-step scores", func(t *testing.T) {
		s := uniform(3)
		s.Punctuality = 5.5
		s.Initiative = 2.25
		s.Communication = math.NaN()

		_, err := Score(s)

		var vErr *ValidationError
		assert.True(t, errors.As(err, &vErr))
		assert.Len(t, vErr.Fields, 3)
		assert.Contains(t, vErr.Fields, "punctuality_score")
		assert.Contains(t, vErr.Fields, "initiative_score")
		assert.Contains(t, vErr.Fields, "communication_score")
	})
}

func TestScore_SingleCategoryChange(t *testing.T) {
	t.Run("exact when the delta divides evenly", func(t *testing.T) {
		before, _ := Score(uniform(0))
		s := uniform(0)
		s.CustomerService = 3.5
		after, err := Score(s)

		assert.NoError(t, err)
		assert.Equal(t, "0.50", after.Sub(before).StringFixed(2))
	})

	t.Run("moves by delta over seven within rounding", func(t *testing.T) {
		base := Scores{3, 4, 2.5, 5, 1, 3.5, 4}
		before, _ := Score(base)

		for _, newScore := range []float64{0, 0.5, 2, 4.5, 5} {
			changed := base
			oldScore := changed.Productivity
			changed.Productivity = newScore

			after, err := Score(changed)
			assert.NoError(t, err)

			delta, _ := after.Sub(before).Float64()
			assert.InDelta(t, (newScore-oldScore)/7, delta, 0.0101)
		}
	})
}

func TestValidScore(t *testing.T) {
	cases := map[float64]bool{
		0: true, 0.5: true, 3: true, 4.5: true, 5: true,
		-0.5: false, 5.5: false, 1.2: false, math.Inf(1): false,
	}
	for v, want := range cases {
		assert.Equal(t, want, ValidScore(v), "score %v", v)
	}
}
