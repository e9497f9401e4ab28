package evaluation

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	MinScore = 0.0
	MaxScore = 5.0

	categoryCount = 7
)

// Scores holds the seven category ratings of an evaluation.
type Scores struct {
	WorkQuality     float64
	Productivity    float64
	Communication   float64
	Teamwork        float64
	Punctuality     float64
	Initiative      float64
	CustomerService float64
}

func (s Scores) named() [categoryCount]struct {
	name  string
	value float64
} {
	return [categoryCount]struct {
		name  string
		value float64
	}{
		{"work_quality_score", s.WorkQuality},
		{"productivity_score", s.Productivity},
		{"communication_score", s.Communication},
		{"teamwork_score", s.Teamwork},
		{"punctuality_score", s.Punctuality},
		{"initiative_score", s.Initiative},
		{"customer_service_score", s.CustomerService},
	}
}

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, c := range (Scores{}).named() {
		if msg, ok := e.Fields[c.name]; ok {
			parts = append(parts, c.name+" "+msg)
		}
	}
	return "invalid evaluation scores: " + strings.Join(parts, ", ")
}

// ValidScore reports whether v is a finite half-point step in [0,5].
func ValidScore(v float64) bool {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return false
	}
	if v < MinScore || v > MaxScore {
		return false
	}
	return v*2 == math.Trunc(v*2)
}

func (s Scores) Validate() error {
	fields := map[string]string{}
	for _, c := range s.named() {
		if !ValidScore(c.value) {
			fields[c.name] = fmt.Sprintf("must be a multiple of 0.5 between %.0f and %.0f", MinScore, MaxScore)
		}
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// Score returns the mean of the seven categories rounded to two decimals.
func Score(s Scores) (decimal.Decimal, error) {
	if err := s.Validate(); err != nil {
		return decimal.Zero, err
	}

	sum := decimal.Zero
	for _, c := range s.named() {
		sum = sum.Add(decimal.NewFromFloat(c.value))
	}
	return sum.Div(decimal.NewFromInt(categoryCount)).Round(2), nil
}
