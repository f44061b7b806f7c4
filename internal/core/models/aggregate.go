package models

import (
	"github.com/shopspring/decimal"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/fields"
	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/pkg/sequence"
)

// Mean returns the arithmetic mean of field over contributing entities.
func (c *Collection) Mean(field string) (float64, error) {
	values := c.Values(field)
	if len(values) == 0 {
		return 0, emptyAggregation("mean", field)
	}
	return average(values), nil
}

// Mode returns the most frequent value of field. When several values share
// the highest frequency, the one whose first occurrence comes earliest in
// insertion order wins.
func (c *Collection) Mode(field string) (fields.Number, error) {
	values := c.contributing(field)
	order := sequence.Distinct(values, fields.Number.Key)
	if len(order) == 0 {
		return fields.Number{}, emptyAggregation("mode", field)
	}

	groups := sequence.GroupBy(values, fields.Number.Key)
	best := order[0]
	for _, key := range order[1:] {
		if len(groups[key]) > len(groups[best]) {
			best = key
		}
	}
	return groups[best][0], nil
}

// Median returns the middle value of field, or the mean of the two middle
// values when the number of contributing entities is even.
func (c *Collection) Median(field string) (float64, error) {
	sorted := c.contributing(field).Sort(fields.Number.Compare).Collect()
	n := len(sorted)
	if n == 0 {
		return 0, emptyAggregation("median", field)
	}
	if n%2 == 1 {
		return sorted[n/2].Float64(), nil
	}
	return average(sorted[n/2-1 : n/2+1]), nil
}

// Min returns the smallest value of field, first occurrence on ties.
func (c *Collection) Min(field string) (fields.Number, error) {
	return c.extreme("min", field, func(candidate, current fields.Number) bool {
		return candidate.Compare(current) < 0
	})
}

// Max returns the largest value of field, first occurrence on ties.
func (c *Collection) Max(field string) (fields.Number, error) {
	return c.extreme("max", field, func(candidate, current fields.Number) bool {
		return candidate.Compare(current) > 0
	})
}

// Count returns how many entities currently hold field.
func (c *Collection) Count(field string) int {
	return c.contributing(field).Count()
}

func (c *Collection) extreme(op, field string, better func(candidate, current fields.Number) bool) (fields.Number, error) {
	values := c.Values(field)
	if len(values) == 0 {
		return fields.Number{}, emptyAggregation(op, field)
	}
	return sequence.From(values[1:]).Reduce(values[0], func(current, candidate fields.Number) fields.Number {
		if better(candidate, current) {
			return candidate
		}
		return current
	}), nil
}

// average sums exactly in decimal and falls back to float64 arithmetic when a
// value is not finite.
func average(values []fields.Number) float64 {
	total := decimal.Zero
	for _, v := range values {
		if !v.IsFinite() {
			return floatAverage(values)
		}
		total = total.Add(v.Decimal())
	}
	// keep 16 significant digits below the smallest digit of the sum
	places := int32(16)
	if exp := -total.Exponent(); exp > 0 {
		places += exp
	}
	mean, _ := total.DivRound(decimal.NewFromInt(int64(len(values))), places).Float64()
	return mean
}

func floatAverage(values []fields.Number) float64 {
	var total float64
	for _, v := range values {
		total += v.Float64()
	}
	return total / float64(len(values))
}
