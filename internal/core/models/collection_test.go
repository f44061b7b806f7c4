package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KarthigaSethu/Generic-Performance-Analysis-System-Adding-Test/internal/core/fields"
)

func scores(values ...fields.Number) *Collection {
	c := NewCollection()
	for i, v := range values {
		c.Add(string(rune('1'+i)), map[string]fields.Number{"score": v})
	}
	return c
}

func TestCollection_AddEntitySharesReference(t *testing.T) {
	c := NewCollection()
	e := c.AddEntity("1")

	require.Equal(t, 1, c.Len())
	assert.Same(t, e, c.Items()[0])
	assert.Same(t, e, c.At(0))

	e.Add("score", 5)
	assert.Equal(t, 1, c.Count("score"))

	last := c.AddEntity("2")
	items := c.Items()
	assert.Same(t, last, items[len(items)-1])
}

func TestCollection_AddWithFields(t *testing.T) {
	c := NewCollection()
	e := c.Add("1", map[string]fields.Number{"score": fields.Int(10)})

	assert.Same(t, e, c.At(0))
	assert.Equal(t, "1", c.At(0).ID())
	assert.Equal(t, []fields.Number{fields.Int(10)}, c.Values("score"))
}

func TestCollection_DuplicateIDsAllowed(t *testing.T) {
	c := NewCollection()
	c.AddEntity("same")
	c.AddEntity("same")
	assert.Equal(t, 2, c.Len())
}

func TestCollection_ItemsSliceIsCopy(t *testing.T) {
	c := NewCollection()
	c.AddEntity("1")
	items := c.Items()
	items[0] = nil
	assert.NotNil(t, c.At(0))
}

func TestCollection_Aggregates(t *testing.T) {
	c := NewCollection()
	c.Add("1", map[string]fields.Number{"score": fields.Int(10)})
	c.Add("2", map[string]fields.Number{"score": fields.Int(20)})

	mean, err := c.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 15.0, mean)

	mode, err := c.Mode("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(10), mode)

	median, err := c.Median("score")
	require.NoError(t, err)
	assert.Equal(t, 15.0, median)

	minimum, err := c.Min("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(10), minimum)

	maximum, err := c.Max("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(20), maximum)

	assert.Equal(t, 2, c.Count("score"))
}

func TestCollection_AggregatesSkipNonContributing(t *testing.T) {
	c := NewCollection()
	c.Add("1", map[string]fields.Number{"score": fields.Int(4)})
	c.Add("2", map[string]fields.Number{"latency": fields.Int(100)})
	c.AddEntity("3")
	c.Add("4", map[string]fields.Number{"score": fields.Int(8)})

	assert.Equal(t, 2, c.Count("score"))
	assert.Equal(t, 1, c.Count("latency"))

	mean, err := c.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 6.0, mean)

	assert.Equal(t, []string{"latency", "score"}, c.FieldNames())
}

func TestCollection_MeanIsExact(t *testing.T) {
	c := scores(fields.Float(0.1), fields.Float(0.2))
	mean, err := c.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 0.15, mean)

	mixed := scores(fields.Int(1), fields.Float(2.5), fields.Int(3))
	mean, err = mixed.Mean("score")
	require.NoError(t, err)
	assert.InDelta(t, 2.1666666666666665, mean, 1e-12)
}

func TestCollection_MeanAndMedianKeepTinyValues(t *testing.T) {
	c := NewCollection()
	c.Add("1", map[string]fields.Number{"latency": fields.Float(1e-20)})
	c.Add("2", map[string]fields.Number{"latency": fields.Float(3e-20)})

	mean, err := c.Mean("latency")
	require.NoError(t, err)
	assert.Equal(t, 2e-20, mean)

	median, err := c.Median("latency")
	require.NoError(t, err)
	assert.Equal(t, 2e-20, median)

	same := scores(fields.Float(1e-20), fields.Float(1e-20), fields.Float(1e-20))
	mean, err = same.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 1e-20, mean)

	median, err = same.Median("score")
	require.NoError(t, err)
	assert.Equal(t, 1e-20, median)
}

func TestCollection_MeanKeepsPrecision(t *testing.T) {
	single := scores(fields.Float(1.2345678901234567e-5))
	mean, err := single.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 1.2345678901234567e-5, mean)

	pair := scores(fields.Float(1.2345678901234567e-5), fields.Float(1.2345678901234567e-5))
	mean, err = pair.Mean("score")
	require.NoError(t, err)
	assert.Equal(t, 1.2345678901234567e-5, mean)
}

func TestCollection_MeanWithNonFiniteValue(t *testing.T) {
	c := scores(fields.Int(1), fields.Float(math.Inf(1)))
	mean, err := c.Mean("score")
	require.NoError(t, err)
	assert.True(t, math.IsInf(mean, 1))
}

func TestCollection_ModeTieBreak(t *testing.T) {
	cases := []struct {
		name   string
		values []fields.Number
		want   fields.Number
	}{
		{"single occurrences pick first", []fields.Number{fields.Int(20), fields.Int(10)}, fields.Int(20)},
		{"highest frequency wins", []fields.Number{fields.Int(1), fields.Int(2), fields.Int(2)}, fields.Int(2)},
		{"tie picks earliest first occurrence", []fields.Number{fields.Int(3), fields.Int(5), fields.Int(5), fields.Int(3)}, fields.Int(3)},
		{"int and float group together", []fields.Number{fields.Int(7), fields.Float(9), fields.Float(7)}, fields.Int(7)},
		{"large ints only group with exactly equal floats", []fields.Number{fields.Int(9007199254740993), fields.Float(9007199254740992), fields.Int(9007199254740992)}, fields.Float(9007199254740992)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mode, err := scores(tc.values...).Mode("score")
			require.NoError(t, err)
			assert.Equal(t, tc.want, mode)
		})
	}
}

func TestCollection_MedianOddAndUnsorted(t *testing.T) {
	median, err := scores(fields.Int(9), fields.Int(1), fields.Int(5)).Median("score")
	require.NoError(t, err)
	assert.Equal(t, 5.0, median)

	median, err = scores(fields.Int(4), fields.Int(1), fields.Int(3), fields.Int(2)).Median("score")
	require.NoError(t, err)
	assert.Equal(t, 2.5, median)
}

func TestCollection_MinMaxMixedKinds(t *testing.T) {
	c := scores(fields.Float(2.5), fields.Int(-1), fields.Int(7), fields.Float(7))

	minimum, err := c.Min("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(-1), minimum)

	maximum, err := c.Max("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(7), maximum, "first maximum wins on ties")
}

func TestCollection_EmptyAggregation(t *testing.T) {
	empty := NewCollection()
	assert.Equal(t, 0, empty.Count("score"))

	withoutField := scores(fields.Int(1))

	for _, c := range []*Collection{empty, withoutField} {
		_, err := c.Mean("missing")
		require.ErrorIs(t, err, ErrEmptyAggregation)

		_, err = c.Mode("missing")
		require.ErrorIs(t, err, ErrEmptyAggregation)

		_, err = c.Median("missing")
		require.ErrorIs(t, err, ErrEmptyAggregation)

		_, err = c.Min("missing")
		require.ErrorIs(t, err, ErrEmptyAggregation)

		_, err = c.Max("missing")
		require.ErrorIs(t, err, ErrEmptyAggregation)
	}

	_, err := empty.Median("latency")
	var aggErr *AggregationError
	require.True(t, errors.As(err, &aggErr))
	assert.Equal(t, "median", aggErr.Op)
	assert.Equal(t, "latency", aggErr.Field)
	assert.Contains(t, err.Error(), `median("latency")`)
}

func TestCollection_AggregatesAreIdempotent(t *testing.T) {
	c := scores(fields.Int(3), fields.Int(1), fields.Int(3), fields.Float(8.5))

	for range 2 {
		mean, err := c.Mean("score")
		require.NoError(t, err)
		assert.Equal(t, 3.875, mean)

		mode, err := c.Mode("score")
		require.NoError(t, err)
		assert.Equal(t, fields.Int(3), mode)

		median, err := c.Median("score")
		require.NoError(t, err)
		assert.Equal(t, 3.0, median)

		assert.Equal(t, []fields.Number{fields.Int(3), fields.Int(1), fields.Int(3), fields.Float(8.5)}, c.Values("score"))
	}
}

func TestCollection_MutationThroughReferenceIsVisible(t *testing.T) {
	c := NewCollection()
	a := c.Add("a", map[string]fields.Number{"score": fields.Int(1)})
	c.Add("b", map[string]fields.Number{"score": fields.Int(2)})

	a.Add("score", 10)

	maximum, err := c.Max("score")
	require.NoError(t, err)
	assert.Equal(t, fields.Int(10), maximum)
}

func TestCollection_Digest(t *testing.T) {
	build := func() *Collection {
		c := NewCollection()
		c.Add("1", map[string]fields.Number{"score": fields.Int(10), "latency": fields.Float(1.5)})
		c.AddEntity("2")
		return c
	}

	a, b := build(), build()
	assert.Equal(t, a.Digest(), b.Digest())

	b.At(1).Add("score", 3)
	assert.NotEqual(t, a.Digest(), b.Digest())

	intVsFloat := scores(fields.Int(10))
	floatVsInt := scores(fields.Float(10))
	assert.NotEqual(t, intVsFloat.Digest(), floatVsInt.Digest())
}
