package fields

import (
	"cmp"
	"fmt"
	"math"
	"math/big"
	"strconv"

	"github.com/shopspring/decimal"
)

// Number is an immutable numeric field value. It remembers whether it was
// produced from an integer or a floating point input so that aggregates like
// Min, Max and Mode hand back the same kind of value they were fed.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Key is a comparable identity for a Number. Numerically equal values share a
// Key regardless of their Kind, so Int(10) and Float(10) group together.
type Key struct {
	integral bool
	i        int64
	f        float64
}

// Int creates an integer Number.
func Int(v int64) Number {
	return Number{kind: KindInt, i: v}
}

// Float creates a floating point Number.
func Float(v float64) Number {
	return Number{kind: KindFloat, f: v}
}

// From converts any Go numeric value into a Number. Unsigned values that do
// not fit into int64 become floats.
func From[T Numeric](v T) Number {
	half := 0.5
	if T(half) != 0 {
		return Float(float64(v))
	}
	var zero T
	if zero-1 > 0 && uint64(v) > math.MaxInt64 {
		return Float(float64(v))
	}
	return Int(int64(v))
}

// Parse performs the type-tag check for dynamically typed field values.
// Only integers, finite floats, Number and JSON number literals are accepted;
// anything else yields ErrInvalidFieldValue.
func Parse(v any) (Number, error) {
	switch x := v.(type) {
	case Number:
		if !x.IsFinite() {
			return Number{}, fmt.Errorf("%w: non-finite float %v", ErrInvalidFieldValue, x.f)
		}
		return x, nil
	case int:
		return From(x), nil
	case int8:
		return From(x), nil
	case int16:
		return From(x), nil
	case int32:
		return From(x), nil
	case int64:
		return From(x), nil
	case uint:
		return From(x), nil
	case uint8:
		return From(x), nil
	case uint16:
		return From(x), nil
	case uint32:
		return From(x), nil
	case uint64:
		return From(x), nil
	case float32:
		return parseFloat(float64(x))
	case float64:
		return parseFloat(x)
	case jsonNumber:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return Number{}, fmt.Errorf("%w: %q", ErrInvalidFieldValue, x.String())
		}
		return parseFloat(f)
	default:
		return Number{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidFieldValue, v)
	}
}

func parseFloat(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: non-finite float %v", ErrInvalidFieldValue, f)
	}
	return Float(f), nil
}

func (n Number) Kind() Kind {
	return n.kind
}

func (n Number) IsInt() bool {
	return n.kind == KindInt
}

// IsFinite reports whether the value is neither NaN nor infinite.
func (n Number) IsFinite() bool {
	if n.kind == KindInt {
		return true
	}
	return !math.IsNaN(n.f) && !math.IsInf(n.f, 0)
}

// Int64 returns the value as int64, truncating floats toward zero.
func (n Number) Int64() int64 {
	if n.kind == KindInt {
		return n.i
	}
	return int64(n.f)
}

func (n Number) Float64() float64 {
	if n.kind == KindInt {
		return float64(n.i)
	}
	return n.f
}

// Decimal returns the exact decimal representation used for summation.
// Non-finite floats map to zero; callers check IsFinite first.
func (n Number) Decimal() decimal.Decimal {
	if n.kind == KindInt {
		return decimal.NewFromInt(n.i)
	}
	if !n.IsFinite() {
		return decimal.Zero
	}
	return decimal.NewFromFloat(n.f)
}

// Compare returns -1, 0 or +1. Mixed kinds are compared exactly, so an
// integer above 2^53 never equals a float it merely rounds to. NaN sorts
// before everything else.
func (n Number) Compare(o Number) int {
	switch {
	case n.kind == KindInt && o.kind == KindInt:
		return cmp.Compare(n.i, o.i)
	case n.kind == KindFloat && o.kind == KindFloat:
		return cmp.Compare(n.f, o.f)
	case n.kind == KindFloat:
		return compareFloatInt(n.f, o.i)
	default:
		return -compareFloatInt(o.f, n.i)
	}
}

func compareFloatInt(f float64, i int64) int {
	if math.IsNaN(f) {
		return -1
	}
	return new(big.Float).SetFloat64(f).Cmp(new(big.Float).SetInt64(i))
}

// Equal reports numeric equality across kinds.
func (n Number) Equal(o Number) bool {
	return n.Compare(o) == 0
}

func (n Number) Key() Key {
	if n.kind == KindInt {
		return Key{integral: true, i: n.i}
	}
	if n.f == math.Trunc(n.f) && n.f >= math.MinInt64 && n.f < math.MaxInt64 {
		return Key{integral: true, i: int64(n.f)}
	}
	return Key{f: n.f}
}

func (n Number) String() string {
	if n.kind == KindInt {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsFinite() {
		return nil, fmt.Errorf("%w: non-finite float %v", ErrInvalidFieldValue, n.f)
	}
	return []byte(n.String()), nil
}

func (n Number) MarshalYAML() (any, error) {
	if n.kind == KindInt {
		return n.i, nil
	}
	return n.f, nil
}
