package maxslog

import (
	"fmt"
	"math"
)

// Value is a raw calculation input handed to RequireNonNull. The set of kinds
// is closed: build values with Absent, Float, Int, QuantityOf or Enum.
type Value interface {
	isValue()
}

type (
	absentValue   struct{}
	floatValue    float64
	intValue      int64
	quantityValue struct{ q Quantity }
	enumValue     struct{ e Enumerated }
)

func (absentValue) isValue()   {}
func (floatValue) isValue()    {}
func (intValue) isValue()      {}
func (quantityValue) isValue() {}
func (enumValue) isValue()     {}

// Absent is a value that was never computed.
func Absent() Value { return absentValue{} }

func Float(f float64) Value { return floatValue(f) }

func Int(i int64) Value { return intValue(i) }

// QuantityOf wraps q. A nil q is an absent quantity.
func QuantityOf(q Quantity) Value {
	if isNil(q) {
		return quantityValue{}
	}
	return quantityValue{q: q}
}

// Enum wraps an enumeration member. A nil e is an absent member.
func Enum(e Enumerated) Value {
	if isNil(e) {
		return enumValue{}
	}
	return enumValue{e: e}
}

// Inspect returns the numeric payload recorded for a missing value:
//
//   - absent values, absent quantities and unknown enum members give NaN
//   - floats and ints give the value itself
//   - quantities give their magnitude
//
// A known enum member is not a missing value and yields ErrNotMissing.
// Kinds outside the list above yield ErrUnsupportedValue.
func Inspect(v Value) (float64, error) {
	switch v := v.(type) {
	case nil, absentValue:
		return math.NaN(), nil
	case floatValue:
		return float64(v), nil
	case intValue:
		return float64(v), nil
	case quantityValue:
		if v.q == nil {
			return math.NaN(), nil
		}
		return v.q.Magnitude(), nil
	case enumValue:
		if v.e == nil || v.e.IsUnknown() {
			return math.NaN(), nil
		}
		return 0, ErrNotMissing
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnsupportedValue, v)
	}
}

// isMissing reports whether RequireNonNull must emit a diagnostic for v.
// Unsupported kinds report true so that Inspect surfaces them.
func isMissing(v Value) bool {
	switch v := v.(type) {
	case nil, absentValue:
		return true
	case floatValue:
		return math.IsNaN(float64(v))
	case intValue:
		return false
	case quantityValue:
		return v.q == nil
	case enumValue:
		return v.e == nil || v.e.IsUnknown()
	default:
		return true
	}
}
