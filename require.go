package maxslog

import (
	"math"

	"go.uber.org/zap"

	"github.com/reoring/maxslog/i18n"
)

// The Require* checks record a DEBUG_ERROR notification with one data item
// when the value fails the check, and report whether they did. A value that
// passes leaves the log untouched.

// RequireNonNullFloat fails for NaN.
func (l *Logger) RequireNonNullFloat(r Routine, compID int, v float64, attr string) bool {
	if !math.IsNaN(v) {
		return false
	}
	return l.reportMissing(r, compID, attr, Float(v))
}

// RequireNonNullQuantity fails for a nil quantity.
func (l *Logger) RequireNonNullQuantity(r Routine, compID int, q Quantity, attr string) bool {
	if !isNil(q) {
		return false
	}
	return l.reportMissing(r, compID, attr, Absent())
}

// RequireNonNull fails for absent values, NaN floats, absent quantities and
// unknown enum members. Ints and known enum members always pass.
func (l *Logger) RequireNonNull(r Routine, compID int, v Value, attr string) bool {
	if !isMissing(v) {
		return false
	}
	return l.reportMissing(r, compID, attr, v)
}

// RequireNonZeroFloat fails for NaN and for values similar to zero.
func (l *Logger) RequireNonZeroFloat(r Routine, compID int, v float64, attr string) bool {
	if !math.IsNaN(v) && !IsSimilar(v, 0) {
		return false
	}
	return l.reportMissing(r, compID, attr, Float(v))
}

// RequireNonZeroQuantity fails for a nil quantity or a magnitude similar to
// zero.
func (l *Logger) RequireNonZeroQuantity(r Routine, compID int, q Quantity, attr string) bool {
	if !isNil(q) && !IsSimilar(q.Magnitude(), 0) {
		return false
	}
	return l.reportMissing(r, compID, attr, QuantityOf(q))
}

// RequireNonZeroInt fails for 0.
func (l *Logger) RequireNonZeroInt(r Routine, compID int, v int64, attr string) bool {
	if v != 0 {
		return false
	}
	return l.reportMissing(r, compID, attr, Int(v))
}

func (l *Logger) reportMissing(r Routine, compID int, attr string, v Value) bool {
	payload, err := Inspect(v)
	if err != nil {
		l.logger().Warn("cannot report missing attribute",
			zap.String("attribute", attr), zap.Int("component", compID),
			zap.String("run", l.RunID()), zap.Error(err))
		return false
	}
	msg := i18n.T(i18n.CodeMissingAttribute, map[string]string{"attribute": attr})
	n := NewNotification(r, compID, msg, SeverityDebugError)
	n.Items = append(n.Items, DataItem{AttrID: attr, CompID: compID, Value: payload})
	l.Append(n)
	return true
}
