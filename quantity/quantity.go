// Package quantity provides a small magnitude-plus-unit value for callers that
// do not bring their own units library.
package quantity

import (
	"math"
	"strconv"
)

// ThresholdLimit replaces infinite magnitudes in Of. It is sqrt(MaxFloat64),
// large enough to mean "unbounded" while still allowing squares.
const ThresholdLimit = 1.3407807929942596e154

// Unit is a unit symbol such as "mm" or "N".
type Unit string

const (
	One                  Unit = "1"
	Millimeter           Unit = "mm"
	Meter                Unit = "m"
	Newton               Unit = "N"
	NewtonMeter          Unit = "N m"
	NewtonPerSquareMM    Unit = "N/mm^2"
	Megapascal           Unit = "MPa"
	Kilowatt             Unit = "kW"
	RevolutionsPerMinute Unit = "1/min"
	Degree               Unit = "deg"
	DegreeCelsius        Unit = "degC"
	Kilogram             Unit = "kg"
)

// Quantity is an immutable magnitude with a unit.
type Quantity struct {
	value float64
	unit  Unit
}

// Of returns a quantity or nil when the input cannot form one: an empty unit
// or a NaN value. Infinite values are clamped to ±ThresholdLimit.
func Of(value float64, unit Unit) *Quantity {
	if unit == "" || math.IsNaN(value) {
		return nil
	}
	switch {
	case math.IsInf(value, 1):
		value = ThresholdLimit
	case math.IsInf(value, -1):
		value = -ThresholdLimit
	}
	return &Quantity{value: value, unit: unit}
}

// Magnitude returns the unit-less value; NaN for a nil quantity.
func (q *Quantity) Magnitude() float64 {
	if q == nil {
		return math.NaN()
	}
	return q.value
}

// Unit returns the unit symbol; empty for a nil quantity.
func (q *Quantity) Unit() string {
	if q == nil {
		return ""
	}
	return string(q.unit)
}

func (q *Quantity) String() string {
	if q == nil {
		return "<nil>"
	}
	return strconv.FormatFloat(q.value, 'g', -1, 64) + " " + string(q.unit)
}
