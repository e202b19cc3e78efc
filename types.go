package maxslog

import (
	"fmt"
	"strings"
)

// Severity expresses the severity level of a notification.
type Severity uint8

const (
	SeverityError        Severity = iota // Calculation result is not usable.
	SeverityWarning                      // Result is usable with restrictions.
	SeverityInfo                         // Plain information for the user.
	SeverityDebugError                   // Error detail meant for developers.
	SeverityDebugWarning                 // Warning detail meant for developers.
	SeverityDebugInfo                    // Information meant for developers.
)

var severityNames = [...]string{
	SeverityError:        "ERROR",
	SeverityWarning:      "WARNING",
	SeverityInfo:         "INFO",
	SeverityDebugError:   "DEBUG_ERROR",
	SeverityDebugWarning: "DEBUG_WARNING",
	SeverityDebugInfo:    "DEBUG_INFO",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return fmt.Sprintf("Severity(%d)", uint8(s))
}

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool { return int(s) < len(severityNames) }

// IsDebug reports whether s is one of the DEBUG_* severities.
func (s Severity) IsDebug() bool {
	return s == SeverityDebugError || s == SeverityDebugWarning || s == SeverityDebugInfo
}

// ParseSeverity resolves a severity name case-insensitively.
func ParseSeverity(name string) (Severity, error) {
	n := strings.TrimSpace(name)
	for i, s := range severityNames {
		if strings.EqualFold(s, n) {
			return Severity(i), nil
		}
	}
	return 0, fmt.Errorf("maxslog: unknown severity %q", name)
}

func (s Severity) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("maxslog: invalid severity %d", uint8(s))
	}
	return []byte(s.String()), nil
}

func (s *Severity) UnmarshalText(b []byte) error {
	v, err := ParseSeverity(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// Routine identifies the calculation routine or standard that produced a
// notification. A nil Routine leaves the routine attribute out.
type Routine interface {
	ID() string
}

// Component is a model component that carries a numeric identifier.
type Component interface {
	ComponentID() int
}

// Quantity is a physical magnitude with a unit.
type Quantity interface {
	Magnitude() float64
	Unit() string
}

// Enumerated is implemented by domain enumerations that reserve an explicit
// unknown member.
type Enumerated interface {
	IsUnknown() bool
}

// NamedEnum adapts an enumeration that only exposes its name: it is unknown
// when the name equals "unknown" ignoring case. Any other name is a valid
// member.
func NamedEnum(v fmt.Stringer) Enumerated {
	if isNil(v) {
		return nil
	}
	return namedEnum{v}
}

type namedEnum struct{ fmt.Stringer }

func (n namedEnum) IsUnknown() bool { return strings.EqualFold(n.String(), "unknown") }

func routineID(r Routine) string {
	if isNil(r) {
		return ""
	}
	return r.ID()
}

func componentID(c Component) int {
	if isNil(c) {
		return 0
	}
	return c.ComponentID()
}
