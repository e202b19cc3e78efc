// Package query builds predicates for maxslog.Logger.Filter.
package query

import (
	"fmt"
	"strings"

	"github.com/reoring/maxslog"
)

// Op defines simple comparison operators for ComponentWhere.
type Op int

const (
	Eq Op = iota
	Ne
	Lt
	Le
	Gt
	Ge
)

// ParseOp accepts the symbolic forms (==, !=, <, <=, >, >=).
func ParseOp(s string) (Op, error) {
	switch strings.TrimSpace(s) {
	case "==", "=":
		return Eq, nil
	case "!=":
		return Ne, nil
	case "<":
		return Lt, nil
	case "<=":
		return Le, nil
	case ">":
		return Gt, nil
	case ">=":
		return Ge, nil
	}
	return 0, fmt.Errorf("query: unknown operator %q", s)
}

// Routine matches notifications produced by r.
func Routine(r maxslog.Routine) maxslog.Predicate {
	id := ""
	if r != nil {
		id = r.ID()
	}
	return RoutineID(id)
}

// RoutineID matches the routine attribute verbatim; "" matches notifications
// without a routine.
func RoutineID(id string) maxslog.Predicate {
	return func(n maxslog.Notification) bool { return n.Routine == id }
}

// Component matches notifications about component id.
func Component(id int) maxslog.Predicate {
	return ComponentWhere(Eq, id)
}

// ComponentWhere compares the notification component id with id. Notifications
// without a component carry id 0.
func ComponentWhere(op Op, id int) maxslog.Predicate {
	return func(n maxslog.Notification) bool { return compare(op, n.CompID, id) }
}

// Severity matches any of the given severities.
func Severity(sevs ...maxslog.Severity) maxslog.Predicate {
	set := make(map[maxslog.Severity]struct{}, len(sevs))
	for _, s := range sevs {
		set[s] = struct{}{}
	}
	return func(n maxslog.Notification) bool {
		_, ok := set[n.Severity]
		return ok
	}
}

// SeverityNames is Severity for names such as "error" or "DEBUG_INFO".
func SeverityNames(names ...string) (maxslog.Predicate, error) {
	sevs := make([]maxslog.Severity, 0, len(names))
	for _, name := range names {
		s, err := maxslog.ParseSeverity(name)
		if err != nil {
			return nil, err
		}
		sevs = append(sevs, s)
	}
	return Severity(sevs...), nil
}

// Debug matches the DEBUG_* severities.
func Debug() maxslog.Predicate {
	return func(n maxslog.Notification) bool { return n.Severity.IsDebug() }
}

// MessageContains matches messages containing sub, ignoring case.
func MessageContains(sub string) maxslog.Predicate {
	sub = strings.ToLower(sub)
	return func(n maxslog.Notification) bool {
		return strings.Contains(strings.ToLower(n.Message), sub)
	}
}

// Attribute matches notifications carrying a data item for attr.
func Attribute(attr string) maxslog.Predicate {
	return func(n maxslog.Notification) bool { return n.HasAttribute(attr) }
}

// All requires every predicate to hold. Nil predicates are skipped; All()
// matches everything.
func All(ps ...maxslog.Predicate) maxslog.Predicate {
	return func(n maxslog.Notification) bool {
		for _, p := range ps {
			if p != nil && !p(n) {
				return false
			}
		}
		return true
	}
}

// Any requires at least one predicate to hold. Any() matches nothing.
func Any(ps ...maxslog.Predicate) maxslog.Predicate {
	return func(n maxslog.Notification) bool {
		for _, p := range ps {
			if p != nil && p(n) {
				return true
			}
		}
		return false
	}
}

func Not(p maxslog.Predicate) maxslog.Predicate {
	return func(n maxslog.Notification) bool { return !p(n) }
}

func compare(op Op, got, want int) bool {
	switch op {
	case Eq:
		return got == want
	case Ne:
		return got != want
	case Lt:
		return got < want
	case Le:
		return got <= want
	case Gt:
		return got > want
	case Ge:
		return got >= want
	default:
		return false
	}
}
