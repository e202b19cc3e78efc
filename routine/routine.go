// Package routine names the calculation procedures that produce notifications.
package routine

import (
	"errors"
	"fmt"
	"regexp"
	"sync"
)

// Standard is a routine identifier. It satisfies maxslog.Routine.
type Standard string

// Standard routines known to the kernel.
const (
	TR06          Standard = "tr06"
	DR14028_2020  Standard = "dr14028_2020"
	DR401_2014    Standard = "dr401_2014"
	DIN51563_2011 Standard = "din51563_2011"
	ISO21771_2007 Standard = "iso21771_2007"
	ISO21771Draft Standard = "iso21771_draft"
	ISO6336_2019  Standard = "iso6336_2019"
	Unknown       Standard = "unknown"
)

var standards = []Standard{TR06, DR14028_2020, DR401_2014, DIN51563_2011, ISO21771_2007, ISO21771Draft, ISO6336_2019, Unknown}

// Standards returns the predefined routines in declaration order.
func Standards() []Standard {
	return append([]Standard(nil), standards...)
}

// ID returns the identifier written to the routine attribute.
func (s Standard) ID() string { return string(s) }

// IsUnknown marks the placeholder routine.
func (s Standard) IsUnknown() bool { return s == Unknown }

func (s Standard) String() string { return string(s) }

// Lookup returns the predefined routine with the given id.
func Lookup(id string) (Standard, bool) {
	for _, s := range standards {
		if string(s) == id {
			return s, true
		}
	}
	return "", false
}

var (
	ErrInvalidID   = errors.New("routine: id must be lowercase letters and digits separated by underscores")
	ErrDuplicateID = errors.New("routine: id already registered")
)

var idPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)

// Valid reports whether id has the lowercase, underscore separated form.
func Valid(id string) bool { return idPattern.MatchString(id) }

// Registry hands out routine ids that are unique within one application.
type Registry struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewRegistry returns a registry pre-populated with the standard routines.
func NewRegistry() *Registry {
	r := &Registry{ids: make(map[string]struct{}, len(standards))}
	for _, s := range standards {
		r.ids[string(s)] = struct{}{}
	}
	return r
}

// Register validates and reserves id.
func (r *Registry) Register(id string) (Standard, error) {
	if !Valid(id) {
		return "", fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.ids[id]; ok {
		return "", fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	r.ids[id] = struct{}{}
	return Standard(id), nil
}

// Has reports whether id is registered.
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.ids[id]
	return ok
}
