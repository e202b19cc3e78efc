// Package lifecycle holds the Inactive/Active state machine of the file
// mirror.
package lifecycle

import (
	"context"

	"github.com/looplab/fsm"
)

const (
	StateInactive = "inactive"
	StateActive   = "active"

	EventActivate   = "activate"
	EventDeactivate = "deactivate"
)

// Machine wraps a two-state FSM. Self transitions are skipped rather than
// sent to the FSM, which would report them as NoTransitionError.
type Machine struct {
	fsm *fsm.FSM
}

// New returns a machine in StateInactive. onEnter, if set, observes every
// state change.
func New(onEnter func(from, to string)) *Machine {
	m := &Machine{}
	m.fsm = fsm.NewFSM(
		StateInactive,
		fsm.Events{
			{Name: EventActivate, Src: []string{StateInactive}, Dst: StateActive},
			{Name: EventDeactivate, Src: []string{StateActive}, Dst: StateInactive},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				if onEnter != nil {
					onEnter(e.Src, e.Dst)
				}
			},
		},
	)
	return m
}

// Activate moves to StateActive.
func (m *Machine) Activate() error {
	if m.Active() {
		return nil
	}
	return m.fsm.Event(context.Background(), EventActivate)
}

// Deactivate moves to StateInactive.
func (m *Machine) Deactivate() error {
	if !m.Active() {
		return nil
	}
	return m.fsm.Event(context.Background(), EventDeactivate)
}

func (m *Machine) Active() bool { return m.fsm.Current() == StateActive }

func (m *Machine) Current() string { return m.fsm.Current() }
