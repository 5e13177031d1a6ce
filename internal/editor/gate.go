package editor

import "errors"

// ErrGatePending is returned when a destructive action is requested while
// another one still awaits confirmation.
var ErrGatePending = errors.New("another action is awaiting confirmation")

// Decision resolves a pending confirmation. Escape maps to Decline and
// Enter to Confirm.
type Decision int

const (
	Decline Decision = iota
	Confirm
)

func (d Decision) String() string {
	if d == Confirm {
		return "yes"
	}
	return "no"
}

// Gate holds at most one destructive action awaiting a yes/no answer.
// The target identifies the action, usually a record index.
type Gate[T any] struct {
	target  T
	pending bool
}

// Request arms the gate for target. It fails with ErrGatePending while an
// earlier request is unresolved; the earlier request stays armed.
func (g *Gate[T]) Request(target T) error {
	if g.pending {
		return ErrGatePending
	}
	g.target = target
	g.pending = true
	return nil
}

// Pending returns the armed target.
func (g *Gate[T]) Pending() (T, bool) {
	return g.target, g.pending
}

// Resolve clears the gate and hands back the target. confirmed is true only
// for Confirm; ok is false when nothing was pending.
func (g *Gate[T]) Resolve(d Decision) (target T, confirmed, ok bool) {
	if !g.pending {
		var zero T
		return zero, false, false
	}
	target = g.target
	var zero T
	g.target = zero
	g.pending = false
	return target, d == Confirm, true
}
