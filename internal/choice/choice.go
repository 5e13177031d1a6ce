// Package choice implements a small tagged union: a value that sits in at
// most one of several named slots. Definition files use it wherever a record
// carries mutually exclusive keys (ref or name, x or minx or maxx).
package choice

// Slot identifies the alternative that holds the value. The zero Slot means
// no alternative is set.
type Slot uint8

// None is the empty slot.
const None Slot = 0

// Of holds a value of type T in a single slot. The zero value is empty.
type Of[T comparable] struct {
	slot Slot
	val  T
}

// New returns an Of holding v in slot s. New(None, v) is empty.
func New[T comparable](s Slot, v T) Of[T] {
	if s == None {
		return Of[T]{}
	}
	return Of[T]{slot: s, val: v}
}

// Some returns an Of holding v in slot 1, for single-slot optionals.
func Some[T comparable](v T) Of[T] {
	return New(1, v)
}

// First builds an Of from one pointer per slot, in slot order starting at 1.
// The first non-nil pointer wins; the remaining alternatives are dropped.
func First[T comparable](alts ...*T) Of[T] {
	for i, p := range alts {
		if p != nil {
			return New(Slot(i+1), *p)
		}
	}
	return Of[T]{}
}

// Slot reports which alternative is set.
func (o Of[T]) Slot() Slot { return o.slot }

// IsZero reports whether no alternative is set.
func (o Of[T]) IsZero() bool { return o.slot == None }

// Get returns the value if it sits in slot s.
func (o Of[T]) Get(s Slot) (T, bool) {
	if s == None || o.slot != s {
		var zero T
		return zero, false
	}
	return o.val, true
}

// Value returns the value regardless of slot.
func (o Of[T]) Value() (T, bool) {
	return o.val, o.slot != None
}

// Ptr returns a pointer to a copy of the value when it sits in slot s, nil
// otherwise. Wire structs use it to emit only the chosen key.
func (o Of[T]) Ptr(s Slot) *T {
	v, ok := o.Get(s)
	if !ok {
		return nil
	}
	return &v
}
