// Package editor implements the editing state of a data directory: one
// editor per collection, each owning its records, a confirmation gate for
// deletes and, for tiles, a navigator over the variant tree.
package editor

import "github.com/martinhoracek/TerraFirma/internal/model"

// Collection is the editor of a flat record list.
type Collection[T any] struct {
	records []T
	fields  []Field[T]
	fresh   func(records []T) T
	gate    Gate[int]
	rev     uint64
}

// NewCollection returns an empty collection editor. fresh builds the record
// appended by Add; it may inspect the current records.
func NewCollection[T any](fields []Field[T], fresh func(records []T) T) *Collection[T] {
	return &Collection[T]{fields: fields, fresh: fresh}
}

// Replace swaps in a new record list and drops any pending delete.
func (c *Collection[T]) Replace(records []T) {
	c.records = records
	c.gate = Gate[int]{}
	c.rev++
}

// Records returns the record list. Callers must not modify it.
func (c *Collection[T]) Records() []T { return c.records }

func (c *Collection[T]) Len() int { return len(c.records) }

// Revision increases on every change.
func (c *Collection[T]) Revision() uint64 { return c.rev }

// Fields lists the editable columns.
func (c *Collection[T]) Fields() []Field[T] { return c.fields }

// At returns a copy of record i.
func (c *Collection[T]) At(i int) (T, error) {
	if i < 0 || i >= len(c.records) {
		var zero T
		return zero, ErrOutOfRange
	}
	return c.records[i], nil
}

// Add appends a default record and returns its index.
func (c *Collection[T]) Add() int {
	c.records = append(c.records, c.fresh(c.records))
	c.rev++
	return len(c.records) - 1
}

// Update applies fn to record i in place.
func (c *Collection[T]) Update(i int, fn func(r *T) error) error {
	if i < 0 || i >= len(c.records) {
		return ErrOutOfRange
	}
	if err := fn(&c.records[i]); err != nil {
		return err
	}
	c.rev++
	return nil
}

// Get formats field name of record i.
func (c *Collection[T]) Get(i int, name string) (string, error) {
	f, err := lookupField(c.fields, name)
	if err != nil {
		return "", err
	}
	if i < 0 || i >= len(c.records) {
		return "", ErrOutOfRange
	}
	return f.Get(&c.records[i]), nil
}

// Set parses text into field name of record i.
func (c *Collection[T]) Set(i int, name, text string) error {
	f, err := lookupField(c.fields, name)
	if err != nil {
		return err
	}
	return c.Update(i, func(r *T) error { return f.Set(r, text) })
}

// MoveDown swaps record i with its successor. It is refused while a delete
// is pending, since the gate holds an index.
func (c *Collection[T]) MoveDown(i int) error {
	if _, ok := c.gate.Pending(); ok {
		return ErrGatePending
	}
	if i < 0 || i+1 >= len(c.records) {
		return ErrOutOfRange
	}
	c.records[i], c.records[i+1] = c.records[i+1], c.records[i]
	c.rev++
	return nil
}

// RequestDelete arms the confirmation gate for record i.
func (c *Collection[T]) RequestDelete(i int) error {
	if i < 0 || i >= len(c.records) {
		return ErrOutOfRange
	}
	return c.gate.Request(i)
}

// Pending returns the index awaiting delete confirmation.
func (c *Collection[T]) Pending() (int, bool) { return c.gate.Pending() }

// Resolve answers the pending delete. It returns the index and whether the
// record was removed.
func (c *Collection[T]) Resolve(d Decision) (int, bool) {
	i, confirmed, ok := c.gate.Resolve(d)
	if !ok || !confirmed || i >= len(c.records) {
		return i, false
	}
	c.remove(i)
	return i, true
}

func (c *Collection[T]) remove(i int) {
	c.records = append(c.records[:i], c.records[i+1:]...)
	c.rev++
}

// Columns returns the field names in display order.
func (c *Collection[T]) Columns() []string {
	out := make([]string, len(c.fields))
	for i, f := range c.fields {
		out[i] = f.Name
	}
	return out
}

// Row formats every field of record i.
func (c *Collection[T]) Row(i int) []string {
	out := make([]string, len(c.fields))
	for j, f := range c.fields {
		out[j] = f.Get(&c.records[i])
	}
	return out
}

// Table is the view of a flat collection that front-ends drive.
type Table interface {
	Len() int
	Columns() []string
	Row(i int) []string
	Add() int
	Set(i int, field, text string) error
	MoveDown(i int) error
	RequestDelete(i int) error
	Pending() (int, bool)
	Resolve(d Decision) (int, bool)
	Revision() uint64
}

var _ Table = (*Collection[model.Item])(nil)
