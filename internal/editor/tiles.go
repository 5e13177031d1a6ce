package editor

import (
	"errors"
	"slices"

	"github.com/martinhoracek/TerraFirma/internal/model"
)

// ErrNotApplicable is returned when a tile-only edit targets a variant.
var ErrNotApplicable = errors.New("field does not apply to the open node")

// deleteTarget names the node a pending delete removes: child index of the
// node at parent. A nil parent means the tile list itself.
type deleteTarget struct {
	parent []int
	index  int
}

// TileEditor edits the tile list and the variant tree under each tile.
// Variants are addressed by index path only; no pointer into the tree
// outlives a single call.
type TileEditor struct {
	tiles *Collection[model.Tile]
	nav   Navigator
	gate  Gate[deleteTarget]
}

func NewTileEditor() *TileEditor {
	return &TileEditor{
		tiles: NewCollection(TileFields, func([]model.Tile) model.Tile { return model.NewTile() }),
	}
}

// Replace swaps in a new tile list, closing any open node and pending delete.
func (e *TileEditor) Replace(tiles []model.Tile) {
	e.tiles.Replace(tiles)
	e.nav.Close()
	e.gate = Gate[deleteTarget]{}
}

// Records returns the tile list. Callers must not modify it.
func (e *TileEditor) Records() []model.Tile { return e.tiles.Records() }

func (e *TileEditor) Len() int { return e.tiles.Len() }

func (e *TileEditor) Revision() uint64 { return e.tiles.Revision() }

// Add appends a default tile and returns its index.
func (e *TileEditor) Add() int { return e.tiles.Add() }

// ChildCount implements Tree. Path element 0 selects a tile, the rest
// select variants.
func (e *TileEditor) ChildCount(path []int) (int, bool) {
	recs := e.tiles.records
	if len(path) == 0 {
		return len(recs), true
	}
	if path[0] < 0 || path[0] >= len(recs) {
		return 0, false
	}
	list, ok := recs[path[0]].VariantsAt(path[1:])
	if !ok {
		return 0, false
	}
	return len(*list), true
}

// Path returns the open edit path; nil when closed.
func (e *TileEditor) Path() []int {
	e.nav.Reconcile(e)
	return e.nav.Path()
}

// Closed reports whether no tile is open.
func (e *TileEditor) Closed() bool {
	e.nav.Reconcile(e)
	return e.nav.Closed()
}

// Open starts editing tile i.
func (e *TileEditor) Open(i int) error { return e.nav.OpenRoot(e, i) }

// Descend opens variant j of the open node.
func (e *TileEditor) Descend(j int) error {
	e.nav.Reconcile(e)
	return e.nav.Descend(e, j)
}

// Ascend returns to the parent node, closing the session above a tile.
func (e *TileEditor) Ascend() {
	e.nav.Reconcile(e)
	e.nav.Ascend()
}

// Close ends the edit session.
func (e *TileEditor) Close() { e.nav.Close() }

// Tile returns a copy of the open tile.
func (e *TileEditor) Tile() (model.Tile, error) {
	path := e.Path()
	if len(path) == 0 {
		return model.Tile{}, ErrClosed
	}
	return e.tiles.records[path[0]].Clone(), nil
}

// Variant returns a copy of the open variant. ok is false when the open
// node is a tile.
func (e *TileEditor) Variant() (v model.Variant, ok bool) {
	path := e.Path()
	if len(path) < 2 {
		return model.Variant{}, false
	}
	p, _ := e.tiles.records[path[0]].VariantAt(path[1:])
	return p.Clone(), true
}

// Children returns copies of the variants of the open node.
func (e *TileEditor) Children() ([]model.Variant, error) {
	list, err := e.children()
	if err != nil {
		return nil, err
	}
	out := make([]model.Variant, len(*list))
	for i, v := range *list {
		out[i] = v.Clone()
	}
	return out, nil
}

func (e *TileEditor) children() (*[]model.Variant, error) {
	path := e.Path()
	if len(path) == 0 {
		return nil, ErrClosed
	}
	list, _ := e.tiles.records[path[0]].VariantsAt(path[1:])
	return list, nil
}

// Get formats a field of the open node.
func (e *TileEditor) Get(field string) (string, error) {
	path := e.Path()
	switch {
	case len(path) == 0:
		return "", ErrClosed
	case len(path) == 1:
		f, err := lookupField(TileFields, field)
		if err != nil {
			return "", err
		}
		return f.Get(&e.tiles.records[path[0]]), nil
	default:
		f, err := lookupField(VariantFields, field)
		if err != nil {
			return "", err
		}
		v, _ := e.tiles.records[path[0]].VariantAt(path[1:])
		return f.Get(v), nil
	}
}

// Set parses text into a field of the open node.
func (e *TileEditor) Set(field, text string) error {
	path := e.Path()
	switch {
	case len(path) == 0:
		return ErrClosed
	case len(path) == 1:
		return e.tiles.Set(path[0], field, text)
	default:
		f, err := lookupField(VariantFields, field)
		if err != nil {
			return err
		}
		return e.tiles.Update(path[0], func(t *model.Tile) error {
			v, _ := t.VariantAt(path[1:])
			return f.Set(v, text)
		})
	}
}

// SetFlag turns a flag of the open tile on or off.
func (e *TileEditor) SetFlag(flag model.TileFlags, on bool) error {
	path := e.Path()
	switch {
	case len(path) == 0:
		return ErrClosed
	case len(path) > 1:
		return ErrNotApplicable
	}
	return e.tiles.Update(path[0], func(t *model.Tile) error {
		t.Flags = t.Flags.With(flag, on)
		return nil
	})
}

// AddVariant appends a default variant to the open node and returns its
// index.
func (e *TileEditor) AddVariant() (int, error) {
	path := e.Path()
	if len(path) == 0 {
		return 0, ErrClosed
	}
	var idx int
	err := e.tiles.Update(path[0], func(t *model.Tile) error {
		list, _ := t.VariantsAt(path[1:])
		*list = append(*list, model.NewVariant())
		idx = len(*list) - 1
		return nil
	})
	return idx, err
}

// MoveDown swaps child i of the open node with its successor, or tile i
// when no tile is open. The open path follows the moved node. Reordering is
// refused while a delete is pending.
func (e *TileEditor) MoveDown(i int) error {
	if _, ok := e.gate.Pending(); ok {
		return ErrGatePending
	}
	parent := e.Path()
	if len(parent) == 0 {
		if err := e.tiles.MoveDown(i); err != nil {
			return err
		}
		e.nav.Swapped(nil, i)
		return nil
	}
	err := e.tiles.Update(parent[0], func(t *model.Tile) error {
		list, _ := t.VariantsAt(parent[1:])
		if i < 0 || i+1 >= len(*list) {
			return ErrOutOfRange
		}
		(*list)[i], (*list)[i+1] = (*list)[i+1], (*list)[i]
		return nil
	})
	if err != nil {
		return err
	}
	e.nav.Swapped(parent, i)
	return nil
}

// RequestDelete arms the gate for child i of the open node, or for tile i
// when no tile is open.
func (e *TileEditor) RequestDelete(i int) error {
	parent := e.Path()
	n, _ := e.ChildCount(parent)
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	return e.gate.Request(deleteTarget{parent: parent, index: i})
}

// PendingDelete returns the full path of the node awaiting delete
// confirmation.
func (e *TileEditor) PendingDelete() ([]int, bool) {
	t, ok := e.gate.Pending()
	if !ok {
		return nil, false
	}
	return append(slices.Clone(t.parent), t.index), true
}

// Resolve answers the pending delete and reports whether a node was
// removed. The open path is repaired afterwards: a path through the removed
// node ascends to its parent and later siblings shift down.
func (e *TileEditor) Resolve(d Decision) bool {
	t, confirmed, ok := e.gate.Resolve(d)
	if !ok || !confirmed {
		return false
	}
	if len(t.parent) == 0 {
		if t.index >= len(e.tiles.records) {
			return false
		}
		e.tiles.remove(t.index)
	} else {
		if n, ok := e.ChildCount(t.parent); !ok || t.index >= n {
			return false
		}
		_ = e.tiles.Update(t.parent[0], func(tile *model.Tile) error {
			list, _ := tile.VariantsAt(t.parent[1:])
			*list = slices.Delete(*list, t.index, t.index+1)
			if len(*list) == 0 {
				*list = nil
			}
			return nil
		})
	}
	e.nav.Removed(t.parent, t.index)
	e.nav.Reconcile(e)
	return true
}
