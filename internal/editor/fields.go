package editor

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/martinhoracek/TerraFirma/internal/model"
)

// Field is one editable column of a record type. Set parses the text a
// user typed into the field.
type Field[T any] struct {
	Name string
	Get  func(r *T) string
	Set  func(r *T, text string) error
}

// FieldError reports text that a numeric or enumerated field rejected.
type FieldError struct {
	Field string
	Text  string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("field %s: invalid value %q: %v", e.Field, e.Text, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func lookupField[T any](fields []Field[T], name string) (Field[T], error) {
	for _, f := range fields {
		if strings.EqualFold(f.Name, name) {
			return f, nil
		}
	}
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return Field[T]{}, fmt.Errorf("unknown field %q (one of %s)", name, strings.Join(names, ", "))
}

func parseInt(field, text string, lo, hi int64) (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, &FieldError{Field: field, Text: text, Err: err}
	}
	if n < lo || n > hi {
		return 0, &FieldError{Field: field, Text: text, Err: fmt.Errorf("out of range [%d, %d]", lo, hi)}
	}
	return n, nil
}

// intField edits an int32 within [lo, hi], the ranges of the original
// editor's drag widgets.
func intField[T any](name string, lo, hi int64, ptr func(*T) *int32) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return strconv.FormatInt(int64(*ptr(r)), 10) },
		Set: func(r *T, text string) error {
			n, err := parseInt(name, text, lo, hi)
			if err != nil {
				return err
			}
			*ptr(r) = int32(n)
			return nil
		},
	}
}

func uintField[T any](name string, lo, hi int64, ptr func(*T) *uint32) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return strconv.FormatUint(uint64(*ptr(r)), 10) },
		Set: func(r *T, text string) error {
			n, err := parseInt(name, text, lo, hi)
			if err != nil {
				return err
			}
			*ptr(r) = uint32(n)
			return nil
		},
	}
}

func textField[T any](name string, ptr func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return *ptr(r) },
		Set: func(r *T, text string) error {
			*ptr(r) = text
			return nil
		},
	}
}

// labelField edits a name-or-reference union. It never fails.
func labelField[T any](name string, ptr func(*T) *model.Label) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return model.FormatLabel(*ptr(r)) },
		Set: func(r *T, text string) error {
			*ptr(r) = model.ParseLabel(text)
			return nil
		},
	}
}

// boundField edits a coordinate predicate. Unparseable text clears it.
func boundField[T any](name string, ptr func(*T) *model.Bound) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return model.FormatBound(*ptr(r)) },
		Set: func(r *T, text string) error {
			*ptr(r) = model.ParseBound(strings.TrimSpace(text))
			return nil
		},
	}
}

// colorField edits a mandatory color; input is normalized like a picker.
func colorField[T any](name string, ptr func(*T) *string) Field[T] {
	return Field[T]{
		Name: name,
		Get:  func(r *T) string { return *ptr(r) },
		Set: func(r *T, text string) error {
			*ptr(r) = model.NormalizeColor(strings.TrimSpace(text))
			return nil
		},
	}
}

func optColorField[T any](name string, ptr func(*T) *model.Color) Field[T] {
	return Field[T]{
		Name: name,
		Get: func(r *T) string {
			c, _ := ptr(r).Value()
			return c
		},
		Set: func(r *T, text string) error {
			*ptr(r) = model.ParseOptionalColor(text)
			return nil
		},
	}
}

var GlobalFields = []Field[model.Global]{
	textField("id", func(g *model.Global) *string { return &g.ID }),
	colorField("color", func(g *model.Global) *string { return &g.Color }),
}

var HeaderFields = []Field[model.HeaderEntry]{
	textField("name", func(h *model.HeaderEntry) *string { return &h.Name }),
	{
		Name: "type",
		Get:  func(h *model.HeaderEntry) string { return h.Type },
		Set: func(h *model.HeaderEntry, text string) error {
			text = strings.TrimSpace(text)
			if !slices.Contains(model.HeaderTypes, text) {
				return &FieldError{Field: "type", Text: text,
					Err: fmt.Errorf("want one of %s", strings.Join(model.HeaderTypes, ", "))}
			}
			h.Type = text
			return nil
		},
	},
	labelField("array", func(h *model.HeaderEntry) *model.Label { return &h.Size }),
	intField("min", 0, 500, func(h *model.HeaderEntry) *int32 { return &h.Min }),
}

var ItemFields = []Field[model.Item]{
	intField("id", -50, 9000, func(it *model.Item) *int32 { return &it.ID }),
	textField("name", func(it *model.Item) *string { return &it.Name }),
}

var NPCFields = []Field[model.NPC]{
	intField("id", -70, 1000, func(n *model.NPC) *int32 { return &n.ID }),
	textField("name", func(n *model.NPC) *string { return &n.Name }),
	intField("head", 0, 300, func(n *model.NPC) *int32 { return &n.Head }),
	intField("banner", 0, 500, func(n *model.NPC) *int32 { return &n.Banner }),
}

var PrefixFields = []Field[model.Prefix]{
	intField("id", 0, 200, func(p *model.Prefix) *int32 { return &p.ID }),
	textField("name", func(p *model.Prefix) *string { return &p.Name }),
}

var WallFields = []Field[model.Wall]{
	intField("id", 0, 500, func(w *model.Wall) *int32 { return &w.ID }),
	labelField("name", func(w *model.Wall) *model.Label { return &w.Label }),
	colorField("color", func(w *model.Wall) *string { return &w.Color }),
	intField("blend", 0, 500, func(w *model.Wall) *int32 { return &w.Blend }),
	intField("large", 0, 2, func(w *model.Wall) *int32 { return &w.Large }),
}

var TileFields = []Field[model.Tile]{
	intField("id", 0, 5000, func(t *model.Tile) *int32 { return &t.ID }),
	labelField("name", func(t *model.Tile) *model.Label { return &t.Label }),
	optColorField("color", func(t *model.Tile) *model.Color { return &t.Color }),
	textField("merge", func(t *model.Tile) *string { return &t.Merge }),
	textField("blend", func(t *model.Tile) *string { return &t.Blend }),
	uintField("w", 18, 56, func(t *model.Tile) *uint32 { return &t.W }),
	uintField("h", 18, 56, func(t *model.Tile) *uint32 { return &t.H }),
	uintField("skipy", 0, 4, func(t *model.Tile) *uint32 { return &t.SkipY }),
	intField("toppad", -32, 32, func(t *model.Tile) *int32 { return &t.TopPad }),
}

var VariantFields = []Field[model.Variant]{
	boundField("x", func(v *model.Variant) *model.Bound { return &v.X }),
	boundField("y", func(v *model.Variant) *model.Bound { return &v.Y }),
	labelField("name", func(v *model.Variant) *model.Label { return &v.Label }),
	optColorField("color", func(v *model.Variant) *model.Color { return &v.Color }),
	uintField("w", 18, 56, func(v *model.Variant) *uint32 { return &v.W }),
	uintField("h", 18, 56, func(v *model.Variant) *uint32 { return &v.H }),
	intField("toppad", -32, 32, func(v *model.Variant) *int32 { return &v.TopPad }),
}
