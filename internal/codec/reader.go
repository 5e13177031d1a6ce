package codec

import (
	"errors"
	"fmt"
	"math"

	"github.com/martinhoracek/TerraFirma/internal/choice"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// object reads typed fields out of one parsed JSON object. The first failure
// is kept in the shared state; later reads return zero values.
type object struct {
	m    map[string]any
	path jp.Expr
	st   *state
}

type state struct {
	err *DecodeError
}

func (st *state) fail(path jp.Expr, err error) {
	if st.err == nil {
		st.err = &DecodeError{Path: path.String(), Err: err}
	}
}

// at returns a copy of path extended by f. jp.Expr methods append in place,
// which would alias sibling paths.
func at(path jp.Expr, f jp.Frag) jp.Expr {
	p := make(jp.Expr, len(path), len(path)+1)
	copy(p, path)
	return append(p, f)
}

// decodeArray parses data as a JSON array of objects and converts each
// element with rec.
func decodeArray[T any](data []byte, rec func(o object) T) ([]T, error) {
	root, err := oj.Parse(data)
	if err != nil {
		return nil, &DecodeError{Path: "$", Err: err}
	}
	arr, ok := root.([]any)
	if !ok {
		return nil, &DecodeError{Path: "$", Err: fmt.Errorf("expected array, got %s", kind(root))}
	}

	st := &state{}
	out := make([]T, 0, len(arr))
	for i, el := range arr {
		o, ok := asObject(el, at(jp.R(), jp.Nth(i)), st)
		if !ok {
			break
		}
		r := rec(o)
		if st.err != nil {
			break
		}
		out = append(out, r)
	}
	if st.err != nil {
		return nil, st.err
	}
	return out, nil
}

func asObject(v any, path jp.Expr, st *state) (object, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		st.fail(path, fmt.Errorf("expected object, got %s", kind(v)))
		return object{}, false
	}
	return object{m: m, path: path, st: st}, true
}

func kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case int64, float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}

var errMissing = errors.New("missing field")

// get returns the raw value of key; null counts as absent.
func (o object) get(key string, required bool) (any, bool) {
	v, ok := o.m[key]
	if !ok || v == nil {
		if required {
			o.st.fail(at(o.path, jp.Child(key)), errMissing)
		}
		return nil, false
	}
	return v, true
}

func (o object) integer(key string, required bool, lo, hi int64) (int64, bool) {
	v, ok := o.get(key, required)
	if !ok {
		return 0, false
	}
	n, ok := v.(int64)
	if !ok {
		o.st.fail(at(o.path, jp.Child(key)), fmt.Errorf("expected integer, got %s", kind(v)))
		return 0, false
	}
	if n < lo || n > hi {
		o.st.fail(at(o.path, jp.Child(key)), fmt.Errorf("%d out of range [%d, %d]", n, lo, hi))
		return 0, false
	}
	return n, true
}

func (o object) int32(key string, required bool) int32 {
	n, _ := o.integer(key, required, math.MinInt32, math.MaxInt32)
	return int32(n)
}

func (o object) optInt32(key string) *int32 {
	n, ok := o.integer(key, false, math.MinInt32, math.MaxInt32)
	if !ok {
		return nil
	}
	v := int32(n)
	return &v
}

func (o object) uint32(key string, def uint32) uint32 {
	n, ok := o.integer(key, false, 0, math.MaxUint32)
	if !ok {
		return def
	}
	return uint32(n)
}

func (o object) uint16(key string) uint16 {
	n, _ := o.integer(key, false, 0, math.MaxUint16)
	return uint16(n)
}

func (o object) optStr(key string) *string {
	v, ok := o.get(key, false)
	if !ok {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		o.st.fail(at(o.path, jp.Child(key)), fmt.Errorf("expected string, got %s", kind(v)))
		return nil
	}
	return &s
}

func (o object) str(key string, required bool) string {
	if required {
		if _, ok := o.get(key, true); !ok {
			return ""
		}
	}
	if s := o.optStr(key); s != nil {
		return *s
	}
	return ""
}

// label reads a mutually exclusive integer/text key pair. When both are
// present the integer wins. An empty name is kept so that it is written back.
func (o object) label(refKey, nameKey string) model.Label {
	ref := o.optInt32(refKey)
	name := o.optStr(nameKey)
	switch {
	case ref != nil:
		return model.Ref(*ref)
	case name != nil:
		return choice.New(model.LabelName, *name)
	default:
		return model.Label{}
	}
}

// bound reads an exact/lower/upper key triple. Precedence follows slot
// order when more than one is present.
func (o object) bound(exact, lower, upper string) model.Bound {
	x := o.optInt32(exact)
	lo := o.optInt32(lower)
	hi := o.optInt32(upper)
	return choice.First(x, lo, hi)
}

func (o object) color(key string) model.Color {
	s := o.optStr(key)
	if s == nil {
		return model.Color{}
	}
	return choice.Some(*s)
}

// list decodes an optional array of objects under key.
func (o object) list(key string, fn func(el object)) {
	v, ok := o.get(key, false)
	if !ok {
		return
	}
	arr, ok := v.([]any)
	if !ok {
		o.st.fail(at(o.path, jp.Child(key)), fmt.Errorf("expected array, got %s", kind(v)))
		return
	}
	base := at(o.path, jp.Child(key))
	for i, raw := range arr {
		el, ok := asObject(raw, at(base, jp.Nth(i)), o.st)
		if !ok {
			return
		}
		fn(el)
		if o.st.err != nil {
			return
		}
	}
}
