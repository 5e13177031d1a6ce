package model

import (
	"strconv"
	"strings"

	"github.com/martinhoracek/TerraFirma/internal/choice"
)

// Label is a reference to another game entity or a display name, never both.
// A reference is kept as canonical decimal text so one union type covers
// both alternatives.
type Label = choice.Of[string]

const (
	LabelRef  choice.Slot = 1
	LabelName choice.Slot = 2
)

// Bound is a coordinate predicate: an exact value, a lower bound or an upper
// bound. The empty Bound matches any coordinate.
type Bound = choice.Of[int32]

const (
	BoundExact choice.Slot = 1
	BoundMin   choice.Slot = 2
	BoundMax   choice.Slot = 3
)

// Ref returns a new reference label.
func Ref(id int32) Label {
	return choice.New(LabelRef, strconv.FormatInt(int64(id), 10))
}

// Name returns a new name label. An empty name yields the empty label.
func Name(s string) Label {
	if s == "" {
		return Label{}
	}
	return choice.New(LabelName, s)
}

// RefOf returns the referenced id when l holds a reference.
func RefOf(l Label) (int32, bool) {
	s, ok := l.Get(LabelRef)
	if !ok {
		return 0, false
	}
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// NameOf returns the name when l holds one.
func NameOf(l Label) (string, bool) {
	return l.Get(LabelName)
}

// ParseLabel maps the single text input of a name-or-reference field onto
// the union: integers become references, anything else a name, empty text
// clears both.
func ParseLabel(text string) Label {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return Ref(int32(n))
	}
	return Name(text)
}

// FormatLabel is the inverse of ParseLabel.
func FormatLabel(l Label) string {
	v, _ := l.Value()
	return v
}

// ParseBound maps coordinate text onto a Bound: "<n" is an upper bound, ">n"
// a lower bound and anything else an exact value. Text that does not parse
// as a number clears the predicate.
func ParseBound(text string) Bound {
	slot := BoundExact
	switch {
	case strings.HasPrefix(text, "<"):
		slot, text = BoundMax, text[1:]
	case strings.HasPrefix(text, ">"):
		slot, text = BoundMin, text[1:]
	}
	n, err := strconv.ParseInt(text, 10, 32)
	if err != nil {
		return Bound{}
	}
	return choice.New(slot, int32(n))
}

// FormatBound is the inverse of ParseBound. The wildcard formats as "".
func FormatBound(b Bound) string {
	v, _ := b.Value()
	switch b.Slot() {
	case BoundExact:
		return strconv.FormatInt(int64(v), 10)
	case BoundMin:
		return ">" + strconv.FormatInt(int64(v), 10)
	case BoundMax:
		return "<" + strconv.FormatInt(int64(v), 10)
	default:
		return ""
	}
}

// Color is an optional "#rrggbb" string.
type Color = choice.Of[string]

// ParseColor reads a hex color. A leading '#' is optional.
func ParseColor(s string) (r, g, b uint8, ok bool) {
	n, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(n >> 16), uint8(n >> 8), uint8(n), true
}

// FormatColor renders r, g, b as "#rrggbb".
func FormatColor(r, g, b uint8) string {
	const hex = "0123456789abcdef"
	out := []byte{'#', 0, 0, 0, 0, 0, 0}
	for i, c := range [3]uint8{r, g, b} {
		out[1+2*i] = hex[c>>4]
		out[2+2*i] = hex[c&0xf]
	}
	return string(out)
}

// NormalizeColor canonicalizes color text the way the color picker does:
// unreadable input becomes black.
func NormalizeColor(s string) string {
	r, g, b, _ := ParseColor(s)
	return FormatColor(r, g, b)
}

// ParseOptionalColor clears the color for "", "-" and "none"; any other text
// is normalized.
func ParseOptionalColor(s string) Color {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "-", "none":
		return Color{}
	}
	return choice.Some(NormalizeColor(strings.TrimSpace(s)))
}
