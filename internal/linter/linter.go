// Package linter checks a loaded data directory against the value ranges
// the editor enforces and reports duplicate ids.
package linter

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/RoaringBitmap/roaring"
	"github.com/ohler55/ojg/jp"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

// Diagnostic is one finding, addressed by file and JSONPath.
type Diagnostic struct {
	File    string
	Path    string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s: %s", d.File, d.Path, d.Message)
}

var colorRE = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type linter struct {
	file  string
	diags []Diagnostic
}

func (l *linter) report(path jp.Expr, format string, args ...any) {
	l.diags = append(l.diags, Diagnostic{File: l.file, Path: path.String(), Message: fmt.Sprintf(format, args...)})
}

func (l *linter) span(path jp.Expr, name string, v, lo, hi int64) {
	if v < lo || v > hi {
		l.report(path, "%s %d outside [%d, %d]", name, v, lo, hi)
	}
}

func (l *linter) color(path jp.Expr, c string) {
	if !colorRE.MatchString(c) {
		l.report(path, "color %q is not #rrggbb", c)
	}
}

func (l *linter) optColor(path jp.Expr, c model.Color) {
	if s, ok := c.Value(); ok {
		l.color(path, s)
	}
}

// ids tracks seen ids in a bitmap. Ids may be negative, so they are shifted
// into the uint32 range.
type ids struct {
	seen *roaring.Bitmap
}

func newIDs() ids { return ids{seen: roaring.New()} }

func (s ids) add(id int32) (dup bool) {
	return !s.seen.CheckedAdd(uint32(int64(id) + 1<<31))
}

// el returns the path $[i] extended by key.
func el(i int, keys ...string) jp.Expr {
	x := jp.R().N(i)
	for _, k := range keys {
		x = x.C(k)
	}
	return x
}

// Lint checks every collection of set. Diagnostics are ordered by file, then
// by position in the file.
func Lint(set *model.Set) []Diagnostic {
	var out []Diagnostic
	for _, c := range api.Collections {
		out = append(out, LintCollection(set, c)...)
	}
	return out
}

// LintCollection checks a single collection.
func LintCollection(set *model.Set, c api.Collection) []Diagnostic {
	l := &linter{file: c.File()}
	switch c {
	case api.Globals:
		seen := map[string]bool{}
		for i, g := range set.Globals {
			if seen[g.ID] {
				l.report(el(i, "id"), "duplicate id %q", g.ID)
			}
			seen[g.ID] = true
			l.color(el(i, "color"), g.Color)
		}
	case api.Header:
		seen := map[string]bool{}
		for i, h := range set.Header {
			if seen[h.Name] {
				l.report(el(i, "name"), "duplicate name %q", h.Name)
			}
			seen[h.Name] = true
			if !slices.Contains(model.HeaderTypes, h.Type) {
				l.report(el(i, "type"), "unknown type %q", h.Type)
			}
			l.span(el(i, "min"), "min", int64(h.Min), 0, 500)
		}
	case api.Items:
		s := newIDs()
		for i, it := range set.Items {
			l.id(s, i, it.ID, -50, 9000)
		}
	case api.NPCs:
		s := newIDs()
		for i, n := range set.NPCs {
			l.id(s, i, n.ID, -70, 1000)
			l.span(el(i, "head"), "head", int64(n.Head), 0, 300)
			l.span(el(i, "banner"), "banner", int64(n.Banner), 0, 500)
		}
	case api.Prefixes:
		s := newIDs()
		for i, p := range set.Prefixes {
			l.id(s, i, p.ID, 0, 200)
		}
	case api.Tiles:
		s := newIDs()
		for i := range set.Tiles {
			l.tile(s, i, &set.Tiles[i])
		}
	case api.Walls:
		s := newIDs()
		for i, w := range set.Walls {
			l.id(s, i, w.ID, 0, 500)
			l.color(el(i, "color"), w.Color)
			l.span(el(i, "blend"), "blend", int64(w.Blend), 0, 500)
			l.span(el(i, "large"), "large", int64(w.Large), 0, 2)
		}
	}
	return l.diags
}

func (l *linter) id(s ids, i int, id int32, lo, hi int64) {
	if s.add(id) {
		l.report(el(i, "id"), "duplicate id %d", id)
	}
	l.span(el(i, "id"), "id", int64(id), lo, hi)
}

func (l *linter) size(path jp.Expr, w, h uint32) {
	l.span(at(path, "w"), "w", int64(w), 18, 56)
	l.span(at(path, "h"), "h", int64(h), 18, 56)
}

func (l *linter) tile(s ids, i int, t *model.Tile) {
	l.id(s, i, t.ID, 0, 5000)
	l.optColor(el(i, "color"), t.Color)
	l.size(el(i), t.W, t.H)
	l.span(el(i, "skipy"), "skipy", int64(t.SkipY), 0, 4)
	l.span(el(i, "toppad"), "toppad", int64(t.TopPad), -32, 32)

	t.WalkVariants(func(path []int, v *model.Variant) {
		p := el(i)
		for _, j := range path {
			p = p.C("var").N(j)
		}
		l.optColor(at(p, "color"), v.Color)
		l.size(p, v.W, v.H)
		l.span(at(p, "toppad"), "toppad", int64(v.TopPad), -32, 32)
	})
}

// at copies path before appending key so sibling paths never alias.
func at(path jp.Expr, key string) jp.Expr {
	return append(slices.Clone(path), jp.Child(key))
}
