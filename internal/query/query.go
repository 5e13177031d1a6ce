// Package query evaluates JSONPath expressions against the on-disk form of
// a collection.
package query

import (
	"fmt"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/codec"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

// Query encodes collection c of set and returns every value selector
// matches. Values have the generic shape oj.Parse produces.
func Query(set *model.Set, c api.Collection, selector string) ([]any, error) {
	x, err := jp.ParseString(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid jsonpath '%s': %w", selector, err)
	}
	root, err := Document(set, c)
	if err != nil {
		return nil, err
	}
	return x.Get(root), nil
}

// Document returns collection c in its generic JSON form.
func Document(set *model.Set, c api.Collection) (any, error) {
	data, err := codec.Encode(c, set, "")
	if err != nil {
		return nil, err
	}
	root, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse encoded %s: %w", c.File(), err)
	}
	return root, nil
}

// Format renders query results one JSON value per line.
func Format(results []any, indent int) string {
	var out []byte
	for _, r := range results {
		out = append(out, oj.JSON(r, &oj.Options{Indent: indent, Sort: true})...)
		out = append(out, '\n')
	}
	return string(out)
}
