package linter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/choice"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

func paths(diags []Diagnostic) []string {
	out := make([]string, len(diags))
	for i, d := range diags {
		out[i] = d.File + " " + d.Path
	}
	return out
}

func TestLint_Clean(t *testing.T) {
	tile := model.NewTile()
	tile.Variants = []model.Variant{model.NewVariant()}
	set := &model.Set{
		Globals: []model.Global{{ID: "sky", Color: "#84aaf8"}},
		Header:  []model.HeaderEntry{{Name: "version", Type: "i32"}},
		Items:   []model.Item{{ID: -50}, {ID: 9000}},
		NPCs:    []model.NPC{{ID: -70}, {ID: 1000, Head: 300, Banner: 500}},
		Tiles:   []model.Tile{tile},
		Walls:   []model.Wall{{ID: 1, Color: "#343434", Large: 2}},
	}
	assert.Empty(t, Lint(set))
}

func TestLint_DuplicateIDs(t *testing.T) {
	set := &model.Set{
		Items: []model.Item{{ID: -3}, {ID: 4}, {ID: -3}},
		Walls: []model.Wall{{ID: 2, Color: "#000000"}, {ID: 2, Color: "#000000"}},
	}
	diags := Lint(set)
	require.Len(t, diags, 2)
	assert.Equal(t, Diagnostic{File: "items.json", Path: "$[2].id", Message: "duplicate id -3"}, diags[0])
	assert.Equal(t, "walls.json: $[1].id: duplicate id 2", diags[1].String())
}

func TestLint_Ranges(t *testing.T) {
	tile := model.NewTile()
	tile.ID = 5001
	tile.SkipY = 5
	tile.Color = choice.Some("red")
	deep := model.NewVariant()
	deep.W = 60
	deep.TopPad = -33
	mid := model.NewVariant()
	mid.Variants = []model.Variant{model.NewVariant(), deep}
	tile.Variants = []model.Variant{mid}

	set := &model.Set{
		Header: []model.HeaderEntry{{Name: "a", Type: "u128", Min: 501}, {Name: "a", Type: "b"}},
		NPCs:   []model.NPC{{ID: 1, Head: 301}},
		Tiles:  []model.Tile{tile},
	}
	assert.Equal(t, []string{
		"header.json $[0].type",
		"header.json $[0].min",
		"header.json $[1].name",
		"npcs.json $[0].head",
		"tiles.json $[0].id",
		"tiles.json $[0].color",
		"tiles.json $[0].skipy",
		"tiles.json $[0].var[0].var[1].w",
		"tiles.json $[0].var[0].var[1].toppad",
	}, paths(Lint(set)))
}

func TestLintCollection(t *testing.T) {
	set := &model.Set{Globals: []model.Global{{ID: "x", Color: "#12345"}, {ID: "x", Color: "#123456"}}}
	diags := LintCollection(set, api.Globals)
	assert.Equal(t, []string{"globals.json $[0].color", "globals.json $[1].id"}, paths(diags))
	assert.Empty(t, LintCollection(set, api.Items))
}
