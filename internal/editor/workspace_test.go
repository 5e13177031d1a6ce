package editor

import (
	"testing"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkspaceLoadClones(t *testing.T) {
	set := &model.Set{
		Items: []model.Item{{ID: 1, Name: "Iron Pickaxe"}},
		Tiles: sampleTiles(),
	}
	ws := NewWorkspace()
	assert.False(t, ws.Loaded())
	ws.Load(set)
	assert.True(t, ws.Loaded())
	assert.False(t, ws.Dirty())

	require.NoError(t, ws.Items.Set(0, "name", "Gold Pickaxe"))
	assert.Equal(t, "Iron Pickaxe", set.Items[0].Name, "the caller's set is not shared")

	snap := ws.Snapshot()
	snap.Tiles[1].Variants[0].Label = model.Name("changed")
	tiles := ws.Tiles.Records()
	assert.Equal(t, "A", mustName(tiles[1].Variants[0].Label))
	assert.Equal(t, "Gold Pickaxe", snap.Items[0].Name)
}

func TestWorkspaceDirty(t *testing.T) {
	ws := NewWorkspace()
	ws.Load(&model.Set{})
	assert.False(t, ws.Dirty())

	ws.Walls.Add()
	assert.True(t, ws.Dirty())
	ws.MarkSaved()
	assert.False(t, ws.Dirty())

	ws.Tiles.Add()
	require.NoError(t, ws.Tiles.Open(0))
	assert.True(t, ws.Dirty())
}

func TestWorkspaceNPCNumbering(t *testing.T) {
	ws := NewWorkspace()
	i := ws.NPCs.Add()
	n, err := ws.NPCs.At(i)
	require.NoError(t, err)
	assert.Equal(t, int32(0), n.ID)

	ws.NPCs.Replace([]model.NPC{{ID: 17, Name: "Guide"}})
	i = ws.NPCs.Add()
	n, _ = ws.NPCs.At(i)
	assert.Equal(t, int32(18), n.ID)
}

func TestWorkspaceGlobalDefaults(t *testing.T) {
	ws := NewWorkspace()
	i := ws.Globals.Add()
	g, _ := ws.Globals.At(i)
	assert.Equal(t, "#000000", g.Color)

	require.NoError(t, ws.Globals.Set(i, "color", "zzz"))
	g, _ = ws.Globals.At(i)
	assert.Equal(t, "#000000", g.Color, "unreadable colors normalize to black")
}

func TestWorkspaceTable(t *testing.T) {
	ws := NewWorkspace()
	for _, c := range api.Collections {
		tbl, ok := ws.Table(c)
		if c == api.Tiles {
			assert.False(t, ok)
			continue
		}
		require.True(t, ok, c)
		assert.NotEmpty(t, tbl.Columns())
	}

	tbl, _ := ws.Table(api.Header)
	i := tbl.Add()
	var fe *FieldError
	assert.ErrorAs(t, tbl.Set(i, "type", "u128"), &fe)
	require.NoError(t, tbl.Set(i, "type", "i32"))
	require.NoError(t, tbl.Set(i, "array", "worldWidth"))
	assert.Equal(t, []string{"", "i32", "worldWidth", "0"}, tbl.Row(i))
}

func TestCollectionMoveDown(t *testing.T) {
	ws := NewWorkspace()
	ws.Header.Replace([]model.HeaderEntry{{Name: "a"}, {Name: "b"}, {Name: "c"}})
	require.NoError(t, ws.Header.MoveDown(0))
	assert.ErrorIs(t, ws.Header.MoveDown(2), ErrOutOfRange)
	var names []string
	for _, h := range ws.Header.Records() {
		names = append(names, h.Name)
	}
	assert.Equal(t, []string{"b", "a", "c"}, names)
}
