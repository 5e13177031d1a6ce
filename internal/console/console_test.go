package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/martinhoracek/TerraFirma/internal/store"
)

var fixture = map[string]string{
	"globals.json":  `[{"id":"sky","color":"#84aaf8"}]`,
	"header.json":   `[{"name":"version","type":"i32"}]`,
	"items.json":    `[{"id":1,"name":"Iron Pickaxe"},{"id":2,"name":"Torch"}]`,
	"npcs.json":     `[{"id":17,"name":"Merchant"}]`,
	"prefixes.json": `[]`,
	"tiles.json":    `[{"id":0,"name":"Dirt","flags":5},{"id":5,"ref":9,"var":[{"maxx":45,"name":"top"},{"x":3}]}]`,
	"walls.json":    `[{"id":1,"name":"Stone Wall","color":"#343434"}]`,
}

// newConsole returns a console whose directories all live in one memfs
// keyed by directory name.
func newConsole(t *testing.T) (*Console, *bytes.Buffer, map[string]billy.Filesystem) {
	t.Helper()
	dirs := map[string]billy.Filesystem{}
	src := memfs.New()
	for name, data := range fixture {
		require.NoError(t, util.WriteFile(src, name, []byte(data), 0o644))
	}
	dirs["data"] = src
	dirs["empty"] = memfs.New()

	var out bytes.Buffer
	c := New(&out, Options{
		Dir: "data",
		Open: func(dir string) (*store.Store, error) {
			fs, ok := dirs[dir]
			if !ok {
				fs = memfs.New()
				dirs[dir] = fs
			}
			return store.New(fs), nil
		},
	})
	return c, &out, dirs
}

func run(c *Console, lines ...string) {
	for _, l := range lines {
		c.Exec(l)
	}
}

func TestConsole_LoadAndList(t *testing.T) {
	c, out, _ := newConsole(t)
	run(c, "load", "list")
	assert.Contains(t, out.String(), "loaded data: 2 tiles, 2 items, 1 walls")
	assert.Contains(t, out.String(), "Dirt")
	assert.Contains(t, out.String(), "solid|dirt")

	out.Reset()
	run(c, "tab items", "list")
	assert.Contains(t, out.String(), "Iron Pickaxe")
	assert.Equal(t, api.Items, c.Tab())
}

func TestConsole_LoadFailureKeepsState(t *testing.T) {
	c, out, dirs := newConsole(t)
	run(c, "load")
	require.NoError(t, util.WriteFile(dirs["data"], "walls.json", []byte(`[{"id":"x"}]`), 0o644))

	run(c, "load")
	assert.Contains(t, out.String(), "error: walls.json: $[0].id")
	assert.Len(t, c.Workspace().Tiles.Records(), 2, "previous state is kept")

	out.Reset()
	run(c, "load empty")
	assert.Contains(t, out.String(), "error: read globals.json")
	assert.Equal(t, "data", c.Dir())
}

func TestConsole_TileTreeSession(t *testing.T) {
	c, out, _ := newConsole(t)
	run(c, "load", "open 1", "var 0")
	assert.Equal(t, "tiles[1 0]> ", c.Prompt())

	run(c, "set x 7", "set name Moss Patch", "show")
	v, ok := c.Workspace().Tiles.Variant()
	require.True(t, ok)
	n, ok := v.X.Get(model.BoundExact)
	assert.True(t, ok)
	assert.Equal(t, int32(7), n)
	name, _ := model.NameOf(v.Label)
	assert.Equal(t, "Moss Patch", name)
	assert.Contains(t, out.String(), "Moss Patch")

	run(c, "set x abc")
	v, _ = c.Workspace().Tiles.Variant()
	assert.True(t, v.X.IsZero())

	run(c, "add", "var 0", "up", "up")
	assert.Equal(t, []int{1}, c.Workspace().Tiles.Path())
	assert.True(t, strings.HasPrefix(c.Prompt(), "*tiles[1]"))

	run(c, "flag moss on", "flag solid on", "flag solid off")
	tile, err := c.Workspace().Tiles.Tile()
	require.NoError(t, err)
	assert.Equal(t, model.TileMoss, tile.Flags)

	run(c, "up")
	assert.True(t, c.Workspace().Tiles.Closed())
}

func TestConsole_DeleteGate(t *testing.T) {
	c, out, _ := newConsole(t)
	run(c, "load", "open 1", "del 0")

	p, ok := c.Pending()
	require.True(t, ok)
	assert.Equal(t, "delete tiles[1 0]", p)
	assert.Equal(t, "delete tiles[1 0]? [Y/n] ", c.Prompt())

	run(c, "del 1")
	assert.Contains(t, out.String(), "answer yes or no")

	run(c, "esc")
	kids, _ := c.Workspace().Tiles.Children()
	assert.Len(t, kids, 2, "esc declines")

	run(c, "del 0", "")
	kids, _ = c.Workspace().Tiles.Children()
	require.Len(t, kids, 1, "empty line confirms")
	assert.Equal(t, "3", model.FormatBound(kids[0].X))

	out.Reset()
	run(c, "yes")
	assert.Contains(t, out.String(), "nothing to confirm")
}

func TestConsole_FlatCollections(t *testing.T) {
	c, out, _ := newConsole(t)
	run(c, "load", "tab npcs", "add", "set 1 name Guide", "set 1 head 301")
	assert.Contains(t, out.String(), "error: field head")

	npcs := c.Workspace().NPCs.Records()
	require.Len(t, npcs, 2)
	assert.Equal(t, model.NPC{ID: 18, Name: "Guide"}, npcs[1])

	run(c, "tab header", "add", "set 1 type u8", "down 0")
	hdr := c.Workspace().Header.Records()
	assert.Equal(t, "u8", hdr[0].Type)
	assert.Equal(t, "version", hdr[1].Name)

	run(c, "tab items", "del 1", "no", "del 0", "yes")
	items := c.Workspace().Items.Records()
	require.Len(t, items, 1)
	assert.Equal(t, "Torch", items[0].Name)

	out.Reset()
	run(c, "open 0")
	assert.Contains(t, out.String(), "only applies to tiles")
}

func TestConsole_SaveRoundTrip(t *testing.T) {
	c, out, dirs := newConsole(t)
	run(c, "load", "tab walls", "set 0 color #ABCDEF", "save out")
	assert.Contains(t, out.String(), "saved out")
	assert.False(t, c.Workspace().Dirty())
	assert.Equal(t, "out", c.Dir())

	got, err := util.ReadFile(dirs["out"], "walls.json")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":1,"name":"Stone Wall","color":"#abcdef"}]`, string(got))

	orig, err := util.ReadFile(dirs["data"], "walls.json")
	require.NoError(t, err)
	assert.Equal(t, fixture["walls.json"], string(orig))
}

func TestConsole_QuitWithUnsavedChanges(t *testing.T) {
	c, out, _ := newConsole(t)
	run(c, "load", "add")
	assert.False(t, c.Exec("quit"))
	assert.Contains(t, out.String(), "unsaved changes")
	assert.True(t, c.Exec("quit"))
}

func TestConsole_Run(t *testing.T) {
	c, out, _ := newConsole(t)
	in := strings.NewReader("load\nhelp\nbogus\nlint\nquit\nlist\n")
	require.NoError(t, c.Run(in))
	assert.True(t, c.Done())
	assert.Contains(t, out.String(), "tiles> ")
	assert.Contains(t, out.String(), "flag <name> on|off")
	assert.Contains(t, out.String(), `unknown command "bogus"`)
	assert.Contains(t, out.String(), "tiles.json: ok")
}
