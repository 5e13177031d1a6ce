package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/editor"
	"github.com/martinhoracek/TerraFirma/internal/linter"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

type command struct {
	usage   string
	summary string
	run     func(c *Console, args []string, line string) error
}

// order is the listing order of help.
var order = []string{
	"tab", "list", "show", "add", "del", "yes", "no", "open", "var", "up",
	"set", "flag", "down", "load", "save", "lint", "help", "quit",
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"tab":  {"tab <name>", "switch collection (" + collectionNames() + ")", (*Console).cmdTab},
		"list": {"list", "list records, or the variants of the open tile node", (*Console).cmdList},
		"show": {"show [i]", "show the open tile node, or record i", (*Console).cmdShow},
		"add":  {"add", "append a record, or a variant to the open tile node", (*Console).cmdAdd},
		"del":  {"del <i>", "delete record or variant i after confirmation", (*Console).cmdDel},
		"yes":  {"yes", "confirm the pending delete (also an empty line)", (*Console).cmdAnswer},
		"no":   {"no", "decline the pending delete (also esc)", (*Console).cmdAnswer},
		"esc":  {"esc", "", (*Console).cmdAnswer},
		"open": {"open <i>", "edit tile i", (*Console).cmdOpen},
		"var":  {"var <j>", "descend into variant j of the open node", (*Console).cmdVar},
		"up":   {"up", "return to the parent node", (*Console).cmdUp},
		"set":  {"set [i] <field> <text>", "set a field of the open tile node, or of record i", (*Console).cmdSet},
		"flag": {"flag <name> on|off", "toggle a flag of the open tile (" + strings.Join(model.TileFlagNames(), ", ") + ")", (*Console).cmdFlag},
		"down": {"down <i>", "move record or variant i below its successor", (*Console).cmdDown},
		"load": {"load [dir]", "load every collection from a directory", (*Console).cmdLoad},
		"save": {"save [dir]", "save every collection to a directory", (*Console).cmdSave},
		"lint": {"lint", "check the current collection", (*Console).cmdLint},
		"help": {"help", "show this list", (*Console).cmdHelp},
		"quit": {"quit", "leave the editor", (*Console).cmdQuit},
	}
}

func collectionNames() string {
	names := make([]string, len(api.Collections))
	for i, c := range api.Collections {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}

var errUsage = errors.New("wrong arguments")

func usage(name string) error {
	return fmt.Errorf("%w; usage: %s", errUsage, commands[name].usage)
}

func index(name string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, usage(name)
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, usage(name)
	}
	return i, nil
}

func (c *Console) table() editor.Table {
	tbl, _ := c.ws.Table(c.tab)
	return tbl
}

func (c *Console) requireTiles(name string) error {
	if c.tab != api.Tiles {
		return fmt.Errorf("%s only applies to tiles; type tab tiles", name)
	}
	return nil
}

func (c *Console) cmdTab(args []string, _ string) error {
	if len(args) != 1 {
		return usage("tab")
	}
	col, err := api.ParseCollection(strings.ToLower(args[0]))
	if err != nil {
		return err
	}
	c.tab = col
	return nil
}

func (c *Console) cmdList(_ []string, _ string) error {
	if c.tab != api.Tiles {
		c.printf("%s", renderRecords(c.table()))
		return nil
	}
	if c.ws.Tiles.Closed() {
		c.printf("%s", renderTiles(c.ws.Tiles.Records()))
		return nil
	}
	kids, err := c.ws.Tiles.Children()
	if err != nil {
		return err
	}
	c.printf("%s", renderVariants(kids))
	return nil
}

func (c *Console) cmdShow(args []string, _ string) error {
	if c.tab == api.Tiles && len(args) == 0 {
		return c.showNode()
	}
	i, err := index("show", args)
	if err != nil {
		return err
	}
	if c.tab != api.Tiles {
		tbl := c.table()
		if i < 0 || i >= tbl.Len() {
			return editor.ErrOutOfRange
		}
		c.printf("%s", renderFields(tbl.Columns(), tbl.Row(i)))
		return nil
	}
	recs := c.ws.Tiles.Records()
	if i < 0 || i >= len(recs) {
		return editor.ErrOutOfRange
	}
	c.showTile(recs[i].Clone())
	return nil
}

func (c *Console) showNode() error {
	e := c.ws.Tiles
	if v, ok := e.Variant(); ok {
		cols, row := recordFields(editor.VariantFields, &v)
		c.printf("%s", renderFields(cols, row))
		c.printf("variants: %d\n", len(v.Variants))
		return nil
	}
	t, err := e.Tile()
	if err != nil {
		return err
	}
	c.showTile(t)
	return nil
}

func (c *Console) showTile(t model.Tile) {
	cols, row := recordFields(editor.TileFields, &t)
	cols = append(cols, "flags")
	row = append(row, t.Flags.String())
	c.printf("%s", renderFields(cols, row))
	c.printf("variants: %d\n", len(t.Variants))
}

func recordFields[T any](fields []editor.Field[T], r *T) (cols, row []string) {
	for _, f := range fields {
		cols = append(cols, f.Name)
		row = append(row, f.Get(r))
	}
	return cols, row
}

func (c *Console) cmdAdd(args []string, _ string) error {
	if len(args) != 0 {
		return usage("add")
	}
	if c.tab != api.Tiles {
		c.printf("added #%d\n", c.table().Add())
		return nil
	}
	if c.ws.Tiles.Closed() {
		c.printf("added tile #%d\n", c.ws.Tiles.Add())
		return nil
	}
	j, err := c.ws.Tiles.AddVariant()
	if err != nil {
		return err
	}
	c.printf("added variant #%d\n", j)
	return nil
}

func (c *Console) cmdDel(args []string, _ string) error {
	i, err := index("del", args)
	if err != nil {
		return err
	}
	if c.tab == api.Tiles {
		return c.ws.Tiles.RequestDelete(i)
	}
	return c.table().RequestDelete(i)
}

func (c *Console) cmdAnswer(_ []string, _ string) error {
	c.printf("nothing to confirm\n")
	return nil
}

func (c *Console) cmdOpen(args []string, _ string) error {
	if err := c.requireTiles("open"); err != nil {
		return err
	}
	i, err := index("open", args)
	if err != nil {
		return err
	}
	return c.ws.Tiles.Open(i)
}

func (c *Console) cmdVar(args []string, _ string) error {
	if err := c.requireTiles("var"); err != nil {
		return err
	}
	j, err := index("var", args)
	if err != nil {
		return err
	}
	return c.ws.Tiles.Descend(j)
}

func (c *Console) cmdUp(_ []string, _ string) error {
	if err := c.requireTiles("up"); err != nil {
		return err
	}
	c.ws.Tiles.Ascend()
	return nil
}

// cmdSet keeps the rest of the line verbatim after the field name so that
// names may contain spaces.
func (c *Console) cmdSet(args []string, line string) error {
	rest := func(skip int) string {
		s := strings.TrimSpace(line)
		for range skip {
			s = strings.TrimSpace(s)
			if k := strings.IndexAny(s, " \t"); k >= 0 {
				s = s[k:]
			} else {
				s = ""
			}
		}
		return strings.TrimSpace(s)
	}

	if c.tab == api.Tiles {
		if len(args) < 1 {
			return usage("set")
		}
		return c.ws.Tiles.Set(args[0], rest(2))
	}
	if len(args) < 2 {
		return usage("set")
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		return usage("set")
	}
	return c.table().Set(i, args[1], rest(3))
}

func (c *Console) cmdFlag(args []string, _ string) error {
	if err := c.requireTiles("flag"); err != nil {
		return err
	}
	if len(args) != 2 {
		return usage("flag")
	}
	f, ok := model.ParseTileFlag(args[0])
	if !ok {
		return fmt.Errorf("unknown flag %q", args[0])
	}
	var on bool
	switch strings.ToLower(args[1]) {
	case "on", "true", "1":
		on = true
	case "off", "false", "0":
	default:
		return usage("flag")
	}
	return c.ws.Tiles.SetFlag(f, on)
}

func (c *Console) cmdDown(args []string, _ string) error {
	i, err := index("down", args)
	if err != nil {
		return err
	}
	if c.tab == api.Tiles {
		return c.ws.Tiles.MoveDown(i)
	}
	return c.table().MoveDown(i)
}

func (c *Console) dirArg(name string, args []string) (string, error) {
	switch len(args) {
	case 0:
		if c.dir == "" {
			return "", fmt.Errorf("no directory; usage: %s", commands[name].usage)
		}
		return c.dir, nil
	case 1:
		return args[0], nil
	default:
		return "", usage(name)
	}
}

// cmdLoad replaces the workspace only when every file decoded.
func (c *Console) cmdLoad(args []string, _ string) error {
	dir, err := c.dirArg("load", args)
	if err != nil {
		return err
	}
	st, err := c.open(dir)
	if err != nil {
		return err
	}
	set, err := st.Load()
	if err != nil {
		return err
	}
	c.ws.Load(set)
	c.dir = dir
	c.printf("loaded %s: %d tiles, %d items, %d walls\n", dir, len(set.Tiles), len(set.Items), len(set.Walls))
	return nil
}

func (c *Console) cmdSave(args []string, _ string) error {
	dir, err := c.dirArg("save", args)
	if err != nil {
		return err
	}
	st, err := c.open(dir)
	if err != nil {
		return err
	}
	if err := st.Save(c.ws.Snapshot()); err != nil {
		return err
	}
	c.ws.MarkSaved()
	c.dir = dir
	c.printf("saved %s\n", dir)
	return nil
}

func (c *Console) cmdLint(_ []string, _ string) error {
	diags := linter.LintCollection(c.ws.Snapshot(), c.tab)
	for _, d := range diags {
		c.printf("%s\n", d)
	}
	if len(diags) == 0 {
		c.printf("%s: ok\n", c.tab.File())
	}
	return nil
}

func (c *Console) cmdHelp(_ []string, _ string) error {
	c.printf("%s", renderHelp())
	return nil
}

// cmdQuit asks again once when there are unsaved changes.
func (c *Console) cmdQuit(_ []string, _ string) error {
	if c.ws.Dirty() && !c.quitArmed {
		c.quitArmed = true
		c.printf("unsaved changes; type quit again to discard them\n")
		return nil
	}
	c.done = true
	return nil
}
