package editor

import (
	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

// Workspace is the editing state of one data directory.
type Workspace struct {
	Globals  *Collection[model.Global]
	Header   *Collection[model.HeaderEntry]
	Items    *Collection[model.Item]
	NPCs     *Collection[model.NPC]
	Prefixes *Collection[model.Prefix]
	Tiles    *TileEditor
	Walls    *Collection[model.Wall]

	loaded bool
	saved  uint64
}

func NewWorkspace() *Workspace {
	return &Workspace{
		Globals:  NewCollection(GlobalFields, func([]model.Global) model.Global { return model.Global{Color: "#000000"} }),
		Header:   NewCollection(HeaderFields, func([]model.HeaderEntry) model.HeaderEntry { return model.HeaderEntry{} }),
		Items:    NewCollection(ItemFields, func([]model.Item) model.Item { return model.Item{} }),
		NPCs:     NewCollection(NPCFields, nextNPC),
		Prefixes: NewCollection(PrefixFields, func([]model.Prefix) model.Prefix { return model.Prefix{} }),
		Tiles:    NewTileEditor(),
		Walls:    NewCollection(WallFields, func([]model.Wall) model.Wall { return model.Wall{} }),
	}
}

// nextNPC numbers a new NPC after the last one.
func nextNPC(records []model.NPC) model.NPC {
	var n model.NPC
	if len(records) > 0 {
		n.ID = records[len(records)-1].ID + 1
	}
	return n
}

// Load replaces every collection with a copy of set. The caller keeps
// ownership of set.
func (w *Workspace) Load(set *model.Set) {
	set = set.Clone()
	w.Globals.Replace(set.Globals)
	w.Header.Replace(set.Header)
	w.Items.Replace(set.Items)
	w.NPCs.Replace(set.NPCs)
	w.Prefixes.Replace(set.Prefixes)
	w.Tiles.Replace(set.Tiles)
	w.Walls.Replace(set.Walls)
	w.loaded = true
	w.saved = w.Revision()
}

// Snapshot returns a copy of every collection.
func (w *Workspace) Snapshot() *model.Set {
	set := &model.Set{
		Globals:  w.Globals.Records(),
		Header:   w.Header.Records(),
		Items:    w.Items.Records(),
		NPCs:     w.NPCs.Records(),
		Prefixes: w.Prefixes.Records(),
		Tiles:    w.Tiles.Records(),
		Walls:    w.Walls.Records(),
	}
	return set.Clone()
}

// Loaded reports whether a directory has been loaded.
func (w *Workspace) Loaded() bool { return w.loaded }

// Revision sums the revisions of every collection.
func (w *Workspace) Revision() uint64 {
	return w.Globals.Revision() + w.Header.Revision() + w.Items.Revision() +
		w.NPCs.Revision() + w.Prefixes.Revision() + w.Tiles.Revision() + w.Walls.Revision()
}

// MarkSaved records the current state as persisted.
func (w *Workspace) MarkSaved() { w.saved = w.Revision() }

// Dirty reports unsaved changes.
func (w *Workspace) Dirty() bool { return w.loaded && w.Revision() != w.saved }

// Table returns the flat editor of collection c. Tiles have no flat editor;
// use the Tiles field.
func (w *Workspace) Table(c api.Collection) (Table, bool) {
	switch c {
	case api.Globals:
		return w.Globals, true
	case api.Header:
		return w.Header, true
	case api.Items:
		return w.Items, true
	case api.NPCs:
		return w.NPCs, true
	case api.Prefixes:
		return w.Prefixes, true
	case api.Walls:
		return w.Walls, true
	default:
		return nil, false
	}
}
