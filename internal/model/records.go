// Package model holds the in-memory records of the definition files.
package model

import "strings"

// DefaultDimension is the tile cell width and height used when a record
// does not set one.
const DefaultDimension = 18

// TileFlags packs the semantic facets of a tile. The bit assignment matches
// the integers stored in tiles.json.
type TileFlags uint16

const (
	TileSolid TileFlags = 1 << iota
	TileTransparent
	TileDirt
	TileStone
	TileGrass
	TilePile
	TileFlip
	TileBrick
	TileMoss
	TileMerge
	TileLarge
)

var tileFlagNames = [...]string{
	"solid", "transparent", "dirt", "stone", "grass", "pile",
	"flip", "brick", "moss", "merge", "large",
}

// TileFlagNames lists the flag names in bit order.
func TileFlagNames() []string {
	return tileFlagNames[:]
}

// ParseTileFlag looks a flag up by name, case-insensitively.
func ParseTileFlag(name string) (TileFlags, bool) {
	for i, n := range tileFlagNames {
		if strings.EqualFold(n, name) {
			return 1 << i, true
		}
	}
	return 0, false
}

// Has reports whether every bit of x is set.
func (f TileFlags) Has(x TileFlags) bool { return f&x == x }

// With returns f with x set or cleared.
func (f TileFlags) With(x TileFlags, on bool) TileFlags {
	if on {
		return f | x
	}
	return f &^ x
}

func (f TileFlags) String() string {
	var names []string
	for i, n := range tileFlagNames {
		if f&(1<<i) != 0 {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, "|")
}

type Global struct {
	ID    string
	Color string
}

// HeaderTypes are the field types a world header entry may declare.
var HeaderTypes = []string{"b", "s", "u8", "i16", "i32", "i64", "f32", "f64"}

// HeaderEntry describes one field of the world file header. Size holds the
// array length: a fixed count (LabelRef slot, stored as "num") or the name
// of an earlier field (LabelName slot, stored as "relnum").
type HeaderEntry struct {
	Name string
	Type string
	Size Label
	Min  int32
}

type Item struct {
	ID   int32
	Name string
}

type NPC struct {
	ID     int32
	Name   string
	Head   int32
	Banner int32
}

type Prefix struct {
	ID   int32
	Name string
}

type Wall struct {
	ID    int32
	Label Label
	Color string
	Blend int32
	Large int32
}

// Tile is a top-level tile definition. Variants form an owned tree.
type Tile struct {
	ID       int32
	Label    Label
	Color    Color
	Flags    TileFlags
	Merge    string
	Blend    string
	SkipY    uint32
	TopPad   int32
	W        uint32
	H        uint32
	Variants []Variant
}

// Variant overrides a tile's appearance for cells matching its X and Y
// predicates. Variants nest without a depth limit.
type Variant struct {
	X        Bound
	Y        Bound
	Label    Label
	Color    Color
	TopPad   int32
	W        uint32
	H        uint32
	Variants []Variant
}

// NewTile returns a default-valued tile.
func NewTile() Tile {
	return Tile{W: DefaultDimension, H: DefaultDimension}
}

// NewVariant returns a default-valued variant.
func NewVariant() Variant {
	return Variant{W: DefaultDimension, H: DefaultDimension}
}

// Set bundles every collection of a data directory.
type Set struct {
	Globals  []Global
	Header   []HeaderEntry
	Items    []Item
	NPCs     []NPC
	Prefixes []Prefix
	Tiles    []Tile
	Walls    []Wall
}
