// Package api describes the on-disk shape of the definition files. Every
// file is a JSON array of one of the record types below; optional keys are
// omitted when they hold their default.
package api

import (
	"fmt"

	"github.com/invopop/jsonschema"
)

// Collection names one definition file of a data directory.
type Collection string

const (
	Globals  Collection = "globals"
	Header   Collection = "header"
	Items    Collection = "items"
	NPCs     Collection = "npcs"
	Prefixes Collection = "prefixes"
	Tiles    Collection = "tiles"
	Walls    Collection = "walls"
)

// Collections lists every collection in load order.
var Collections = []Collection{Globals, Header, Items, NPCs, Prefixes, Tiles, Walls}

// File returns the collection's file name inside a data directory.
func (c Collection) File() string { return string(c) + ".json" }

// ParseCollection validates a collection name.
func ParseCollection(name string) (Collection, error) {
	for _, c := range Collections {
		if string(c) == name {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown collection %q", name)
}

// Global is a named map color.
type Global struct {
	ID    string `json:"id"`
	Color string `json:"color"`
}

// HeaderEntry is one field of the world file header. Num and Relnum are
// mutually exclusive.
type HeaderEntry struct {
	Name   string  `json:"name"`
	Type   string  `json:"type" jsonschema:"enum=b,enum=s,enum=u8,enum=i16,enum=i32,enum=i64,enum=f32,enum=f64"`
	Num    *int32  `json:"num,omitempty"`
	Relnum *string `json:"relnum,omitempty"`
	Min    int32   `json:"min,omitempty" jsonschema:"minimum=0,maximum=500"`
}

type Item struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

type NPC struct {
	ID     int32  `json:"id"`
	Name   string `json:"name"`
	Head   int32  `json:"head,omitempty"`
	Banner int32  `json:"banner,omitempty"`
}

type Prefix struct {
	ID   int32  `json:"id"`
	Name string `json:"name"`
}

// Wall is a wall definition. Ref and Name are mutually exclusive.
type Wall struct {
	ID    int32   `json:"id"`
	Ref   *int32  `json:"ref,omitempty"`
	Name  *string `json:"name,omitempty"`
	Color string  `json:"color"`
	Blend int32   `json:"blend,omitempty"`
	Large int32   `json:"large,omitempty" jsonschema:"minimum=0,maximum=2"`
}

// Tile is a tile definition. Ref and Name are mutually exclusive; W and H
// are omitted when they equal 18.
type Tile struct {
	ID     int32         `json:"id"`
	Ref    *int32        `json:"ref,omitempty"`
	Name   *string       `json:"name,omitempty"`
	Color  *string       `json:"color,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	Flags  uint16        `json:"flags,omitempty"`
	Merge  string        `json:"merge,omitempty"`
	Blend  string        `json:"blend,omitempty"`
	SkipY  uint32        `json:"skipy,omitempty"`
	TopPad int32         `json:"toppad,omitempty"`
	W      *uint32       `json:"w,omitempty" jsonschema:"default=18"`
	H      *uint32       `json:"h,omitempty" jsonschema:"default=18"`
	Var    []TileVariant `json:"var,omitempty"`
}

// TileVariant overrides a tile for matching cells. At most one of X, MinX
// and MaxX is present, likewise for Y.
type TileVariant struct {
	X      *int32        `json:"x,omitempty"`
	MinX   *int32        `json:"minx,omitempty"`
	MaxX   *int32        `json:"maxx,omitempty"`
	Y      *int32        `json:"y,omitempty"`
	MinY   *int32        `json:"miny,omitempty"`
	MaxY   *int32        `json:"maxy,omitempty"`
	Ref    *int32        `json:"ref,omitempty"`
	Name   *string       `json:"name,omitempty"`
	Color  *string       `json:"color,omitempty" jsonschema:"pattern=^#[0-9a-fA-F]{6}$"`
	TopPad int32         `json:"toppad,omitempty"`
	W      *uint32       `json:"w,omitempty" jsonschema:"default=18"`
	H      *uint32       `json:"h,omitempty" jsonschema:"default=18"`
	Var    []TileVariant `json:"var,omitempty"`
}

// Schema returns the JSON Schema of a collection file.
func Schema(c Collection) (*jsonschema.Schema, error) {
	var sample any
	switch c {
	case Globals:
		sample = []Global{}
	case Header:
		sample = []HeaderEntry{}
	case Items:
		sample = []Item{}
	case NPCs:
		sample = []NPC{}
	case Prefixes:
		sample = []Prefix{}
	case Tiles:
		sample = []Tile{}
	case Walls:
		sample = []Wall{}
	default:
		return nil, fmt.Errorf("unknown collection %q", c)
	}
	r := &jsonschema.Reflector{Anonymous: true, AllowAdditionalProperties: true}
	s := r.Reflect(sample)
	s.Title = c.File()
	return s, nil
}
