// Package codec converts definition files to and from model records.
//
// Decoding parses the file into a generic tree first so that every failure
// can name the JSONPath of the offending value. Encoding goes through the
// wire structs in package api, which omit default-valued keys and the
// alternatives a record did not choose.
package codec

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

// Decode parses the content of collection c and stores it in set. set is
// not modified when decoding fails.
func Decode(c api.Collection, data []byte, set *model.Set) error {
	var err error
	switch c {
	case api.Globals:
		var recs []model.Global
		if recs, err = decodeArray(data, decodeGlobal); err == nil {
			set.Globals = recs
		}
	case api.Header:
		var recs []model.HeaderEntry
		if recs, err = decodeArray(data, decodeHeader); err == nil {
			set.Header = recs
		}
	case api.Items:
		var recs []model.Item
		if recs, err = decodeArray(data, decodeItem); err == nil {
			set.Items = recs
		}
	case api.NPCs:
		var recs []model.NPC
		if recs, err = decodeArray(data, decodeNPC); err == nil {
			set.NPCs = recs
		}
	case api.Prefixes:
		var recs []model.Prefix
		if recs, err = decodeArray(data, decodePrefix); err == nil {
			set.Prefixes = recs
		}
	case api.Tiles:
		var recs []model.Tile
		if recs, err = decodeArray(data, decodeTile); err == nil {
			set.Tiles = recs
		}
	case api.Walls:
		var recs []model.Wall
		if recs, err = decodeArray(data, decodeWall); err == nil {
			set.Walls = recs
		}
	default:
		return fmt.Errorf("unknown collection %q", c)
	}
	if de, ok := err.(*DecodeError); ok {
		de.File = c.File()
		return de
	}
	return err
}

// DecodeTiles parses a tiles.json document.
func DecodeTiles(data []byte) ([]model.Tile, error) {
	var set model.Set
	if err := Decode(api.Tiles, data, &set); err != nil {
		return nil, err
	}
	return set.Tiles, nil
}

// Encode serializes collection c of set. An empty indent produces compact
// output.
func Encode(c api.Collection, set *model.Set, indent string) ([]byte, error) {
	var v any
	switch c {
	case api.Globals:
		v = mapSlice(set.Globals, encodeGlobal)
	case api.Header:
		v = mapSlice(set.Header, encodeHeader)
	case api.Items:
		v = mapSlice(set.Items, encodeItem)
	case api.NPCs:
		v = mapSlice(set.NPCs, encodeNPC)
	case api.Prefixes:
		v = mapSlice(set.Prefixes, encodePrefix)
	case api.Tiles:
		v = mapSlice(set.Tiles, encodeTile)
	case api.Walls:
		v = mapSlice(set.Walls, encodeWall)
	default:
		return nil, &EncodeError{File: c.File(), Err: fmt.Errorf("unknown collection %q", c)}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, &EncodeError{File: c.File(), Err: err}
	}
	return buf.Bytes(), nil
}

// EncodeTiles serializes tiles compactly.
func EncodeTiles(tiles []model.Tile) ([]byte, error) {
	return Encode(api.Tiles, &model.Set{Tiles: tiles}, "")
}

// mapSlice always returns a non-nil slice so that empty collections encode
// as [] rather than null.
func mapSlice[T, W any](in []T, fn func(T) W) []W {
	out := make([]W, len(in))
	for i, r := range in {
		out[i] = fn(r)
	}
	return out
}
