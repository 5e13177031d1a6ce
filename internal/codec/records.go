package codec

import (
	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

func decodeGlobal(o object) model.Global {
	return model.Global{
		ID:    o.str("id", true),
		Color: o.str("color", true),
	}
}

func encodeGlobal(g model.Global) api.Global {
	return api.Global{ID: g.ID, Color: g.Color}
}

func decodeHeader(o object) model.HeaderEntry {
	return model.HeaderEntry{
		Name: o.str("name", true),
		Type: o.str("type", true),
		Size: o.label("num", "relnum"),
		Min:  o.int32("min", false),
	}
}

func encodeHeader(h model.HeaderEntry) api.HeaderEntry {
	num, relnum := labelPtrs(h.Size)
	return api.HeaderEntry{
		Name:   h.Name,
		Type:   h.Type,
		Num:    num,
		Relnum: relnum,
		Min:    h.Min,
	}
}

func decodeItem(o object) model.Item {
	return model.Item{ID: o.int32("id", true), Name: o.str("name", true)}
}

func encodeItem(it model.Item) api.Item {
	return api.Item{ID: it.ID, Name: it.Name}
}

func decodeNPC(o object) model.NPC {
	return model.NPC{
		ID:     o.int32("id", true),
		Name:   o.str("name", true),
		Head:   o.int32("head", false),
		Banner: o.int32("banner", false),
	}
}

func encodeNPC(n model.NPC) api.NPC {
	return api.NPC{ID: n.ID, Name: n.Name, Head: n.Head, Banner: n.Banner}
}

func decodePrefix(o object) model.Prefix {
	return model.Prefix{ID: o.int32("id", true), Name: o.str("name", true)}
}

func encodePrefix(p model.Prefix) api.Prefix {
	return api.Prefix{ID: p.ID, Name: p.Name}
}

func decodeWall(o object) model.Wall {
	return model.Wall{
		ID:    o.int32("id", true),
		Label: o.label("ref", "name"),
		Color: o.str("color", true),
		Blend: o.int32("blend", false),
		Large: o.int32("large", false),
	}
}

func encodeWall(w model.Wall) api.Wall {
	ref, name := labelPtrs(w.Label)
	return api.Wall{
		ID:    w.ID,
		Ref:   ref,
		Name:  name,
		Color: w.Color,
		Blend: w.Blend,
		Large: w.Large,
	}
}

func decodeTile(o object) model.Tile {
	t := model.Tile{
		ID:     o.int32("id", true),
		Label:  o.label("ref", "name"),
		Color:  o.color("color"),
		Flags:  model.TileFlags(o.uint16("flags")),
		Merge:  o.str("merge", false),
		Blend:  o.str("blend", false),
		SkipY:  o.uint32("skipy", 0),
		TopPad: o.int32("toppad", false),
		W:      o.uint32("w", model.DefaultDimension),
		H:      o.uint32("h", model.DefaultDimension),
	}
	t.Variants = decodeVariants(o)
	return t
}

func decodeVariants(o object) []model.Variant {
	var out []model.Variant
	o.list("var", func(el object) {
		out = append(out, decodeVariant(el))
	})
	return out
}

func decodeVariant(o object) model.Variant {
	v := model.Variant{
		X:      o.bound("x", "minx", "maxx"),
		Y:      o.bound("y", "miny", "maxy"),
		Label:  o.label("ref", "name"),
		Color:  o.color("color"),
		TopPad: o.int32("toppad", false),
		W:      o.uint32("w", model.DefaultDimension),
		H:      o.uint32("h", model.DefaultDimension),
	}
	v.Variants = decodeVariants(o)
	return v
}

func encodeTile(t model.Tile) api.Tile {
	ref, name := labelPtrs(t.Label)
	return api.Tile{
		ID:     t.ID,
		Ref:    ref,
		Name:   name,
		Color:  t.Color.Ptr(1),
		Flags:  uint16(t.Flags),
		Merge:  t.Merge,
		Blend:  t.Blend,
		SkipY:  t.SkipY,
		TopPad: t.TopPad,
		W:      dimension(t.W),
		H:      dimension(t.H),
		Var:    encodeVariants(t.Variants),
	}
}

func encodeVariants(vs []model.Variant) []api.TileVariant {
	if len(vs) == 0 {
		return nil
	}
	out := make([]api.TileVariant, len(vs))
	for i, v := range vs {
		out[i] = encodeVariant(v)
	}
	return out
}

func encodeVariant(v model.Variant) api.TileVariant {
	ref, name := labelPtrs(v.Label)
	return api.TileVariant{
		X:      v.X.Ptr(model.BoundExact),
		MinX:   v.X.Ptr(model.BoundMin),
		MaxX:   v.X.Ptr(model.BoundMax),
		Y:      v.Y.Ptr(model.BoundExact),
		MinY:   v.Y.Ptr(model.BoundMin),
		MaxY:   v.Y.Ptr(model.BoundMax),
		Ref:    ref,
		Name:   name,
		Color:  v.Color.Ptr(1),
		TopPad: v.TopPad,
		W:      dimension(v.W),
		H:      dimension(v.H),
		Var:    encodeVariants(v.Variants),
	}
}

func labelPtrs(l model.Label) (*int32, *string) {
	if ref, ok := model.RefOf(l); ok {
		return &ref, nil
	}
	return nil, l.Ptr(model.LabelName)
}

// dimension suppresses the default cell size.
func dimension(d uint32) *uint32 {
	if d == model.DefaultDimension {
		return nil
	}
	return &d
}
