package model

// VariantsAt returns the variant list owned by the node at path. The path is
// relative to the tile: an empty path addresses the tile's own variants,
// {2} the variants of the tile's third variant, and so on.
func (t *Tile) VariantsAt(path []int) (*[]Variant, bool) {
	list := &t.Variants
	for _, i := range path {
		if i < 0 || i >= len(*list) {
			return nil, false
		}
		list = &(*list)[i].Variants
	}
	return list, true
}

// VariantAt returns the variant a non-empty path addresses.
func (t *Tile) VariantAt(path []int) (*Variant, bool) {
	if len(path) == 0 {
		return nil, false
	}
	list, ok := t.VariantsAt(path[:len(path)-1])
	if !ok {
		return nil, false
	}
	i := path[len(path)-1]
	if i < 0 || i >= len(*list) {
		return nil, false
	}
	return &(*list)[i], true
}

// Clone returns a deep copy of the tile.
func (t Tile) Clone() Tile {
	t.Variants = cloneVariants(t.Variants)
	return t
}

// Clone returns a deep copy of the variant.
func (v Variant) Clone() Variant {
	v.Variants = cloneVariants(v.Variants)
	return v
}

func cloneVariants(vs []Variant) []Variant {
	if vs == nil {
		return nil
	}
	out := make([]Variant, len(vs))
	for i, v := range vs {
		out[i] = v.Clone()
	}
	return out
}

// WalkVariants visits every variant depth-first. path is relative to the
// tile and is only valid during the call.
func (t *Tile) WalkVariants(fn func(path []int, v *Variant)) {
	var walk func(path []int, vs []Variant)
	walk = func(path []int, vs []Variant) {
		for i := range vs {
			p := append(path, i)
			fn(p, &vs[i])
			walk(p, vs[i].Variants)
		}
	}
	walk(make([]int, 0, 8), t.Variants)
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	out := &Set{
		Globals:  append([]Global(nil), s.Globals...),
		Header:   append([]HeaderEntry(nil), s.Header...),
		Items:    append([]Item(nil), s.Items...),
		NPCs:     append([]NPC(nil), s.NPCs...),
		Prefixes: append([]Prefix(nil), s.Prefixes...),
		Walls:    append([]Wall(nil), s.Walls...),
	}
	if s.Tiles != nil {
		out.Tiles = make([]Tile, len(s.Tiles))
		for i, t := range s.Tiles {
			out.Tiles[i] = t.Clone()
		}
	}
	return out
}
