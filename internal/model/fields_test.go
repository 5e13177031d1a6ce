package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBound(t *testing.T) {
	tests := []struct {
		text string
		slot int
		want int32
	}{
		{"<45", 3, 45},
		{">3", 2, 3},
		{"7", 1, 7},
		{"-2", 1, -2},
		{"<-4", 3, -4},
		{"abc", 0, 0},
		{"", 0, 0},
		{"<", 0, 0},
		{">x", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			b := ParseBound(tt.text)
			assert.EqualValues(t, tt.slot, b.Slot())
			if tt.slot != 0 {
				v, _ := b.Value()
				assert.Equal(t, tt.want, v)
			}
		})
	}
}

func TestParseBoundClearsOtherAlternatives(t *testing.T) {
	b := ParseBound("<45")
	assert.Nil(t, b.Ptr(BoundExact))
	assert.Nil(t, b.Ptr(BoundMin))
	assert.Equal(t, int32(45), *b.Ptr(BoundMax))

	b = ParseBound("7")
	assert.Equal(t, int32(7), *b.Ptr(BoundExact))
	assert.Nil(t, b.Ptr(BoundMin))
	assert.Nil(t, b.Ptr(BoundMax))

	b = ParseBound("abc")
	assert.Nil(t, b.Ptr(BoundExact))
	assert.Nil(t, b.Ptr(BoundMin))
	assert.Nil(t, b.Ptr(BoundMax))
}

func TestFormatBoundInvertsParse(t *testing.T) {
	for _, text := range []string{"7", ">7", "<7", "", "-3", "<-3"} {
		assert.Equal(t, text, FormatBound(ParseBound(text)), text)
	}
}

func TestParseLabel(t *testing.T) {
	l := ParseLabel("42")
	ref, ok := RefOf(l)
	assert.True(t, ok)
	assert.Equal(t, int32(42), ref)
	_, ok = NameOf(l)
	assert.False(t, ok, "a reference clears the name")

	l = ParseLabel("Dirt Block")
	name, ok := NameOf(l)
	assert.True(t, ok)
	assert.Equal(t, "Dirt Block", name)
	_, ok = RefOf(l)
	assert.False(t, ok, "a name clears the reference")

	assert.True(t, ParseLabel("").IsZero())
	assert.Equal(t, "42", FormatLabel(ParseLabel("+42")))
}

func TestColors(t *testing.T) {
	r, g, b, ok := ParseColor("#1a2B3c")
	assert.True(t, ok)
	assert.Equal(t, [3]uint8{0x1a, 0x2b, 0x3c}, [3]uint8{r, g, b})

	assert.Equal(t, "#1a2b3c", NormalizeColor("1A2B3C"))
	assert.Equal(t, "#000000", NormalizeColor("garbage"))

	assert.True(t, ParseOptionalColor("none").IsZero())
	assert.True(t, ParseOptionalColor("").IsZero())
	c, ok := ParseOptionalColor("#FF0000").Value()
	assert.True(t, ok)
	assert.Equal(t, "#ff0000", c)
}

func TestTileFlags(t *testing.T) {
	f := TileSolid | TileMoss
	assert.Equal(t, TileFlags(0x101), f)
	assert.True(t, f.Has(TileSolid))
	assert.False(t, f.Has(TileLarge))
	assert.Equal(t, "solid|moss", f.String())

	f = f.With(TileLarge, true).With(TileSolid, false)
	assert.Equal(t, TileFlags(0x500), f)

	large, ok := ParseTileFlag("Large")
	assert.True(t, ok)
	assert.Equal(t, TileFlags(0x400), large)
	_, ok = ParseTileFlag("sticky")
	assert.False(t, ok)
	assert.Len(t, TileFlagNames(), 11)
}
