package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/codec"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

func loadTiles(t *testing.T) *model.Set {
	t.Helper()
	tiles, err := codec.DecodeTiles([]byte(`[
		{"id":0,"name":"Dirt","flags":5},
		{"id":5,"ref":9,"var":[{"maxx":45,"name":"top"},{"x":3,"var":[{"name":"deep"}]}]}
	]`))
	require.NoError(t, err)
	return &model.Set{Tiles: tiles}
}

func TestQuery(t *testing.T) {
	set := loadTiles(t)

	got, err := Query(set, api.Tiles, "$[*].id")
	require.NoError(t, err)
	assert.Equal(t, []any{int64(0), int64(5)}, got)

	got, err = Query(set, api.Tiles, "$..name")
	require.NoError(t, err)
	assert.ElementsMatch(t, []any{"Dirt", "top", "deep"}, got)

	got, err = Query(set, api.Tiles, "$[?(@.flags == 5)].name")
	require.NoError(t, err)
	assert.Equal(t, []any{"Dirt"}, got)
}

func TestQuery_OmittedDefaults(t *testing.T) {
	got, err := Query(loadTiles(t), api.Tiles, "$[*].w")
	require.NoError(t, err)
	assert.Empty(t, got, "default widths are not encoded")
}

func TestQuery_InvalidSelector(t *testing.T) {
	_, err := Query(loadTiles(t), api.Tiles, "$[")
	assert.ErrorContains(t, err, "invalid jsonpath")
}

func TestFormat(t *testing.T) {
	got, err := Query(loadTiles(t), api.Tiles, "$[1].var[0]")
	require.NoError(t, err)
	assert.Equal(t, "{\"maxx\":45,\"name\":\"top\"}\n", Format(got, 0))
}
