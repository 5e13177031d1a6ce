package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/martinhoracek/TerraFirma/internal/console"
	"github.com/martinhoracek/TerraFirma/internal/store"
)

func newModel(t *testing.T) *Model {
	t.Helper()
	fs := memfs.New()
	files := map[string]string{
		"globals.json":  `[]`,
		"header.json":   `[]`,
		"items.json":    `[]`,
		"npcs.json":     `[]`,
		"prefixes.json": `[]`,
		"tiles.json":    `[{"id":3,"name":"Stone","var":[{"x":1},{"x":2}]}]`,
		"walls.json":    `[]`,
	}
	for name, data := range files {
		require.NoError(t, util.WriteFile(fs, name, []byte(data), 0o644))
	}
	return New(console.Options{
		Dir:  "data",
		Open: func(string) (*store.Store, error) { return store.New(fs), nil },
	}, "load")
}

func typeLine(m *Model, s string) tea.Cmd {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModel_StartupLoads(t *testing.T) {
	m := newModel(t)
	assert.Contains(t, strings.Join(m.Lines(), "\n"), "loaded data: 1 tiles")
	assert.Contains(t, m.View(), "tiles> ")
}

func TestModel_TypingAndBackspace(t *testing.T) {
	m := newModel(t)
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("lisx")})
	m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	assert.Equal(t, "list", m.Input())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Empty(t, m.Input())
	assert.Contains(t, strings.Join(m.Lines(), "\n"), "Stone")
}

func TestModel_EnterConfirmsEscDeclines(t *testing.T) {
	m := newModel(t)
	ws := m.Console().Workspace()
	typeLine(m, "open 0")
	typeLine(m, "del 0")
	_, ok := m.Console().Pending()
	require.True(t, ok)
	assert.Contains(t, m.View(), "? [Y/n]")

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	_, ok = m.Console().Pending()
	assert.False(t, ok)
	kids, _ := ws.Tiles.Children()
	assert.Len(t, kids, 2)

	typeLine(m, "del 0")
	typeLine(m, "")
	kids, _ = ws.Tiles.Children()
	assert.Len(t, kids, 1)
}

func TestModel_Quit(t *testing.T) {
	m := newModel(t)
	cmd := typeLine(m, "quit")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	_, cmd = newModel(t).Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
}

func TestModel_WindowSize(t *testing.T) {
	m := newModel(t)
	m.Update(tea.WindowSizeMsg{Width: 60, Height: 10})
	assert.LessOrEqual(t, strings.Count(m.View(), "\n"), 10)
}
