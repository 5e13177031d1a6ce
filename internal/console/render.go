package console

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/martinhoracek/TerraFirma/internal/editor"
	"github.com/martinhoracek/TerraFirma/internal/model"
)

var (
	header = lipgloss.NewStyle().Bold(true)
	cell   = lipgloss.NewStyle().PaddingRight(1)
	border = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(border).
		BorderHeader(true).
		BorderRow(false).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// swatch prefixes a color value with a block painted in that color.
func swatch(c string) string {
	if _, _, _, ok := model.ParseColor(c); !ok || c == "" {
		return c
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render("██") + " " + c
}

// blank shows the empty string as a dash so wildcards stay visible.
func blank(s string) string {
	if s == "" {
		return dim.Render("-")
	}
	return s
}

func renderRecords(tbl editor.Table) string {
	cols := tbl.Columns()
	t := newTable(append([]string{"#"}, cols...)...)
	for i := range tbl.Len() {
		row := tbl.Row(i)
		out := make([]string, 0, len(row)+1)
		out = append(out, strconv.Itoa(i))
		for j, v := range row {
			if cols[j] == "color" {
				v = swatch(v)
			}
			out = append(out, blank(v))
		}
		t.Row(out...)
	}
	return t.Render() + "\n"
}

func renderTiles(tiles []model.Tile) string {
	t := newTable("#", "id", "name", "color", "flags", "w", "h", "var")
	for i, tile := range tiles {
		color, _ := tile.Color.Value()
		t.Row(
			strconv.Itoa(i),
			strconv.Itoa(int(tile.ID)),
			blank(model.FormatLabel(tile.Label)),
			blank(swatch(color)),
			tile.Flags.String(),
			strconv.Itoa(int(tile.W)),
			strconv.Itoa(int(tile.H)),
			strconv.Itoa(len(tile.Variants)),
		)
	}
	return t.Render() + "\n"
}

func renderVariants(vs []model.Variant) string {
	t := newTable("#", "x", "y", "name", "color", "w", "h", "toppad", "var")
	for i, v := range vs {
		color, _ := v.Color.Value()
		t.Row(
			strconv.Itoa(i),
			blank(model.FormatBound(v.X)),
			blank(model.FormatBound(v.Y)),
			blank(model.FormatLabel(v.Label)),
			blank(swatch(color)),
			strconv.Itoa(int(v.W)),
			strconv.Itoa(int(v.H)),
			strconv.Itoa(int(v.TopPad)),
			strconv.Itoa(len(v.Variants)),
		)
	}
	return t.Render() + "\n"
}

// renderFields shows one record vertically.
func renderFields(cols, row []string) string {
	t := newTable("field", "value")
	for i, c := range cols {
		v := row[i]
		if c == "color" {
			v = swatch(v)
		}
		t.Row(c, blank(v))
	}
	return t.Render() + "\n"
}

func renderHelp() string {
	t := newTable("command", "")
	for _, name := range order {
		cmd := commands[name]
		if cmd.summary == "" {
			continue
		}
		t.Row(cmd.usage, cmd.summary)
	}
	var b strings.Builder
	b.WriteString(t.Render())
	b.WriteString("\nWhile a delete is pending, an empty line confirms and esc declines.\n")
	return b.String()
}
