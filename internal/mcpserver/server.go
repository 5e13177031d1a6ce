// Package mcpserver exposes a loaded data directory to MCP clients as a set
// of read-only tools.
package mcpserver

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/index"
	"github.com/martinhoracek/TerraFirma/internal/linter"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/martinhoracek/TerraFirma/internal/query"
)

// Server answers tool calls against one loaded Set.
type Server struct {
	set *model.Set
	dir string
}

// New returns a server over set. dir is only reported to clients.
func New(set *model.Set, dir string) *Server {
	return &Server{set: set, dir: dir}
}

// MCP builds the protocol server with every tool registered.
func (s *Server) MCP(version string) *server.MCPServer {
	m := server.NewMCPServer("tfedit", version, server.WithToolCapabilities(false))

	names := make([]string, len(api.Collections))
	for i, c := range api.Collections {
		names[i] = string(c)
	}

	m.AddTool(mcp.NewTool("list_collections",
		mcp.WithDescription("List the definition files of the data directory with their record counts."),
	), s.listCollections)

	m.AddTool(mcp.NewTool("query",
		mcp.WithDescription("Evaluate a JSONPath expression against one definition file, as it would be saved."),
		mcp.WithString("collection", mcp.Required(), mcp.Enum(names...), mcp.Description("Definition file to query")),
		mcp.WithString("path", mcp.Required(), mcp.Description("JSONPath expression, e.g. $[?(@.id == 5)].var")),
	), s.query)

	m.AddTool(mcp.NewTool("tile_tree",
		mcp.WithDescription("Show a tile and its nested variant tree."),
		mcp.WithNumber("id", mcp.Required(), mcp.Description("Tile id")),
	), s.tileTree)

	m.AddTool(mcp.NewTool("lint",
		mcp.WithDescription("Check value ranges and duplicate ids. Without a collection every file is checked."),
		mcp.WithString("collection", mcp.Enum(names...), mcp.Description("Definition file to check")),
	), s.lint)

	return m
}

// ServeStdio serves MCP over stdin and stdout until the client disconnects.
func (s *Server) ServeStdio(version string) error {
	return server.ServeStdio(s.MCP(version))
}

func (s *Server) listCollections(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "data directory: %s\n", s.dir)
	for _, c := range api.Collections {
		fmt.Fprintf(&b, "%s\t%d\n", c.File(), s.count(c))
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) count(c api.Collection) int {
	switch c {
	case api.Globals:
		return len(s.set.Globals)
	case api.Header:
		return len(s.set.Header)
	case api.Items:
		return len(s.set.Items)
	case api.NPCs:
		return len(s.set.NPCs)
	case api.Prefixes:
		return len(s.set.Prefixes)
	case api.Tiles:
		return len(s.set.Tiles)
	case api.Walls:
		return len(s.set.Walls)
	}
	return 0
}

func (s *Server) query(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("collection")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	c, err := api.ParseCollection(name)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	path, err := req.RequireString("path")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	results, err := query.Query(s.set, c, path)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(results) == 0 {
		return mcp.NewToolResultText("no matches"), nil
	}
	return mcp.NewToolResultText(query.Format(results, 0)), nil
}

func (s *Server) tileTree(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireInt("id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	for i := range s.set.Tiles {
		if int(s.set.Tiles[i].ID) == id {
			return mcp.NewToolResultText(TileTree(&s.set.Tiles[i])), nil
		}
	}
	return mcp.NewToolResultError(fmt.Sprintf("no tile with id %d", id)), nil
}

func (s *Server) lint(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var diags []linter.Diagnostic
	if name := req.GetString("collection", ""); name != "" {
		c, err := api.ParseCollection(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		diags = linter.LintCollection(s.set, c)
	} else {
		diags = linter.Lint(s.set)
	}
	if len(diags) == 0 {
		return mcp.NewToolResultText("no findings"), nil
	}
	var b strings.Builder
	for _, d := range diags {
		b.WriteString(d.String())
		b.WriteByte('\n')
	}
	return mcp.NewToolResultText(b.String()), nil
}

// TileTree renders a tile and its variants as an indented outline, one node
// per line, each variant prefixed with its index path.
func TileTree(t *model.Tile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "tile %d", t.ID)
	writeLabel(&b, t.Label)
	fmt.Fprintf(&b, " flags=%s", t.Flags)
	if c, ok := t.Color.Value(); ok {
		fmt.Fprintf(&b, " color=%s", c)
	}
	writeSize(&b, t.W, t.H)
	b.WriteByte('\n')

	t.WalkVariants(func(path []int, v *model.Variant) {
		b.WriteString(strings.Repeat("  ", len(path)))
		fmt.Fprintf(&b, "[%s]", index.PathString(path))
		if x := model.FormatBound(v.X); x != "" {
			b.WriteString(" x" + boundOp(x))
		}
		if y := model.FormatBound(v.Y); y != "" {
			b.WriteString(" y" + boundOp(y))
		}
		writeLabel(&b, v.Label)
		if c, ok := v.Color.Value(); ok {
			fmt.Fprintf(&b, " color=%s", c)
		}
		if v.TopPad != 0 {
			fmt.Fprintf(&b, " toppad=%d", v.TopPad)
		}
		writeSize(&b, v.W, v.H)
		b.WriteByte('\n')
	})
	return b.String()
}

// boundOp turns "7", ">7", "<7" into "=7", ">7", "<7".
func boundOp(s string) string {
	if s[0] == '<' || s[0] == '>' {
		return s
	}
	return "=" + s
}

func writeLabel(b *strings.Builder, l model.Label) {
	if id, ok := model.RefOf(l); ok {
		b.WriteString(" ref=" + strconv.Itoa(int(id)))
	} else if name, ok := model.NameOf(l); ok {
		b.WriteString(" name=" + strconv.Quote(name))
	}
}

func writeSize(b *strings.Builder, w, h uint32) {
	if w != model.DefaultDimension || h != model.DefaultDimension {
		fmt.Fprintf(b, " size=%dx%d", w, h)
	}
}
