// Package console is a line-oriented front-end over an editor.Workspace.
// Each line is one command; the terminal UI feeds it the same lines.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/editor"
	"github.com/martinhoracek/TerraFirma/internal/store"
)

// Opener returns the store of a data directory.
type Opener func(dir string) (*store.Store, error)

// Options configures a Console.
type Options struct {
	// Dir is the directory load and save use when given no argument.
	Dir  string
	Open Opener
}

// Console owns one workspace and the collection currently shown.
type Console struct {
	ws   *editor.Workspace
	open Opener
	dir  string
	tab  api.Collection
	out  io.Writer

	quitArmed bool
	done      bool
}

// New returns a console writing to out. Nothing is loaded until the first
// load command.
func New(out io.Writer, opts Options) *Console {
	open := opts.Open
	if open == nil {
		open = func(dir string) (*store.Store, error) { return store.OpenDir(dir) }
	}
	return &Console{
		ws:   editor.NewWorkspace(),
		open: open,
		dir:  opts.Dir,
		tab:  api.Tiles,
		out:  out,
	}
}

// Workspace exposes the edited state.
func (c *Console) Workspace() *editor.Workspace { return c.ws }

// Tab is the collection commands apply to.
func (c *Console) Tab() api.Collection { return c.tab }

// Dir is the directory of the last load or save.
func (c *Console) Dir() string { return c.dir }

// Done reports whether quit was accepted.
func (c *Console) Done() bool { return c.done }

// Pending describes the delete awaiting confirmation on the current tab.
func (c *Console) Pending() (string, bool) {
	if c.tab == api.Tiles {
		path, ok := c.ws.Tiles.PendingDelete()
		if !ok {
			return "", false
		}
		return fmt.Sprintf("delete %s%s", c.tab, formatPath(path)), true
	}
	tbl, _ := c.ws.Table(c.tab)
	i, ok := tbl.Pending()
	if !ok {
		return "", false
	}
	return fmt.Sprintf("delete %s #%d", c.tab, i), true
}

// Prompt is shown before each line.
func (c *Console) Prompt() string {
	if p, ok := c.Pending(); ok {
		return p + "? [Y/n] "
	}
	var b strings.Builder
	if c.ws.Dirty() {
		b.WriteString("*")
	}
	b.WriteString(string(c.tab))
	if c.tab == api.Tiles {
		if path := c.ws.Tiles.Path(); len(path) > 0 {
			b.WriteString(formatPath(path))
		}
	}
	b.WriteString("> ")
	return b.String()
}

// Exec runs one command line. It reports whether the console is done.
func (c *Console) Exec(line string) bool {
	fields := strings.Fields(line)
	if _, ok := c.Pending(); ok {
		c.confirm(fields)
		return c.done
	}
	if len(fields) == 0 {
		return c.done
	}

	name, args := strings.ToLower(fields[0]), fields[1:]
	if name != "quit" {
		c.quitArmed = false
	}
	cmd, ok := commands[name]
	if !ok {
		c.printf("unknown command %q; type help\n", name)
		return c.done
	}
	if err := cmd.run(c, args, line); err != nil {
		c.printf("error: %v\n", err)
	}
	return c.done
}

// Run reads commands from in until quit or end of input.
func (c *Console) Run(in io.Reader) error {
	sc := bufio.NewScanner(in)
	for !c.done {
		c.printf("%s", c.Prompt())
		if !sc.Scan() {
			break
		}
		c.Exec(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read commands: %w", err)
	}
	if c.ws.Dirty() {
		log.Printf("Console: exiting with unsaved changes in %s", c.dir)
	}
	return nil
}

// confirm answers the pending delete: an empty line or yes confirms, no or
// esc declines. Anything else repeats the question.
func (c *Console) confirm(fields []string) {
	var d editor.Decision
	switch {
	case len(fields) == 0:
		d = editor.Confirm
	default:
		switch strings.ToLower(fields[0]) {
		case "y", "yes":
			d = editor.Confirm
		case "n", "no", "esc":
			d = editor.Decline
		default:
			c.printf("answer yes or no\n")
			return
		}
	}
	c.Resolve(d)
}

// Resolve answers the pending delete of the current tab.
func (c *Console) Resolve(d editor.Decision) {
	if c.tab == api.Tiles {
		if c.ws.Tiles.Resolve(d) {
			c.printf("deleted\n")
		}
		return
	}
	tbl, _ := c.ws.Table(c.tab)
	if i, removed := tbl.Resolve(d); removed {
		c.printf("deleted #%d\n", i)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func formatPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = fmt.Sprint(p)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
