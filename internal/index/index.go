// Package index exports a data directory into a SQLite database so that the
// definitions can be inspected with plain SQL.
package index

import (
	"database/sql"
	"fmt"
	"log"
	"strconv"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/martinhoracek/TerraFirma/internal/model"
)

const schema = `
DROP TABLE IF EXISTS globals;
DROP TABLE IF EXISTS header;
DROP TABLE IF EXISTS items;
DROP TABLE IF EXISTS npcs;
DROP TABLE IF EXISTS prefixes;
DROP TABLE IF EXISTS tiles;
DROP TABLE IF EXISTS tile_variants;
DROP TABLE IF EXISTS walls;

CREATE TABLE globals (pos INTEGER PRIMARY KEY, id TEXT NOT NULL, color TEXT NOT NULL);
CREATE TABLE header (
	pos INTEGER PRIMARY KEY,
	name TEXT NOT NULL,
	type TEXT NOT NULL,
	num INTEGER,
	relnum TEXT,
	min INTEGER NOT NULL
);
CREATE TABLE items (pos INTEGER PRIMARY KEY, id INTEGER NOT NULL, name TEXT NOT NULL);
CREATE TABLE npcs (
	pos INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	name TEXT NOT NULL,
	head INTEGER NOT NULL,
	banner INTEGER NOT NULL
);
CREATE TABLE prefixes (pos INTEGER PRIMARY KEY, id INTEGER NOT NULL, name TEXT NOT NULL);
CREATE TABLE tiles (
	pos INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	ref INTEGER,
	name TEXT,
	color TEXT,
	flags INTEGER NOT NULL,
	flag_names TEXT NOT NULL,
	merge TEXT NOT NULL,
	blend TEXT NOT NULL,
	skipy INTEGER NOT NULL,
	toppad INTEGER NOT NULL,
	w INTEGER NOT NULL,
	h INTEGER NOT NULL
);
CREATE TABLE tile_variants (
	tile_pos INTEGER NOT NULL,
	tile_id INTEGER NOT NULL,
	path TEXT NOT NULL,
	depth INTEGER NOT NULL,
	x INTEGER, minx INTEGER, maxx INTEGER,
	y INTEGER, miny INTEGER, maxy INTEGER,
	ref INTEGER,
	name TEXT,
	color TEXT,
	toppad INTEGER NOT NULL,
	w INTEGER NOT NULL,
	h INTEGER NOT NULL,
	PRIMARY KEY (tile_pos, path)
);
CREATE TABLE walls (
	pos INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	ref INTEGER,
	name TEXT,
	color TEXT NOT NULL,
	blend INTEGER NOT NULL,
	large INTEGER NOT NULL
);
`

// Export writes every collection of set into the database at dbPath,
// replacing the tables of an earlier export. All rows are written in one
// transaction.
func Export(set *model.Set, dbPath string) error {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open sqlite %s: %w", dbPath, err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Index: close %s: %v", dbPath, err)
		}
	}()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	if err := write(tx, set); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func write(tx *sql.Tx, set *model.Set) error {
	if _, err := tx.Exec(schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	for i, g := range set.Globals {
		if err := exec(tx, "globals", i, g.ID, g.Color); err != nil {
			return err
		}
	}
	for i, h := range set.Header {
		num, relnum := label(h.Size)
		if err := exec(tx, "header", i, h.Name, h.Type, num, relnum, h.Min); err != nil {
			return err
		}
	}
	for i, it := range set.Items {
		if err := exec(tx, "items", i, it.ID, it.Name); err != nil {
			return err
		}
	}
	for i, n := range set.NPCs {
		if err := exec(tx, "npcs", i, n.ID, n.Name, n.Head, n.Banner); err != nil {
			return err
		}
	}
	for i, p := range set.Prefixes {
		if err := exec(tx, "prefixes", i, p.ID, p.Name); err != nil {
			return err
		}
	}
	for i, w := range set.Walls {
		ref, name := label(w.Label)
		if err := exec(tx, "walls", i, w.ID, ref, name, w.Color, w.Blend, w.Large); err != nil {
			return err
		}
	}
	for i := range set.Tiles {
		if err := writeTile(tx, i, &set.Tiles[i]); err != nil {
			return err
		}
	}
	return nil
}

func writeTile(tx *sql.Tx, pos int, t *model.Tile) error {
	ref, name := label(t.Label)
	err := exec(tx, "tiles", pos, t.ID, ref, name, color(t.Color), int64(t.Flags), t.Flags.String(),
		t.Merge, t.Blend, t.SkipY, t.TopPad, t.W, t.H)
	if err != nil {
		return err
	}

	t.WalkVariants(func(path []int, v *model.Variant) {
		if err != nil {
			return
		}
		x, minx, maxx := bound(v.X)
		y, miny, maxy := bound(v.Y)
		vref, vname := label(v.Label)
		err = exec(tx, "tile_variants", pos, t.ID, PathString(path), len(path),
			x, minx, maxx, y, miny, maxy, vref, vname, color(v.Color), v.TopPad, v.W, v.H)
	})
	return err
}

// exec inserts one row; args fill the columns in table order.
func exec(tx *sql.Tx, table string, args ...any) error {
	marks := strings.TrimSuffix(strings.Repeat("?, ", len(args)), ", ")
	if _, err := tx.Exec("INSERT INTO "+table+" VALUES ("+marks+")", args...); err != nil {
		return fmt.Errorf("insert into %s: %w", table, err)
	}
	return nil
}

// PathString formats a variant index path as dot-separated indices.
func PathString(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ".")
}

// label splits a name-or-reference union into nullable columns.
func label(l model.Label) (ref, name any) {
	if id, ok := model.RefOf(l); ok {
		return id, nil
	}
	if s, ok := model.NameOf(l); ok {
		return nil, s
	}
	return nil, nil
}

// bound splits a coordinate predicate into nullable exact, min, max columns.
func bound(b model.Bound) (exact, lo, hi any) {
	v, ok := b.Value()
	if !ok {
		return nil, nil, nil
	}
	switch b.Slot() {
	case model.BoundMin:
		return nil, v, nil
	case model.BoundMax:
		return nil, nil, v
	default:
		return v, nil, nil
	}
}

func color(c model.Color) any {
	if s, ok := c.Value(); ok {
		return s
	}
	return nil
}
