// Package store reads and writes a data directory: one JSON file per
// collection.
package store

import (
	"fmt"
	"log"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"

	"github.com/martinhoracek/TerraFirma/api"
	"github.com/martinhoracek/TerraFirma/internal/codec"
	"github.com/martinhoracek/TerraFirma/internal/model"
	"github.com/martinhoracek/TerraFirma/internal/writeback"
)

// SaveError reports a failed save. When encoding or writing a temp file
// failed nothing was replaced; when a rename failed part-way, the files
// renamed before it already hold the new content.
type SaveError struct {
	Dir string
	Err error
}

func (e *SaveError) Error() string { return fmt.Sprintf("save %s: %v", e.Dir, e.Err) }

func (e *SaveError) Unwrap() error { return e.Err }

// Store persists a model.Set in a directory.
type Store struct {
	fs      billy.Filesystem
	indent  string
	verbose bool
}

// Option configures a Store.
type Option func(*Store)

// WithIndent writes indented JSON. The empty string writes compact JSON.
func WithIndent(indent string) Option {
	return func(s *Store) { s.indent = indent }
}

// WithVerbose logs every file read and written.
func WithVerbose(v bool) Option {
	return func(s *Store) { s.verbose = v }
}

// New returns a Store over fs. Collection files live at the root of fs.
func New(fs billy.Filesystem, opts ...Option) *Store {
	s := &Store{fs: fs}
	for _, o := range opts {
		o(s)
	}
	return s
}

// OpenDir returns a Store over an existing directory on disk.
func OpenDir(dir string, opts ...Option) (*Store, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open data dir: %s is not a directory", dir)
	}
	return New(osfs.New(dir), opts...), nil
}

// Root names the directory the store reads from.
func (s *Store) Root() string { return s.fs.Root() }

// Load reads every collection file into a new Set. Any missing or malformed
// file fails the whole load; a *codec.DecodeError names the file and the
// JSONPath of the bad value.
func (s *Store) Load() (*model.Set, error) {
	set := &model.Set{}
	for _, c := range api.Collections {
		data, err := util.ReadFile(s.fs, c.File())
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", c.File(), err)
		}
		if err := codec.Decode(c, data, set); err != nil {
			return nil, err
		}
		if s.verbose {
			log.Printf("Store: loaded %s (%d bytes)", c.File(), len(data))
		}
	}
	return set, nil
}

// Save encodes every collection and then commits all files together.
// Encoding failures abort before anything is written.
func (s *Store) Save(set *model.Set) error {
	files := make([]writeback.File, 0, len(api.Collections))
	for _, c := range api.Collections {
		data, err := codec.Encode(c, set, s.indent)
		if err != nil {
			return &SaveError{Dir: s.Root(), Err: err}
		}
		files = append(files, writeback.File{Name: c.File(), Data: data})
	}
	if err := writeback.Commit(s.fs, files); err != nil {
		return &SaveError{Dir: s.Root(), Err: err}
	}
	if s.verbose {
		for _, f := range files {
			log.Printf("Store: wrote %s (%d bytes)", f.Name, len(f.Data))
		}
	}
	return nil
}

// Init writes an empty collection file for every collection that does not
// exist yet.
func (s *Store) Init() error {
	var files []writeback.File
	for _, c := range api.Collections {
		if _, err := s.fs.Stat(c.File()); err == nil {
			continue
		}
		files = append(files, writeback.File{Name: c.File(), Data: []byte("[]\n")})
	}
	if len(files) == 0 {
		return nil
	}
	if err := writeback.Commit(s.fs, files); err != nil {
		return &SaveError{Dir: s.Root(), Err: err}
	}
	return nil
}
