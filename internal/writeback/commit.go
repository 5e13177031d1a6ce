// Package writeback replaces files on a billy filesystem through temp files
// and renames, so a reader never sees a half-written file.
package writeback

import (
	"fmt"
	"path"

	"github.com/go-git/go-billy/v5"
)

// TempPrefix starts the name of every temp file a commit creates.
const TempPrefix = ".tfedit-"

// File is one destination of a commit.
type File struct {
	Name string
	Data []byte
}

// Commit writes every file to a temp file next to its destination and
// renames the temp files into place only after all of them were written. A
// failure before the first rename leaves every destination untouched and
// removes the temp files. A failed rename removes the temps not yet renamed;
// destinations renamed before it keep their new content.
func Commit(fs billy.Filesystem, files []File) error {
	temps := make([]string, 0, len(files))
	cleanup := func() {
		for _, name := range temps {
			_ = fs.Remove(name) // best-effort cleanup
		}
	}

	for _, f := range files {
		tmp, err := writeTemp(fs, f)
		if err != nil {
			cleanup()
			return err
		}
		temps = append(temps, tmp)
	}

	for i, f := range files {
		if err := fs.Rename(temps[i], f.Name); err != nil {
			temps = temps[i:]
			cleanup()
			return fmt.Errorf("rename temp to %s: %w", f.Name, err)
		}
	}
	return nil
}

func writeTemp(fs billy.Filesystem, f File) (string, error) {
	tmp, err := fs.TempFile(path.Dir(f.Name), TempPrefix)
	if err != nil {
		return "", fmt.Errorf("create temp file for %s: %w", f.Name, err)
	}
	name := tmp.Name()

	if _, err := tmp.Write(f.Data); err != nil {
		_ = tmp.Close()
		_ = fs.Remove(name) // best-effort cleanup
		return "", fmt.Errorf("write temp for %s: %w", f.Name, err)
	}
	if err := tmp.Close(); err != nil {
		_ = fs.Remove(name) // best-effort cleanup
		return "", fmt.Errorf("close temp for %s: %w", f.Name, err)
	}

	// Preserve the destination's permissions where the filesystem allows it.
	if ch, ok := fs.(billy.Change); ok {
		if info, err := fs.Stat(f.Name); err == nil {
			_ = ch.Chmod(name, info.Mode()) // best-effort permission sync
		}
	}
	return name, nil
}
