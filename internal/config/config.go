// Package config loads the editor settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Config holds the settings read from config.hcl. Flags given on the
// command line override it.
type Config struct {
	DataDir string `hcl:"data_dir,optional"`
	Indent  string `hcl:"indent,optional"`
	Lock    *bool  `hcl:"lock,optional"`
}

// Default returns the settings used when no file exists: the data directory
// sits next to the working directory, as in a source checkout.
func Default() Config {
	dir := filepath.Join("..", "assets", "jsons")
	if wd, err := os.Getwd(); err == nil {
		dir = filepath.Join(filepath.Dir(wd), "assets", "jsons")
	}
	return Config{DataDir: dir}
}

// DefaultPath is ~/.config/tfedit/config.hcl.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config dir: %w", err)
	}
	return filepath.Join(dir, "tfedit", "config.hcl"), nil
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	src, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	// hclsimple picks the syntax from the extension; settings files are
	// always native HCL.
	name := path
	if filepath.Ext(name) != ".hcl" {
		name += ".hcl"
	}
	var file Config
	if err := hclsimple.Decode(name, src, nil, &file); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if file.DataDir != "" {
		cfg.DataDir = file.DataDir
		if !filepath.IsAbs(cfg.DataDir) {
			cfg.DataDir = filepath.Join(filepath.Dir(path), cfg.DataDir)
		}
	}
	cfg.Indent = file.Indent
	cfg.Lock = file.Lock
	return cfg, nil
}

// Locking reports whether the data directory should be locked while
// editing. It defaults to true.
func (c Config) Locking() bool {
	return c.Lock == nil || *c.Lock
}
