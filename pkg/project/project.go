// Package project locates and reads HEMTT project manifests.
package project

import (
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"
)

// AppFs is the filesystem used for manifest reads. Tests swap in a memory
// filesystem.
var AppFs afero.Fs = afero.NewOsFs()

// ManifestPath is the manifest location relative to the project root.
const ManifestPath = ".hemtt/project.toml"

// Manifest is the subset of .hemtt/project.toml the launcher cares about.
type Manifest struct {
	Name       string `toml:"name"`
	Prefix     string `toml:"prefix"`
	MainPrefix string `toml:"mainprefix"`
}

// Load reads the manifest under dir. A missing or unparseable manifest is
// an error; callers treat it as a warning rather than a hard stop, since
// HEMTT itself is the authority on what it accepts.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestPath)
	data, err := afero.ReadFile(AppFs, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &m, nil
}

// IsProject reports whether dir contains a HEMTT project manifest.
func IsProject(dir string) bool {
	ok, err := afero.Exists(AppFs, filepath.Join(dir, ManifestPath))
	return err == nil && ok
}
