// Package termaidir encapsulates all path knowledge for the per-user termai
// data directory. It provides a Dir value object with accessors for the
// config file and the legacy key file paths.
package termaidir

import (
	"fmt"
	"os"
	"path/filepath"
)

// Dir is a value object that resolves paths within the termai data directory.
type Dir struct {
	root string
}

// New creates a Dir rooted at the given path. The path is converted to an
// absolute path. No I/O is performed; use EnsureStructure to create the
// directory on disk.
func New(root string) Dir {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = root
	}

	return Dir{root: abs}
}

// Default returns a Dir rooted at ~/.local/share/termai.
func Default() (Dir, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Dir{}, fmt.Errorf("termaidir: resolve home directory: %w", err)
	}

	return New(filepath.Join(home, ".local", "share", "termai")), nil
}

// Root returns the absolute path to the data directory.
func (d Dir) Root() string { return d.root }

// ConfigPath returns the path to the JSON settings file.
func (d Dir) ConfigPath() string { return filepath.Join(d.root, "config.json") }

// LegacyKeyPath returns the path to the deprecated plaintext key file.
func (d Dir) LegacyKeyPath() string { return filepath.Join(d.root, "key") }

// LegacyKeyBackupPath returns the path the legacy key file is renamed to
// after migration.
func (d Dir) LegacyKeyBackupPath() string { return filepath.Join(d.root, "key.bak") }

// Exists reports whether the data directory exists on disk.
func (d Dir) Exists() bool {
	info, err := os.Stat(d.root)

	return err == nil && info.IsDir()
}

// EnsureStructure creates the data directory if it is missing. It is safe to
// call multiple times (idempotent).
func EnsureStructure(d Dir) error {
	if err := os.MkdirAll(d.Root(), 0o700); err != nil {
		return fmt.Errorf("termaidir: create data dir: %w", err)
	}

	return nil
}
