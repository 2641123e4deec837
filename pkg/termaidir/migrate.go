package termaidir

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// MigrateLegacyKey reads the deprecated plaintext key file, trims it, and
// renames the file to its backup name. The rename is the migration marker:
// once moved, the legacy path is never consulted again. Returns the key and
// whether a migration happened; a missing legacy file is a no-op.
func MigrateLegacyKey(d Dir) (string, bool, error) {
	oldPath := d.LegacyKeyPath()

	data, err := os.ReadFile(oldPath) //nolint:gosec // fixed path inside the data dir
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("termaidir: migrate legacy key: read: %w", err)
	}

	key := strings.TrimSpace(string(data))

	if err := os.Rename(oldPath, d.LegacyKeyBackupPath()); err != nil {
		return "", false, fmt.Errorf("termaidir: migrate legacy key: rename: %w", err)
	}

	return key, true, nil
}
