// pkg/backup/backup.go
package backup

import (
	"fmt"
	"os"
)

// Suffix is appended to a path when it is moved aside
const Suffix = ".bak"

// Record describes one completed backup
type Record struct {
	Original string // Path that was moved aside
	Backup   string // Where it now lives
}

// IfExists moves path aside to path+".bak" before it gets overwritten,
// replacing any prior backup. It returns nil when path does not exist.
// Works for both files and directories.
func IfExists(path string) (*Record, error) {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("checking %s: %w", path, err)
	}

	backupPath := path + Suffix

	// os.Rename replaces an existing backup file, but refuses to replace a
	// non-empty directory, so clear the old backup first
	if err := os.RemoveAll(backupPath); err != nil {
		return nil, fmt.Errorf("removing stale backup %s: %w", backupPath, err)
	}

	if err := os.Rename(path, backupPath); err != nil {
		return nil, fmt.Errorf("backing up %s: %w", path, err)
	}

	return &Record{Original: path, Backup: backupPath}, nil
}
