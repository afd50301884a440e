package romdir

import (
	"log/slog"
	"os"
	"path/filepath"

	"romfilter/internal/logging"
)

// RemoveResult contains the outcome of a deletion pass.
type RemoveResult struct {
	Removed []Entry
	Errors  []RemoveError
}

// RemoveError pairs a file with its deletion error.
type RemoveError struct {
	Entry Entry
	Err   error
}

// Remove deletes each entry from dir. Failures are logged and collected; the
// remaining entries are still attempted.
func Remove(dir string, entries []Entry, logger *slog.Logger) RemoveResult {
	result := RemoveResult{}
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Raw)
		if err := os.Remove(path); err != nil {
			result.Errors = append(result.Errors, RemoveError{Entry: entry, Err: err})
			logging.WarnWithContext(logger, "failed to remove rom", "rom_remove_failed",
				logging.String("name", entry.Name),
				logging.Error(err),
				logging.String(logging.FieldErrorHint, "check file permissions"),
				logging.String(logging.FieldImpact, "duplicate rom remains in directory"),
			)
			continue
		}
		result.Removed = append(result.Removed, entry)
		if logger != nil {
			logger.Debug("removed rom",
				logging.String("name", entry.Name),
				logging.String(logging.FieldEventType, "rom_removed"),
			)
		}
	}
	return result
}
