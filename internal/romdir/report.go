package romdir

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"romfilter/internal/logging"
)

// ReportPrefix starts the name of every report log.
const ReportPrefix = "no_intro_roms_filter_log_"

const reportTimeLayout = "20060102150405"

// IsReportLog reports whether name is a report log written by an earlier run.
func IsReportLog(name string) bool {
	return strings.HasPrefix(name, ReportPrefix)
}

// ReportName returns the report log file name for a run started at now.
func ReportName(now time.Time) string {
	return ReportPrefix + now.Format(reportTimeLayout)
}

// WriteReport stores text as the report log of a run started at now and
// returns the written path.
func WriteReport(dir, text string, now time.Time) (string, error) {
	path := filepath.Join(dir, ReportName(now))
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("write report log: %w", err)
	}
	return path, nil
}

// PruneReports deletes report logs in dir older than retentionDays. Zero
// disables pruning.
func PruneReports(dir string, retentionDays int, logger *slog.Logger) []string {
	return logging.CleanupOldLogs(logger, retentionDays, time.Now(), logging.RetentionTarget{
		Dir:     dir,
		Pattern: ReportPrefix + "*",
	})
}
