package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"romfilter/internal/config"
	"romfilter/internal/dedupe"
	"romfilter/internal/history"
	"romfilter/internal/logging"
	"romfilter/internal/prompt"
	"romfilter/internal/report"
	"romfilter/internal/romdir"
)

func runFilter(cmd *cobra.Command, cfg *config.Config, dir string, apply bool) error {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	if err := romdir.CheckDirectory(dir); err != nil {
		return err
	}
	if apply {
		if err := romdir.CheckWritable(dir); err != nil {
			return err
		}
	}

	ctx, logger, runID, err := runLogger(cmd, cfg, "filter")
	if err != nil {
		return err
	}
	logger = logger.With(logging.String(logging.FieldDirectory, dir))

	var lock *romdir.Lock
	if apply {
		lock, err = romdir.AcquireLock(cfg.Paths.StateDir)
		if err != nil {
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn("failed to release lock", logging.Error(err))
			}
		}()
	}

	startedAt := time.Now()
	entries, err := romdir.List(dir)
	if err != nil {
		return err
	}
	patterns, err := cfg.CompiledPatterns()
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	out := cmd.OutOrStdout()
	if apply && !isInteractive(in) {
		logging.WarnWithContext(logger, "stdin is not a terminal; answers are read from piped input", "prompt_non_interactive",
			logging.String(logging.FieldErrorHint, "run from a terminal to answer prompts interactively"),
			logging.String(logging.FieldImpact, "ambiguous groups are resolved from input lines"),
		)
	}

	result, err := dedupe.Run(romdir.Names(entries), dedupe.Options{
		RegionsOrder:   cfg.Filter.RegionsOrder,
		RemovePatterns: patterns,
		OnlyInfo:       !apply,
		Resolver:       prompt.NewTerminal(in, out),
		Logger:         logger,
	})
	if err != nil {
		if errors.Is(err, prompt.ErrNoAnswer) {
			fmt.Fprintln(out)
			logger.Warn("run aborted; nothing deleted", logging.Error(err))
		}
		return err
	}
	counts := result.Counts()
	text := report.Render(result)

	if !apply {
		logger.Info("dry run complete",
			logging.Int("files", counts.Total()),
			logging.Int("to_remove", counts.Remove),
			logging.Int("unknown", counts.Unknown),
		)
		_, err := io.WriteString(out, text)
		return err
	}

	removal := romdir.Remove(dir, selectEntries(entries, result.Removed()), logger)

	reportPath, err := romdir.WriteReport(dir, text, startedAt)
	if err != nil {
		logging.WarnWithContext(logger, "report log not written", "report_write_failed",
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check directory permissions"),
			logging.String(logging.FieldImpact, "no record of this run in the rom directory"),
		)
	}
	romdir.PruneReports(dir, cfg.Logging.ReportRetentionDays, logger)

	removedNames := romdir.Names(removal.Removed)
	recordRun(ctx, cfg, logger, history.Run{
		ID:         runID,
		Directory:  dir,
		Mode:       history.ModeApply,
		StartedAt:  startedAt,
		Total:      counts.Total(),
		Removed:    len(removedNames),
		Unknown:    counts.Unknown,
		ReportPath: reportPath,
		Files:      removedNames,
	})

	logger.Info("filter complete",
		logging.Int("files", counts.Total()),
		logging.Int("removed", len(removedNames)),
		logging.Int("failed", len(removal.Errors)),
		logging.Duration("elapsed", time.Since(startedAt)),
	)

	fmt.Fprintln(out, report.Summary(counts))
	if reportPath != "" {
		fmt.Fprintf(out, "Report written to %s\n", reportPath)
	}
	if len(removal.Errors) > 0 {
		return fmt.Errorf("%d of %d files could not be removed", len(removal.Errors), len(removal.Errors)+len(removedNames))
	}
	return nil
}

// recordRun journals an apply run. Failures are logged and never fail the run.
func recordRun(ctx context.Context, cfg *config.Config, logger *slog.Logger, run history.Run) {
	if !cfg.History.Enabled {
		return
	}
	store, err := history.Open(cfg.History.Path)
	if err != nil {
		logging.WarnWithContext(logger, "history unavailable; run not journaled", "history_open_failed",
			logging.String("path", cfg.History.Path),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check history.path or delete the database"),
			logging.String(logging.FieldImpact, "run missing from romfilter history"),
		)
		return
	}
	defer store.Close()

	if _, err := store.RecordRun(ctx, run); err != nil {
		logging.WarnWithContext(logger, "failed to journal run", "history_record_failed",
			logging.Error(err),
			logging.String(logging.FieldImpact, "run missing from romfilter history"),
		)
		return
	}
	logger.Debug("run journaled", logging.String("history", store.Path()))
}

func selectEntries(entries []romdir.Entry, positions []int) []romdir.Entry {
	selected := make([]romdir.Entry, 0, len(positions))
	for _, pos := range positions {
		selected = append(selected, entries[pos])
	}
	return selected
}

// isInteractive reports whether in is a terminal.
func isInteractive(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
