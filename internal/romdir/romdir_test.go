package romdir_test

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"romfilter/internal/logging"
	"romfilter/internal/romdir"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("rom"), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func TestListSkipsDirectoriesAndReportLogs(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "b (USA).bin", "a (Europe).bin", "no_intro_roms_filter_log_20240101120000")
	if err := os.Mkdir(filepath.Join(dir, "subdir (USA)"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "a (Europe).bin"), filepath.Join(dir, "c (Japan).bin")); err != nil {
		t.Fatalf("symlink: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "subdir (USA)"), filepath.Join(dir, "d (USA)")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	entries, err := romdir.List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	want := []string{"a (Europe).bin", "b (USA).bin", "c (Japan).bin"}
	if got := romdir.Names(entries); !reflect.DeepEqual(got, want) {
		t.Fatalf("names = %v, want %v", got, want)
	}
}

func TestListNormalizesInvalidNames(t *testing.T) {
	dir := t.TempDir()
	raw := "Pok\xe9mon (USA).gb"
	writeFiles(t, dir, raw)

	entries, err := romdir.List(dir)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected one entry, got %v", entries)
	}
	if entries[0].Raw != raw || entries[0].Name != "Pok\u00e9mon (USA).gb" {
		t.Fatalf("unexpected entry %+v", entries[0])
	}

	result := romdir.Remove(dir, entries, logging.NewNop())
	if len(result.Errors) != 0 || len(result.Removed) != 1 {
		t.Fatalf("unexpected remove result %+v", result)
	}
	if _, err := os.Stat(filepath.Join(dir, raw)); !os.IsNotExist(err) {
		t.Fatalf("expected raw file to be removed, stat err=%v", err)
	}
}

func TestListRejectsInvalidDirectory(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file.bin")
	writeFiles(t, dir, "file.bin")

	for _, path := range []string{"", filepath.Join(dir, "missing"), file} {
		if _, err := romdir.List(path); !errors.Is(err, romdir.ErrNotDirectory) {
			t.Fatalf("List(%q) error = %v, want ErrNotDirectory", path, err)
		}
	}
}

func TestCheckWritable(t *testing.T) {
	dir := t.TempDir()
	if err := romdir.CheckWritable(dir); err != nil {
		t.Fatalf("CheckWritable returned error: %v", err)
	}
	if err := romdir.CheckWritable(filepath.Join(dir, "missing")); !errors.Is(err, romdir.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestRemoveContinuesAfterFailure(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "keep.bin", "gone.bin")
	entries := []romdir.Entry{
		{Raw: "missing.bin", Name: "missing.bin"},
		{Raw: "gone.bin", Name: "gone.bin"},
	}

	result := romdir.Remove(dir, entries, nil)
	if len(result.Errors) != 1 || result.Errors[0].Entry.Raw != "missing.bin" {
		t.Fatalf("unexpected errors %+v", result.Errors)
	}
	if len(result.Removed) != 1 || result.Removed[0].Raw != "gone.bin" {
		t.Fatalf("unexpected removed %+v", result.Removed)
	}
	if _, err := os.Stat(filepath.Join(dir, "keep.bin")); err != nil {
		t.Fatalf("keep.bin should remain: %v", err)
	}
}

func TestWriteReportAndPrune(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2024, 3, 9, 7, 5, 2, 0, time.Local)

	path, err := romdir.WriteReport(dir, "+ Game (USA).bin\n", now)
	if err != nil {
		t.Fatalf("WriteReport returned error: %v", err)
	}
	if filepath.Base(path) != "no_intro_roms_filter_log_20240309070502" {
		t.Fatalf("unexpected report name %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "+ Game (USA).bin\n" {
		t.Fatalf("unexpected report content %q (err=%v)", data, err)
	}

	stale := time.Now().AddDate(0, 0, -30)
	if err := os.Chtimes(path, stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}
	writeFiles(t, dir, "Old (USA).bin")
	if err := os.Chtimes(filepath.Join(dir, "Old (USA).bin"), stale, stale); err != nil {
		t.Fatalf("chtimes: %v", err)
	}

	if removed := romdir.PruneReports(dir, 0, nil); len(removed) != 0 {
		t.Fatalf("retention 0 pruned %v", removed)
	}
	removed := romdir.PruneReports(dir, 7, logging.NewNop())
	if len(removed) != 1 || removed[0] != path {
		t.Fatalf("pruned %v, want %s", removed, path)
	}
	if _, err := os.Stat(filepath.Join(dir, "Old (USA).bin")); err != nil {
		t.Fatalf("rom must not be pruned: %v", err)
	}
}

func TestAcquireLockIsExclusive(t *testing.T) {
	stateDir := filepath.Join(t.TempDir(), "state")

	first, err := romdir.AcquireLock(stateDir)
	if err != nil {
		t.Fatalf("AcquireLock returned error: %v", err)
	}
	if !strings.HasSuffix(first.Path(), "romfilter.lock") {
		t.Fatalf("unexpected lock path %s", first.Path())
	}

	if _, err := romdir.AcquireLock(stateDir); !errors.Is(err, romdir.ErrLocked) {
		t.Fatalf("second AcquireLock error = %v, want ErrLocked", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release returned error: %v", err)
	}
	second, err := romdir.AcquireLock(stateDir)
	if err != nil {
		t.Fatalf("AcquireLock after release returned error: %v", err)
	}
	_ = second.Release()
}
