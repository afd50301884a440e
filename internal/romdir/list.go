package romdir

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"golang.org/x/sys/unix"

	"romfilter/internal/textutil"
)

// ErrNotDirectory reports a target path that is missing or not a directory.
var ErrNotDirectory = errors.New("invalid directory path")

// ErrNotWritable reports a target directory the process cannot delete from.
var ErrNotWritable = errors.New("no permissions to change the contents of the directory")

// Entry is one regular file of the ROM directory.
type Entry struct {
	// Raw is the on-disk name used for deletion.
	Raw string
	// Name is the normalized UTF-8 name used for parsing and display.
	Name string
}

// List returns the regular files of dir sorted by raw byte order. Symlinks
// are followed; directories and earlier report logs are skipped.
func List(dir string) ([]Entry, error) {
	if err := CheckDirectory(dir); err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	files := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		raw := entry.Name()
		if IsReportLog(raw) {
			continue
		}
		if !isRegular(dir, entry) {
			continue
		}
		files = append(files, Entry{Raw: raw, Name: textutil.NormalizeFileName(raw)})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Raw < files[j].Raw })
	return files, nil
}

// Names projects entries to their normalized names.
func Names(entries []Entry) []string {
	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names
}

// CheckDirectory verifies dir exists and is a directory.
func CheckDirectory(dir string) error {
	if strings.TrimSpace(dir) == "" {
		return ErrNotDirectory
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotDirectory, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrNotDirectory, dir)
	}
	return nil
}

// CheckWritable verifies the process may create and delete entries in dir.
func CheckWritable(dir string) error {
	if err := CheckDirectory(dir); err != nil {
		return err
	}
	if err := unix.Access(dir, unix.W_OK|unix.X_OK); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNotWritable, dir, err)
	}
	return nil
}

func isRegular(dir string, entry os.DirEntry) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
