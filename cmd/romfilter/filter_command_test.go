package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"romfilter/internal/prompt"
	"romfilter/internal/romdir"
	"romfilter/internal/testsupport"
)

var sampleRoms = []string{
	"Game (Europe).bin",
	"Game (Japan) (Beta).bin",
	"Game (USA).bin",
	"Other (Japan).bin",
	"Puzzle (Brazil).bin",
	"Puzzle (Korea).bin",
}

func TestDryRunPrintsReportAndKeepsFiles(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewRomDir(t, sampleRoms...)

	out, _, err := runCLI(t, []string{dir}, env.configPath, "")
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}

	want := "- Game (Europe).bin\n" +
		"- Game (Japan) (Beta).bin\n" +
		"  Game (USA).bin\n" +
		"  Other (Japan).bin\n" +
		"? Puzzle (Brazil).bin\n" +
		"? Puzzle (Korea).bin\n"
	if out != want {
		t.Fatalf("report mismatch\n got: %q\nwant: %q", out, want)
	}
	if got := testsupport.DirNames(t, dir); !reflect.DeepEqual(got, sampleRoms) {
		t.Fatalf("dry run changed directory: %v", got)
	}
}

func TestApplyDeletesPromptsAndJournals(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewRomDir(t, sampleRoms...)

	out, _, err := runCLI(t, []string{dir, "-D"}, env.configPath, "1\n")
	if err != nil {
		t.Fatalf("apply run: %v", err)
	}
	requireContains(t, out, "What do you want to do with these roms?")
	requireContains(t, out, "1. Puzzle (Brazil).bin\n2. Puzzle (Korea).bin\n")
	requireContains(t, out, "Report written to")

	var reportName string
	var remaining []string
	for _, name := range testsupport.DirNames(t, dir) {
		if romdir.IsReportLog(name) {
			reportName = name
			continue
		}
		remaining = append(remaining, name)
	}
	if want := []string{"Game (USA).bin", "Other (Japan).bin", "Puzzle (Brazil).bin"}; !reflect.DeepEqual(remaining, want) {
		t.Fatalf("remaining = %v, want %v", remaining, want)
	}
	if reportName == "" {
		t.Fatal("expected report log in directory")
	}
	data, err := os.ReadFile(filepath.Join(dir, reportName))
	if err != nil {
		t.Fatalf("read report log: %v", err)
	}
	wantReport := "- Game (Europe).bin\n" +
		"- Game (Japan) (Beta).bin\n" +
		"  Game (USA).bin\n" +
		"  Other (Japan).bin\n" +
		"  Puzzle (Brazil).bin\n" +
		"- Puzzle (Korea).bin\n"
	if string(data) != wantReport {
		t.Fatalf("report log mismatch\n got: %q\nwant: %q", data, wantReport)
	}

	store := testsupport.MustOpenHistory(t, env.cfg)
	runs, err := store.Recent(context.Background(), 0)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(runs) != 1 || runs[0].Removed != 3 || runs[0].Total != len(sampleRoms) || runs[0].Directory != dir {
		t.Fatalf("unexpected journal %+v", runs)
	}
	files, err := store.Files(context.Background(), runs[0].ID)
	if err != nil {
		t.Fatalf("Files: %v", err)
	}
	if want := []string{"Game (Europe).bin", "Game (Japan) (Beta).bin", "Puzzle (Korea).bin"}; !reflect.DeepEqual(files, want) {
		t.Fatalf("journaled files = %v, want %v", files, want)
	}
}

func TestApplyRepromptsOnWrongAnswer(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithoutHistory())
	dir := testsupport.NewRomDir(t, "Puzzle (Brazil).bin", "Puzzle (Korea).bin")

	out, _, err := runCLI(t, []string{dir, "--delete"}, env.configPath, "3\n01\n-\n")
	if err != nil {
		t.Fatalf("apply run: %v", err)
	}
	if got := strings.Count(out, "Wrong answer. Repeat:"); got != 2 {
		t.Fatalf("expected 2 re-prompts, got %d in %q", got, out)
	}
	for _, name := range testsupport.DirNames(t, dir) {
		if !romdir.IsReportLog(name) {
			t.Fatalf("expected every rom removed, found %s", name)
		}
	}
}

func TestApplyAbortsWhenInputEnds(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewRomDir(t, sampleRoms...)

	_, _, err := runCLI(t, []string{dir, "-D"}, env.configPath, "")
	if !errors.Is(err, prompt.ErrNoAnswer) {
		t.Fatalf("expected ErrNoAnswer, got %v", err)
	}
	if got := testsupport.DirNames(t, dir); !reflect.DeepEqual(got, sampleRoms) {
		t.Fatalf("aborted run changed directory: %v", got)
	}
}

func TestFilterArgumentErrors(t *testing.T) {
	env := setupCLITestEnv(t)
	dir := testsupport.NewRomDir(t)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{name: "missing directory", args: nil, want: "directory path parameter not passed"},
		{name: "unknown parameter", args: []string{dir, "extra"}, want: "unknown parameter: extra"},
		{name: "invalid directory", args: []string{filepath.Join(dir, "missing")}, want: "invalid directory path"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := runCLI(t, tc.args, env.configPath, "")
			if err == nil {
				t.Fatal("expected error")
			}
			requireContains(t, err.Error(), tc.want)
		})
	}
}

func TestInvalidDirectoryIsSentinel(t *testing.T) {
	env := setupCLITestEnv(t)
	file := filepath.Join(t.TempDir(), "file.bin")
	testsupport.WriteFile(t, file)

	_, _, err := runCLI(t, []string{file, "-D"}, env.configPath, "")
	if !errors.Is(err, romdir.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}
