package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"romfilter/internal/config"
)

func TestConfigInitAndValidate(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "validate"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")

	target := filepath.Join(t.TempDir(), "config.toml")
	out, _, err = runCLI(t, []string{"config", "init", "--path", target}, "", "")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}

	if _, _, err := runCLI(t, []string{"config", "init", "--path", target}, "", ""); err == nil {
		t.Fatal("expected init to refuse overwriting without --overwrite")
	}
	if _, _, err := runCLI(t, []string{"config", "init", "--path", target, "--overwrite"}, "", ""); err != nil {
		t.Fatalf("config init --overwrite: %v", err)
	}

	out, _, err = runCLI(t, []string{"config", "validate"}, target, "")
	if err != nil {
		t.Fatalf("validate sample: %v", err)
	}
	requireContains(t, out, "Config path: "+target)
}

func TestConfigValidateRejectsEmptyRegions(t *testing.T) {
	setupCLITestEnv(t)
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[filter]\nregions_order = []\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	_, _, err := runCLI(t, []string{"config", "validate"}, path, "")
	if !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}

	dir := t.TempDir()
	if _, _, err := runCLI(t, []string{dir}, path, ""); !errors.Is(err, config.ErrInvalid) {
		t.Fatalf("filter with bad config: expected ErrInvalid, got %v", err)
	}
}

func TestConfigShowListsRegionsAndPatterns(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"config", "show"}, env.configPath, "")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	for _, want := range []string{"Region", "usa", "europe", "Remove pattern", "^beta", env.cfg.Paths.StateDir} {
		requireContains(t, out, want)
	}
}

func TestRenderTableKeepsHeaderCase(t *testing.T) {
	out := renderTable([]string{"Rank", "Remove pattern"}, [][]string{{"1"}}, []columnAlignment{alignRight})
	requireContains(t, out, "Remove pattern")
	if strings.Contains(out, "REMOVE PATTERN") {
		t.Fatalf("expected header case preserved, got %q", out)
	}
}
