package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
)

func TestLoadDefaultsExpandPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantRaw := filepath.Join(tempHome, ".local", "share", "marquee", "data", "raw")
	if cfg.Paths.RawDir != wantRaw {
		t.Fatalf("unexpected raw dir: got %q want %q", cfg.Paths.RawDir, wantRaw)
	}
	if cfg.Transform.MinRatingCount != 50 {
		t.Fatalf("unexpected min rating count: %d", cfg.Transform.MinRatingCount)
	}
	if cfg.Transform.MaxCastPerMovie != 20 {
		t.Fatalf("unexpected cast cap: %d", cfg.Transform.MaxCastPerMovie)
	}
	if cfg.Transform.DirectorJob != "Director" {
		t.Fatalf("unexpected director job: %q", cfg.Transform.DirectorJob)
	}
	if cfg.Curated.CoActorMaxOrder != 10 {
		t.Fatalf("unexpected co-actor order cutoff: %d", cfg.Curated.CoActorMaxOrder)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if cfg.Inputs.Ratings != "ratings_small.csv" {
		t.Fatalf("unexpected ratings input: %q", cfg.Inputs.Ratings)
	}
}

func TestLoadReadsFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "marquee.toml")
	content := strings.Join([]string{
		"[paths]",
		`raw_dir = "` + filepath.Join(dir, "raw") + `"`,
		"[transform]",
		"min_rating_count = 25",
		`director_job = "director"`,
		"[logging]",
		`format = "json"`,
	}, "\n")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Transform.MinRatingCount != 25 {
		t.Fatalf("override not applied: %d", cfg.Transform.MinRatingCount)
	}
	if cfg.Transform.DirectorJob != "director" {
		t.Fatalf("override not applied: %q", cfg.Transform.DirectorJob)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("override not applied: %q", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Curated.TopKeywords != 10 {
		t.Fatalf("expected default top_keywords, got %d", cfg.Curated.TopKeywords)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	if err := os.WriteFile(path, []byte("[transform]\nmax_cast_per_movie = 0\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for zero cast cap")
	}

	path = filepath.Join(dir, "badlog.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestEnsureDirectoriesSkipsRawDir(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.ProcessedDir); err != nil {
		t.Fatalf("processed dir missing: %v", err)
	}
	if _, err := os.Stat(cfg.Paths.RawDir); !os.IsNotExist(err) {
		t.Fatalf("raw dir should not be created, stat err=%v", err)
	}
}

func TestRawFilesListsAllInputs(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.RawDir = "/data/raw"
	files := cfg.RawFiles()
	if len(files) != 5 {
		t.Fatalf("expected 5 raw files, got %d", len(files))
	}
	if files["links"] != filepath.Join("/data/raw", "links_small.csv") {
		t.Fatalf("unexpected links path: %q", files["links"])
	}
}
