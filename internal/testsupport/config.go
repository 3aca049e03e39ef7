// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"marquee/internal/config"
)

// NewConfig produces a config rooted at a unique temp directory per test.
// Pipeline directories are created eagerly so stages can write immediately.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.RawDir = filepath.Join(base, "raw")
	cfg.Paths.ProcessedDir = filepath.Join(base, "processed")
	cfg.Paths.CuratedDir = filepath.Join(base, "curated")
	cfg.Paths.GraphDir = filepath.Join(base, "graph")
	cfg.Paths.SQLDir = filepath.Join(base, "sql")
	cfg.Paths.DocsDir = filepath.Join(base, "docs")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	if err := os.MkdirAll(cfg.Paths.RawDir, 0o755); err != nil {
		t.Fatalf("mkdir raw dir: %v", err)
	}
	return &cfg
}

// WriteConfigFile serializes cfg to path so CLI commands can load it.
func WriteConfigFile(t testing.TB, path string, cfg *config.Config) {
	t.Helper()

	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode config: %v", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir config dir: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

// WriteRawCSV writes one raw input file under the config's raw directory.
func WriteRawCSV(t testing.TB, cfg *config.Config, name, content string) string {
	t.Helper()

	path := filepath.Join(cfg.Paths.RawDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write raw csv %s: %v", name, err)
	}
	return path
}
