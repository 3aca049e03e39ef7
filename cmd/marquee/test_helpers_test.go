package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/config"
	"marquee/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	cfg.Transform.MinRatingCount = 1
	cfg.Curated.CoActorMinRatings = 1

	writeRawFixture(t, cfg)

	configPath := filepath.Join(filepath.Dir(cfg.Paths.RawDir), "config.toml")
	testsupport.WriteConfigFile(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeRawFixture(t *testing.T, cfg *config.Config) {
	t.Helper()

	raw := cfg.RawFiles()
	writeCSV(t, raw["movies_metadata"], [][]string{
		{"id", "title", "release_date", "original_language", "status", "budget", "revenue", "runtime", "popularity", "vote_average", "vote_count", "genres", "production_companies"},
		{"862", "Toy Story", "1995-10-30", "en", "Released", "100000", "300000", "81.0", "21.9", "7.7", "5415", `[{'id': 16, 'name': 'Animation'}, {'id': 35, 'name': 'Comedy'}]`, `[{'name': 'Pixar Animation Studios', 'id': 3}]`},
		{"8844", "Jumanji", "1995-12-15", "en", "Released", "0", "262797249", "104.0", "17.0", "6.9", "2413", `[{'id': 12, 'name': 'Adventure'}]`, `[]`},
	})
	writeCSV(t, raw["credits"], [][]string{
		{"cast", "crew", "id"},
		{`[{'cast_id': 14, 'character': 'Woody (voice)', 'id': 31, 'name': 'Tom Hanks', 'order': 0}, {'cast_id': 15, 'character': 'Buzz (voice)', 'id': 12898, 'name': 'Tim Allen', 'order': 1}]`,
			`[{'department': 'Directing', 'id': 7879, 'job': 'Director', 'name': 'John Lasseter'}]`,
			"862"},
		{`[{'cast_id': 1, 'character': 'Alan Parrish', 'id': 2157, 'name': 'Robin Williams', 'order': 0}]`,
			`[{'department': 'Directing', 'id': 4945, 'job': 'Director', 'name': 'Joe Johnston'}]`,
			"8844"},
	})
	writeCSV(t, raw["keywords"], [][]string{
		{"id", "keywords"},
		{"862", `[{'id': 931, 'name': 'jealousy'}, {'id': 4290, 'name': 'toy'}]`},
		{"8844", `[{'id': 10090, 'name': 'board game'}]`},
	})
	writeCSV(t, raw["ratings"], [][]string{
		{"userId", "movieId", "rating", "timestamp"},
		{"1", "1", "4.0", "964982703"},
		{"2", "1", "5.0", "964982931"},
		{"3", "2", "3.0", "964983000"},
	})
	writeCSV(t, raw["links"], [][]string{
		{"movieId", "imdbId", "tmdbId"},
		{"1", "0114709", "862"},
		{"2", "0113497", "8844"},
	})
}

func writeCSV(t *testing.T, path string, rows [][]string) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create %s: %v", path, err)
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", path, err)
	}
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func requireFile(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file at %s: %v", path, err)
	}
}
