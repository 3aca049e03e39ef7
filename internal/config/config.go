package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration for each pipeline layer.
type Paths struct {
	RawDir       string `toml:"raw_dir"`
	ProcessedDir string `toml:"processed_dir"`
	CuratedDir   string `toml:"curated_dir"`
	GraphDir     string `toml:"graph_dir"`
	SQLDir       string `toml:"sql_dir"`
	DocsDir      string `toml:"docs_dir"`
	LogDir       string `toml:"log_dir"`
}

// Inputs names the five raw source files expected under raw_dir.
type Inputs struct {
	MoviesMetadata string `toml:"movies_metadata"`
	Credits        string `toml:"credits"`
	Keywords       string `toml:"keywords"`
	Ratings        string `toml:"ratings"`
	Links          string `toml:"links"`
}

// Transform contains thresholds applied while normalizing raw tables.
type Transform struct {
	MinRatingCount  int    `toml:"min_rating_count"`
	MaxCastPerMovie int    `toml:"max_cast_per_movie"`
	DirectorJob     string `toml:"director_job"`
}

// Curated contains thresholds for the curated layer and graph insights.
type Curated struct {
	TopCompanies      int `toml:"top_companies"`
	TopKeywords       int `toml:"top_keywords"`
	CoActorMinRatings int `toml:"coactor_min_ratings"`
	CoActorMaxOrder   int `toml:"coactor_max_cast_order"`
	CoActorTopPairs   int `toml:"coactor_top_pairs"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for marquee.
//
// Sections by subsystem:
//   - Paths: raw/processed/curated/graph/sql/docs/log directories
//   - Inputs: raw CSV filenames inside raw_dir
//   - Transform: normalization thresholds (rating floor, cast cap, director job)
//   - Curated: curated-layer list caps and co-actor insight thresholds
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Inputs    Inputs    `toml:"inputs"`
	Transform Transform `toml:"transform"`
	Curated   Curated   `toml:"curated"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/marquee/config.toml")
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample configuration file to the specified
// location.
func CreateSample(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The boolean reports
// whether a config file was actually found.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("marquee.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output directories a pipeline run writes to.
// The raw directory is deliberately excluded: its absence is a structural
// failure surfaced by the loader, not something to paper over.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{
		c.Paths.ProcessedDir,
		c.Paths.CuratedDir,
		c.Paths.GraphDir,
		c.Paths.SQLDir,
		c.Paths.DocsDir,
		c.Paths.LogDir,
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// RawFile returns the absolute path of a raw input file.
func (c *Config) RawFile(name string) string {
	return filepath.Join(c.Paths.RawDir, name)
}

// RawFiles lists the five required raw inputs keyed by logical table name.
func (c *Config) RawFiles() map[string]string {
	return map[string]string{
		"movies_metadata": c.RawFile(c.Inputs.MoviesMetadata),
		"credits":         c.RawFile(c.Inputs.Credits),
		"keywords":        c.RawFile(c.Inputs.Keywords),
		"ratings":         c.RawFile(c.Inputs.Ratings),
		"links":           c.RawFile(c.Inputs.Links),
	}
}

// ExpandPath resolves ~ prefixes and returns an absolute, cleaned path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
