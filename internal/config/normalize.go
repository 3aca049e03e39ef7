package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeInputs()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	fields := []struct {
		name     string
		value    *string
		fallback string
	}{
		{"paths.raw_dir", &c.Paths.RawDir, defaultRawDir},
		{"paths.processed_dir", &c.Paths.ProcessedDir, defaultProcessedDir},
		{"paths.curated_dir", &c.Paths.CuratedDir, defaultCuratedDir},
		{"paths.graph_dir", &c.Paths.GraphDir, defaultGraphDir},
		{"paths.sql_dir", &c.Paths.SQLDir, defaultSQLDir},
		{"paths.docs_dir", &c.Paths.DocsDir, defaultDocsDir},
		{"paths.log_dir", &c.Paths.LogDir, defaultLogDir},
	}
	for _, field := range fields {
		if strings.TrimSpace(*field.value) == "" {
			*field.value = field.fallback
		}
		expanded, err := ExpandPath(*field.value)
		if err != nil {
			return fmt.Errorf("%s: %w", field.name, err)
		}
		*field.value = expanded
	}
	return nil
}

func (c *Config) normalizeInputs() {
	if strings.TrimSpace(c.Inputs.MoviesMetadata) == "" {
		c.Inputs.MoviesMetadata = defaultMoviesMetadata
	}
	if strings.TrimSpace(c.Inputs.Credits) == "" {
		c.Inputs.Credits = defaultCredits
	}
	if strings.TrimSpace(c.Inputs.Keywords) == "" {
		c.Inputs.Keywords = defaultKeywords
	}
	if strings.TrimSpace(c.Inputs.Ratings) == "" {
		c.Inputs.Ratings = defaultRatings
	}
	if strings.TrimSpace(c.Inputs.Links) == "" {
		c.Inputs.Links = defaultLinks
	}
	if strings.TrimSpace(c.Transform.DirectorJob) == "" {
		c.Transform.DirectorJob = defaultDirectorJob
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
