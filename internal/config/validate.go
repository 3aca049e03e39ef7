package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateTransform(); err != nil {
		return err
	}
	if err := c.validateCurated(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTransform() error {
	if c.Transform.MinRatingCount < 0 {
		return errors.New("transform.min_rating_count must not be negative")
	}
	if c.Transform.MaxCastPerMovie <= 0 {
		return errors.New("transform.max_cast_per_movie must be positive")
	}
	if c.Transform.DirectorJob == "" {
		return errors.New("transform.director_job must be set")
	}
	return nil
}

func (c *Config) validateCurated() error {
	if c.Curated.TopCompanies <= 0 {
		return errors.New("curated.top_companies must be positive")
	}
	if c.Curated.TopKeywords <= 0 {
		return errors.New("curated.top_keywords must be positive")
	}
	if c.Curated.CoActorMinRatings < 0 {
		return errors.New("curated.coactor_min_ratings must not be negative")
	}
	if c.Curated.CoActorMaxOrder < 0 {
		return errors.New("curated.coactor_max_cast_order must not be negative")
	}
	if c.Curated.CoActorTopPairs <= 0 {
		return errors.New("curated.coactor_top_pairs must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}
