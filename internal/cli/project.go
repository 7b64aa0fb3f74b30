package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/vvka-141/sitemapgen/internal/config"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

// loadProject loads environment overrides and the project configuration.
// Precedence, highest to lowest: CLI flags > environment > sitemapgen.yaml.
func loadProject(path, envFile string) (*config.ProjectConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("%w: env file %s: %v", sitemap.ErrInvalidConfig, envFile, err)
		}
	} else {
		// A missing .env is fine; it is an optional convenience.
		_ = godotenv.Load()
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%w: no %s found under %s", sitemap.ErrInvalidConfig, config.ConfigFileName, path)
		}
		return nil, fmt.Errorf("%w: %v", sitemap.ErrInvalidConfig, err)
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// buildEntries constructs every configured entry, resolving relative
// locations against the hostname and applying the project-wide safe flag.
func buildEntries(cfg *config.ProjectConfig) ([]*sitemap.Entry, error) {
	entries := make([]*sitemap.Entry, 0, len(cfg.Entries))
	for i, ec := range cfg.Entries {
		ec.URL = cfg.ResolveURL(ec.URL)
		if cfg.Safe {
			ec.Safe = true
		}
		entry, err := sitemap.NewEntry(ec)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i+1, ec.URL, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
