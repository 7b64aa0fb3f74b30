// Package config loads the sitemapgen.yaml project configuration.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

// ConfigFileName is the project configuration file looked up under the
// project path.
const ConfigFileName = "sitemapgen.yaml"

// ProjectConfig is the sitemapgen.yaml shape. Entries map directly onto the
// sitemap library's entry configuration.
type ProjectConfig struct {
	// Hostname is the base URL joined onto relative entry locations.
	Hostname string `yaml:"hostname,omitempty"`

	// Output is the file the urlset document is written to. "-" writes to
	// stdout.
	Output string `yaml:"output,omitempty"`

	// Pretty enables indented output.
	Pretty bool `yaml:"pretty,omitempty"`

	// Safe applies the safe flag to every entry that does not set its own.
	Safe bool `yaml:"safe,omitempty"`

	Entries []sitemap.EntryConfig `yaml:"entries"`
}

// Load reads the project configuration from sourcePath.
func Load(sourcePath string) (*ProjectConfig, error) {
	configPath := filepath.Join(sourcePath, ConfigFileName)
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ResolveURL joins a relative location onto the configured hostname. Absolute
// locations and configurations without a hostname pass through unchanged.
func (c *ProjectConfig) ResolveURL(loc string) string {
	if c.Hostname == "" ||
		strings.HasPrefix(loc, "http://") || strings.HasPrefix(loc, "https://") {
		return loc
	}
	return strings.TrimSuffix(c.Hostname, "/") + "/" + strings.TrimPrefix(loc, "/")
}

// Environment variable names overriding the corresponding config fields.
// Precedence, highest to lowest: CLI flags > environment > sitemapgen.yaml.
const (
	EnvHostname = "SITEMAPGEN_HOSTNAME"
	EnvOutput   = "SITEMAPGEN_OUTPUT"
)

// ApplyEnv overlays environment overrides onto the configuration.
func (c *ProjectConfig) ApplyEnv() {
	if v := os.Getenv(EnvHostname); v != "" {
		c.Hostname = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output = v
	}
}
