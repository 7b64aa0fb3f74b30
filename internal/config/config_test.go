package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoad_AllFields(t *testing.T) {
	dir := writeConfig(t, `
hostname: https://example.com
output: public/sitemap.xml
pretty: true
safe: true
entries:
  - url: /about
    changefreq: monthly
    priority: 0.4
  - url: https://other.example.com/page
    lastmod: 2024-01-15
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com", cfg.Hostname)
	assert.Equal(t, "public/sitemap.xml", cfg.Output)
	assert.True(t, cfg.Pretty)
	assert.True(t, cfg.Safe)
	require.Len(t, cfg.Entries, 2)
	assert.Equal(t, "/about", cfg.Entries[0].URL)
	assert.Equal(t, sitemap.Monthly, cfg.Entries[0].ChangeFreq)
	require.NotNil(t, cfg.Entries[0].Priority)
	assert.Equal(t, 0.4, *cfg.Entries[0].Priority)
	assert.Equal(t, "2024-01-15", cfg.Entries[1].LastMod)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	dir := writeConfig(t, "entries: [not: closed")

	_, err := Load(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestResolveURL(t *testing.T) {
	cfg := &ProjectConfig{Hostname: "https://example.com/"}

	assert.Equal(t, "https://example.com/about", cfg.ResolveURL("/about"))
	assert.Equal(t, "https://example.com/about", cfg.ResolveURL("about"))
	assert.Equal(t, "https://other.example.com/x", cfg.ResolveURL("https://other.example.com/x"))
	assert.Equal(t, "http://other.example.com/x", cfg.ResolveURL("http://other.example.com/x"))

	bare := &ProjectConfig{}
	assert.Equal(t, "/about", bare.ResolveURL("/about"))
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvHostname, "https://env.example.com")
	t.Setenv(EnvOutput, "env.xml")

	cfg := &ProjectConfig{Hostname: "https://file.example.com", Output: "file.xml"}
	cfg.ApplyEnv()
	assert.Equal(t, "https://env.example.com", cfg.Hostname)
	assert.Equal(t, "env.xml", cfg.Output)
}

func TestApplyEnv_EmptyVariablesKeepFileValues(t *testing.T) {
	t.Setenv(EnvHostname, "")
	t.Setenv(EnvOutput, "")

	cfg := &ProjectConfig{Hostname: "https://file.example.com", Output: "file.xml"}
	cfg.ApplyEnv()
	assert.Equal(t, "https://file.example.com", cfg.Hostname)
	assert.Equal(t, "file.xml", cfg.Output)
}
