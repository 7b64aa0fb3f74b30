package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/sitemapgen/internal/config"
	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

func writeProject(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.ConfigFileName), []byte(content), 0644))
	return dir
}

func TestLoadProject_MissingConfig(t *testing.T) {
	_, err := loadProject(t.TempDir(), "")
	assert.ErrorIs(t, err, sitemap.ErrInvalidConfig)
	assert.Equal(t, sitemap.ExitConfigError, sitemap.ExitCodeForError(err))
}

func TestLoadProject_MissingEnvFile(t *testing.T) {
	dir := writeProject(t, "entries:\n  - url: https://example.com/\n")

	_, err := loadProject(dir, filepath.Join(dir, "absent.env"))
	assert.ErrorIs(t, err, sitemap.ErrInvalidConfig)
}

func TestLoadProject_EnvFileOverridesConfig(t *testing.T) {
	dir := writeProject(t, "hostname: https://file.example.com\nentries: []\n")
	envFile := filepath.Join(dir, "override.env")
	require.NoError(t, os.WriteFile(envFile,
		[]byte(config.EnvHostname+"=https://env.example.com\n"), 0644))

	os.Unsetenv(config.EnvHostname)
	t.Cleanup(func() { os.Unsetenv(config.EnvHostname) })

	cfg, err := loadProject(dir, envFile)
	require.NoError(t, err)
	assert.Equal(t, "https://env.example.com", cfg.Hostname)
}

func TestBuildEntries_ResolvesAndPropagatesSafe(t *testing.T) {
	cfg := &config.ProjectConfig{
		Hostname: "https://example.com",
		Safe:     true,
		Entries: []sitemap.EntryConfig{
			{URL: "/about", ChangeFreq: "sometimes"},
		},
	}

	entries, err := buildEntries(cfg)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "https://example.com/about", entries[0].URL())
}

func TestBuildEntries_ReportsEntryIndex(t *testing.T) {
	cfg := &config.ProjectConfig{
		Entries: []sitemap.EntryConfig{
			{URL: "https://example.com/ok"},
			{ChangeFreq: sitemap.Daily},
		},
	}

	_, err := buildEntries(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, sitemap.ErrMissingURL)
	assert.Contains(t, err.Error(), "entry 2")
	assert.Equal(t, sitemap.ExitValidationError, sitemap.ExitCodeForError(err))
}

func TestGenerate_EndToEnd(t *testing.T) {
	dir := writeProject(t, `
hostname: https://example.com
entries:
  - url: /
    changefreq: daily
    priority: 0.8
  - url: /about
    images:
      - https://example.com/about.png
`)

	rootCmd.SetArgs([]string{"generate", dir})
	require.NoError(t, rootCmd.Execute())

	data, err := os.ReadFile(filepath.Join(dir, "sitemap.xml"))
	require.NoError(t, err)
	xml := string(data)
	assert.Contains(t, xml, `<?xml version="1.0" encoding="UTF-8"?>`)
	assert.Contains(t, xml, "<loc>https://example.com/</loc>")
	assert.Contains(t, xml, "<loc>https://example.com/about</loc>")
	assert.Contains(t, xml, `xmlns:image="`+sitemap.NamespaceImage+`"`)
	assert.Contains(t, xml, "<image:loc>https://example.com/about.png</image:loc>")
}

func TestGenerate_OutputFlagOverridesConfig(t *testing.T) {
	dir := writeProject(t, "entries:\n  - url: https://example.com/\n")
	out := filepath.Join(t.TempDir(), "custom.xml")

	rootCmd.SetArgs([]string{"generate", dir, "--output", out})
	require.NoError(t, rootCmd.Execute())

	_, err := os.Stat(out)
	assert.NoError(t, err)
}

func TestGenerate_InvalidEntryFails(t *testing.T) {
	dir := writeProject(t, "entries:\n  - url: https://example.com/\n    priority: 9.5\n")

	rootCmd.SetArgs([]string{"generate", dir})
	err := rootCmd.Execute()
	assert.ErrorIs(t, err, sitemap.ErrInvalidPriority)

	_, statErr := os.Stat(filepath.Join(dir, "sitemap.xml"))
	assert.True(t, os.IsNotExist(statErr), "no output on validation failure")
}

func TestValidate_ReportsInvalidEntries(t *testing.T) {
	dir := writeProject(t, `
entries:
  - url: https://example.com/ok
  - url: https://example.com/bad
    changefreq: sometimes
`)

	rootCmd.SetArgs([]string{"validate", dir})
	err := rootCmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, sitemap.ErrInvalidChangeFreq)
	assert.Contains(t, err.Error(), "1 of 2 entries invalid")
}

func TestValidate_AllValid(t *testing.T) {
	dir := writeProject(t, `
entries:
  - url: https://example.com/
    links:
      - lang: de
        url: https://example.com/de
`)

	rootCmd.SetArgs([]string{"validate", dir})
	assert.NoError(t, rootCmd.Execute())
}
