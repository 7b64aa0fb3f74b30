package sitemap

import (
	"fmt"
	"time"

	"github.com/vvka-141/sitemapgen/internal/filesystem"
)

// w3cDate is the date-only form of the W3C datetime profile used by the
// sitemap protocol.
const w3cDate = "2006-01-02"

// dateLayouts are the layouts accepted for date-like lastmod and expires
// strings, tried in order. Inputs are parsed in UTC so the same string yields
// the same normalized timestamp on every host, whatever its local timezone.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	w3cDate,
	"2006/01/02",
	time.RFC1123Z,
	time.RFC1123,
}

// parseDate parses a date-like string against the accepted layouts.
func parseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q", value)
}

// normalizeLastMod derives the single normalized lastmod string for an entry.
// Precedence: file modification time, then parsed date string, then ISO
// passthrough. An empty result means the entry omits lastmod; that is not an
// error. Resolving the file is the one blocking call made during entry
// construction, and a stat failure propagates as an I/O error rather than a
// validation error.
func normalizeLastMod(cfg *EntryConfig, fs filesystem.Provider) (string, error) {
	switch {
	case cfg.LastModFile != "":
		info, err := fs.Stat(cfg.LastModFile)
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", cfg.LastModFile, err)
		}
		mod := info.ModTime().UTC()
		if cfg.Realtime {
			return mod.Format(time.RFC3339), nil
		}
		return mod.Format(w3cDate), nil

	case cfg.LastMod != "":
		t, err := parseDate(cfg.LastMod)
		if err != nil {
			return "", &ValidationError{Field: "lastmod", Value: cfg.LastMod, Err: ErrInvalidLastMod}
		}
		return t.Format(time.RFC3339), nil

	case cfg.LastModISO != "":
		return cfg.LastModISO, nil
	}
	return "", nil
}
