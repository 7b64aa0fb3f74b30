// Package sitemap builds schema-valid sitemap URL entries with support for the
// vendor extension namespaces (image, video, news, mobile and xhtml alternate
// links).
//
// # Overview
//
// A single URL entry is described declaratively by an EntryConfig and turned
// into one immutable Entry:
//
//	entry, err := sitemap.NewEntry(sitemap.EntryConfig{
//	    URL:        "https://example.com/page",
//	    ChangeFreq: sitemap.Daily,
//	    Priority:   sitemap.Priority(0.7),
//	})
//	if err != nil {
//	    // configuration violated the sitemap protocol
//	}
//	xml, err := sitemap.Render(entry)
//
// Construction validates the scalar fields (URL presence, changefreq enum,
// priority range) and normalizes the last-modification timestamp, which may be
// derived from a file's modification time, a date-like string, or an ISO
// string, in that order of precedence. Extension sub-schemas (videos, news and
// so on) are validated when the entry is built, before any of their elements
// are emitted.
//
// # Validation Rules
//
// Every failure is a hard, deterministic error; there is no warning tier.
// Errors wrap the package sentinels, so callers can classify them with
// errors.Is:
//
//	if errors.Is(err, sitemap.ErrInvalidVideoDuration) { ... }
//
// Setting Safe on an EntryConfig disables exactly two checks: the changefreq
// enum and the priority range. Every other rule, including the namespaced
// attribute value patterns, applies regardless.
//
// # XML Output
//
// Entries emit through the XMLBuilder capability, keeping this package free of
// any concrete XML library. The production implementation lives in
// internal/xmlwriter; Render and RenderURLSet are conveniences that use it.
// Building is pure: the same Entry may be built or rendered any number of
// times and produces identical output each time.
package sitemap
