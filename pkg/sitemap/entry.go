package sitemap

import (
	"strconv"

	"github.com/vvka-141/sitemapgen/internal/filesystem"
)

// Entry is one validated, immutable sitemap URL entry. Construct it with
// NewEntry; the zero value is not usable.
type Entry struct {
	cfg      EntryConfig
	lastmod  string
	priority string // formatted to one decimal place, empty when omitted
}

// Option configures entry construction.
type Option func(*entryOptions)

type entryOptions struct {
	fs filesystem.Provider
}

// WithFileSystem overrides the filesystem used to resolve LastModFile
// modification times. The default is the OS filesystem.
func WithFileSystem(fs filesystem.Provider) Option {
	return func(o *entryOptions) { o.fs = fs }
}

// NewEntry validates the scalar fields of cfg and normalizes them into an
// Entry. An entry without a URL cannot exist. Unless cfg.Safe is set, a
// changefreq outside the protocol enum or a priority outside [0.0, 1.0] is
// rejected here; Safe suppresses exactly those two checks and nothing else.
func NewEntry(cfg EntryConfig, opts ...Option) (*Entry, error) {
	if cfg.URL == "" {
		return nil, &ValidationError{Field: "url", Err: ErrMissingURL}
	}

	o := entryOptions{fs: filesystem.NewOSFileSystem()}
	for _, opt := range opts {
		opt(&o)
	}

	if !cfg.Safe {
		if cfg.ChangeFreq != "" && !cfg.ChangeFreq.valid() {
			return nil, &ValidationError{
				Field: "changefreq",
				Value: string(cfg.ChangeFreq),
				Err:   ErrInvalidChangeFreq,
			}
		}
		if p := cfg.Priority; p != nil && (*p < 0 || *p > 1) {
			return nil, &ValidationError{
				Field:   "priority",
				Value:   strconv.FormatFloat(*p, 'f', -1, 64),
				Pattern: "[0.0, 1.0]",
				Err:     ErrInvalidPriority,
			}
		}
	}

	lastmod, err := normalizeLastMod(&cfg, o.fs)
	if err != nil {
		return nil, err
	}

	e := &Entry{cfg: cfg, lastmod: lastmod}
	// An out-of-range priority (reachable only under Safe) is never emitted.
	if p := cfg.Priority; p != nil && *p >= 0 && *p <= 1 {
		e.priority = strconv.FormatFloat(*p, 'f', 1, 64)
	}
	return e, nil
}

// URL returns the entry's location.
func (e *Entry) URL() string { return e.cfg.URL }

// LastMod returns the normalized lastmod string, empty when omitted.
func (e *Entry) LastMod() string { return e.lastmod }

// Build emits the entry's url element and all of its children on b, in the
// fixed order location, lastmod, changefreq, priority, images, videos,
// alternate links, expires, android alternate, mobile, news, amp alternate.
// Extension sub-schemas are validated before any of their elements are
// emitted. Build does not mutate the entry and may be repeated; every run
// derives the same output from the same normalized state.
func (e *Entry) Build(b XMLBuilder) error {
	b.Start("url")
	defer b.End()

	b.Start("loc")
	if e.cfg.CDATA {
		b.Raw(e.cfg.URL)
	} else {
		b.Text(e.cfg.URL)
	}
	b.End()

	if e.lastmod != "" {
		textElement(b, "lastmod", e.lastmod)
	}
	if e.cfg.ChangeFreq != "" {
		textElement(b, "changefreq", string(e.cfg.ChangeFreq))
	}
	if e.priority != "" {
		textElement(b, "priority", e.priority)
	}

	for i := range e.cfg.Images {
		buildImage(b, &e.cfg.Images[i])
	}
	for i := range e.cfg.Videos {
		if err := buildVideo(b, &e.cfg.Videos[i]); err != nil {
			return err
		}
	}
	for _, link := range e.cfg.Links {
		buildAlternateLink(b, link.Lang, link.URL)
	}

	if e.cfg.Expires != "" {
		if err := buildExpires(b, e.cfg.Expires); err != nil {
			return err
		}
	}
	if e.cfg.AndroidLink != "" {
		buildAlternateLink(b, "", e.cfg.AndroidLink)
	}
	if m := e.cfg.Mobile; m != nil && m.Enabled {
		buildMobile(b, m.Type)
	}
	if e.cfg.News != nil {
		if err := buildNews(b, e.cfg.News); err != nil {
			return err
		}
	}
	if e.cfg.AMPLink != "" {
		buildAMPLink(b, e.cfg.AMPLink)
	}
	return nil
}
