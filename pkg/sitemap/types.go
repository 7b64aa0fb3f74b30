package sitemap

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ChangeFreq is the crawler hint for how often a URL's content changes.
type ChangeFreq string

// Valid changefreq values defined by the sitemap protocol.
const (
	Always  ChangeFreq = "always"
	Hourly  ChangeFreq = "hourly"
	Daily   ChangeFreq = "daily"
	Weekly  ChangeFreq = "weekly"
	Monthly ChangeFreq = "monthly"
	Yearly  ChangeFreq = "yearly"
	Never   ChangeFreq = "never"
)

func (c ChangeFreq) valid() bool {
	switch c {
	case Always, Hourly, Daily, Weekly, Monthly, Yearly, Never:
		return true
	}
	return false
}

// EntryConfig describes one sitemap URL entry. URL is the only required field.
//
// The last-modification timestamp may come from three sources, preferred in
// this order: LastModFile (the file's modification time), LastMod (a date-like
// string, parsed), LastModISO (passed through untouched). When none is set the
// lastmod element is omitted.
//
// The yaml tags double as the sitemapgen.yaml wire format.
type EntryConfig struct {
	URL string `yaml:"url"`

	LastModFile string `yaml:"lastmod_file,omitempty"`
	LastMod     string `yaml:"lastmod,omitempty"`
	LastModISO  string `yaml:"lastmod_iso,omitempty"`

	// Realtime keeps the full time-of-day resolution for file-derived
	// timestamps. Without it, LastModFile yields a date-only lastmod.
	Realtime bool `yaml:"lastmod_realtime,omitempty"`

	ChangeFreq ChangeFreq `yaml:"changefreq,omitempty"`
	Priority   *float64   `yaml:"priority,omitempty"`

	Images []Image `yaml:"images,omitempty"`
	Videos []Video `yaml:"videos,omitempty"`
	Links  []Link  `yaml:"links,omitempty"`
	News   *News   `yaml:"news,omitempty"`

	Expires     string  `yaml:"expires,omitempty"`
	AndroidLink string  `yaml:"android_link,omitempty"`
	Mobile      *Mobile `yaml:"mobile,omitempty"`
	AMPLink     string  `yaml:"amp_link,omitempty"`

	// Safe suppresses the changefreq and priority domain checks at
	// construction. The fields are still emitted if present, except that an
	// out-of-range priority is never written to the output.
	Safe bool `yaml:"safe,omitempty"`

	// CDATA emits the location as unescaped character data instead of
	// ordinary escaped text.
	CDATA bool `yaml:"cdata,omitempty"`
}

// Priority returns a pointer to p, for literal EntryConfig construction.
func Priority(p float64) *float64 { return &p }

// Duration returns a pointer to seconds, for literal Video construction.
func Duration(seconds int) *int { return &seconds }

// Image is one image:image extension block. In YAML an image may be given as
// a bare string, which is treated as the location.
type Image struct {
	URL         string `yaml:"url"`
	Caption     string `yaml:"caption,omitempty"`
	GeoLocation string `yaml:"geo_location,omitempty"`
	Title       string `yaml:"title,omitempty"`
	License     string `yaml:"license,omitempty"`
}

// UnmarshalYAML accepts either a scalar location string or a full mapping.
func (i *Image) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		i.URL = value.Value
		return nil
	}
	type plain Image
	return value.Decode((*plain)(i))
}

// TagList holds video tags. In YAML a scalar yields a single tag and a
// sequence yields one tag per element, preserving order.
type TagList []string

// UnmarshalYAML accepts either a scalar tag or a sequence of tags.
func (t *TagList) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*t = TagList{value.Value}
		return nil
	}
	var tags []string
	if err := value.Decode(&tags); err != nil {
		return err
	}
	*t = TagList(tags)
	return nil
}

// Video is one video:video extension block. ThumbnailLoc, Title and
// Description are required; everything else is optional and omitted from the
// output when empty.
type Video struct {
	ThumbnailLoc string `yaml:"thumbnail_loc"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`

	ContentLoc string `yaml:"content_loc,omitempty"`
	PlayerLoc  string `yaml:"player_loc,omitempty"`
	// Autoplay becomes the autoplay attribute on the player location.
	Autoplay string `yaml:"autoplay,omitempty"`

	// Duration is in seconds and must lie within [0, 28800].
	Duration *int `yaml:"duration,omitempty"`

	ExpirationDate  string   `yaml:"expiration_date,omitempty"`
	Rating          *float64 `yaml:"rating,omitempty"`
	ViewCount       *int     `yaml:"view_count,omitempty"`
	PublicationDate string   `yaml:"publication_date,omitempty"`

	// FamilyFriendly, RequiresSubscription and Live take "yes" or "no".
	FamilyFriendly       string `yaml:"family_friendly,omitempty"`
	RequiresSubscription string `yaml:"requires_subscription,omitempty"`
	Live                 string `yaml:"live,omitempty"`

	Tags     TagList `yaml:"tags,omitempty"`
	Category string  `yaml:"category,omitempty"`

	Restriction             string `yaml:"restriction,omitempty"`
	RestrictionRelationship string `yaml:"restriction_relationship,omitempty"`

	GalleryLoc   string `yaml:"gallery_loc,omitempty"`
	GalleryTitle string `yaml:"gallery_title,omitempty"`

	Price           string `yaml:"price,omitempty"`
	PriceCurrency   string `yaml:"price_currency,omitempty"`
	PriceType       string `yaml:"price_type,omitempty"`
	PriceResolution string `yaml:"price_resolution,omitempty"`

	Uploader string `yaml:"uploader,omitempty"`

	Platform             string `yaml:"platform,omitempty"`
	PlatformRelationship string `yaml:"platform_relationship,omitempty"`
}

// News is one news:news extension block. The publication name and language,
// the publication date and the title are all required.
type News struct {
	Publication NewsPublication `yaml:"publication"`
	// Access is either "Registration" or "Subscription" when present.
	Access          string `yaml:"access,omitempty"`
	Genres          string `yaml:"genres,omitempty"`
	PublicationDate string `yaml:"publication_date"`
	Title           string `yaml:"title"`
	Keywords        string `yaml:"keywords,omitempty"`
	StockTickers    string `yaml:"stock_tickers,omitempty"`
}

// NewsPublication identifies the publishing outlet.
type NewsPublication struct {
	Name     string `yaml:"name"`
	Language string `yaml:"language"`
}

// Link is one alternate-language (hreflang) link.
type Link struct {
	Lang string `yaml:"lang"`
	URL  string `yaml:"url"`
}

// Mobile marks the entry as mobile content. Type, when set, names the device
// class and is attached as the type attribute on the marker element.
type Mobile struct {
	Enabled bool
	Type    string
}

// UnmarshalYAML accepts either a boolean or a device-type string.
func (m *Mobile) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("mobile must be a boolean or a device-type string")
	}
	var enabled bool
	if err := value.Decode(&enabled); err == nil {
		m.Enabled = enabled
		return nil
	}
	m.Enabled = true
	m.Type = value.Value
	return nil
}
