package sitemap

import "time"

// buildImage emits one image:image block. Multiple images on an entry become
// multiple sibling blocks, preserving input order.
func buildImage(b XMLBuilder, img *Image) {
	b.Start("image:image")
	textElement(b, "image:loc", img.URL)
	if img.Caption != "" {
		cdataElement(b, "image:caption", img.Caption)
	}
	if img.GeoLocation != "" {
		textElement(b, "image:geo_location", img.GeoLocation)
	}
	if img.Title != "" {
		cdataElement(b, "image:title", img.Title)
	}
	if img.License != "" {
		textElement(b, "image:license", img.License)
	}
	b.End()
}

// buildAlternateLink emits one xhtml:link with relation "alternate". The
// hreflang attribute is attached only when a language code is given, so the
// same element serves both hreflang alternates and the android deep link.
func buildAlternateLink(b XMLBuilder, lang, href string) {
	b.Start("xhtml:link")
	b.Attr("rel", "alternate")
	if lang != "" {
		b.Attr("hreflang", lang)
	}
	b.Attr("href", href)
	b.End()
}

// buildAMPLink emits the xhtml:link with relation "amphtml".
func buildAMPLink(b XMLBuilder, href string) {
	b.Start("xhtml:link")
	b.Attr("rel", "amphtml")
	b.Attr("href", href)
	b.End()
}

// buildMobile emits the mobile:mobile marker, with a type attribute only when
// a device type was given.
func buildMobile(b XMLBuilder, deviceType string) {
	b.Start("mobile:mobile")
	if deviceType != "" {
		b.Attr("type", deviceType)
	}
	b.End()
}

// buildExpires parses the expires value and re-emits it as a strict RFC 3339
// string whatever its input layout. An unparseable value is a validation
// error, never malformed output.
func buildExpires(b XMLBuilder, value string) error {
	t, err := parseDate(value)
	if err != nil {
		return &ValidationError{Field: "expires", Value: value, Err: ErrInvalidExpires}
	}
	textElement(b, "expires", t.Format(time.RFC3339))
	return nil
}
