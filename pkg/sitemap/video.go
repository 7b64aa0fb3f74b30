package sitemap

import (
	"strconv"
	"unicode/utf8"
)

// buildVideo validates one video sub-schema and emits its video:video block.
// Nothing is emitted for a video that fails validation.
func buildVideo(b XMLBuilder, v *Video) error {
	if v.ThumbnailLoc == "" || v.Title == "" || v.Description == "" {
		return &ValidationError{Field: "video", Err: ErrInvalidVideoFormat}
	}
	if utf8.RuneCountInString(v.Description) > MaxVideoDescription {
		return &ValidationError{
			Field:   "video:description",
			Pattern: "at most " + strconv.Itoa(MaxVideoDescription) + " characters",
			Err:     ErrInvalidVideoDescription,
		}
	}
	// The duration check is a gate, not a clamp: an in-range value passes
	// through unchanged.
	if d := v.Duration; d != nil && (*d < 0 || *d > MaxVideoDuration) {
		return &ValidationError{
			Field:   "video:duration",
			Value:   strconv.Itoa(*d),
			Pattern: "[0, " + strconv.Itoa(MaxVideoDuration) + "]",
			Err:     ErrInvalidVideoDuration,
		}
	}

	for _, check := range []struct{ key, value string }{
		{"video:family_friendly", v.FamilyFriendly},
		{"video:requires_subscription", v.RequiresSubscription},
		{"video:live", v.Live},
	} {
		if err := checkValue(check.key, check.value); err != nil {
			return err
		}
	}

	src := map[string]string{
		"player_loc:autoplay":      v.Autoplay,
		"restriction:relationship": v.RestrictionRelationship,
		"gallery_loc:title":        v.GalleryTitle,
		"price:resolution":         v.PriceResolution,
		"price:currency":           v.PriceCurrency,
		"price:type":               v.PriceType,
		"platform:relationship":    v.PlatformRelationship,
	}
	playerAttrs, err := extractAttrs(src, "player_loc:autoplay")
	if err != nil {
		return err
	}
	restrictionAttrs, err := extractAttrs(src, "restriction:relationship")
	if err != nil {
		return err
	}
	galleryAttrs, err := extractAttrs(src, "gallery_loc:title")
	if err != nil {
		return err
	}
	priceAttrs, err := extractAttrs(src, "price:resolution", "price:currency", "price:type")
	if err != nil {
		return err
	}
	platformAttrs, err := extractAttrs(src, "platform:relationship")
	if err != nil {
		return err
	}

	b.Start("video:video")
	defer b.End()

	textElement(b, "video:thumbnail_loc", v.ThumbnailLoc)
	cdataElement(b, "video:title", v.Title)
	cdataElement(b, "video:description", v.Description)

	if v.ContentLoc != "" {
		textElement(b, "video:content_loc", v.ContentLoc)
	}
	if v.PlayerLoc != "" {
		b.Start("video:player_loc")
		setAttrs(b, playerAttrs, "autoplay")
		b.Text(v.PlayerLoc)
		b.End()
	}
	if v.Duration != nil {
		textElement(b, "video:duration", strconv.Itoa(*v.Duration))
	}
	if v.ExpirationDate != "" {
		textElement(b, "video:expiration_date", v.ExpirationDate)
	}
	if v.Rating != nil {
		textElement(b, "video:rating", strconv.FormatFloat(*v.Rating, 'f', -1, 64))
	}
	if v.ViewCount != nil {
		textElement(b, "video:view_count", strconv.Itoa(*v.ViewCount))
	}
	if v.PublicationDate != "" {
		textElement(b, "video:publication_date", v.PublicationDate)
	}
	if v.FamilyFriendly != "" {
		textElement(b, "video:family_friendly", v.FamilyFriendly)
	}
	for _, tag := range v.Tags {
		textElement(b, "video:tag", tag)
	}
	if v.Category != "" {
		textElement(b, "video:category", v.Category)
	}
	if v.Restriction != "" {
		b.Start("video:restriction")
		setAttrs(b, restrictionAttrs, "relationship")
		b.Text(v.Restriction)
		b.End()
	}
	if v.GalleryLoc != "" {
		b.Start("video:gallery_loc")
		setAttrs(b, galleryAttrs, "title")
		b.Text(v.GalleryLoc)
		b.End()
	}
	if v.Price != "" {
		b.Start("video:price")
		setAttrs(b, priceAttrs, "resolution", "currency", "type")
		b.Text(v.Price)
		b.End()
	}
	if v.RequiresSubscription != "" {
		textElement(b, "video:requires_subscription", v.RequiresSubscription)
	}
	if v.Uploader != "" {
		textElement(b, "video:uploader", v.Uploader)
	}
	if v.Platform != "" {
		b.Start("video:platform")
		setAttrs(b, platformAttrs, "relationship")
		b.Text(v.Platform)
		b.End()
	}
	if v.Live != "" {
		textElement(b, "video:live", v.Live)
	}
	return nil
}
