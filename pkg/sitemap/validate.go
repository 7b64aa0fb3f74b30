package sitemap

import (
	"regexp"
	"strings"
)

// yesNoPattern covers the boolean-like flags of the video extension schema.
var yesNoPattern = regexp.MustCompile(`^(yes|no)$`)

// attrValidators registers the value-domain pattern for each namespaced key
// of the vendor extension schemas. Keys use the category:subkey form, where
// the category is the owning element and the subkey the attribute or flag
// name. A key without an entry here accepts any value.
var attrValidators = map[string]*regexp.Regexp{
	"price:currency":              regexp.MustCompile(`^[A-Z]{3}$`),
	"price:type":                  regexp.MustCompile(`(?i)^(rent|purchase)$`),
	"price:resolution":            regexp.MustCompile(`(?i)^(hd|sd)$`),
	"restriction:relationship":    regexp.MustCompile(`^(allow|deny)$`),
	"platform:relationship":       regexp.MustCompile(`^(allow|deny)$`),
	"video:family_friendly":       yesNoPattern,
	"video:requires_subscription": yesNoPattern,
	"video:live":                  yesNoPattern,
	"news:access":                 regexp.MustCompile(`^(Registration|Subscription)$`),
}

// checkValue tests a value against the pattern registered for key. Empty
// values and keys without a registered pattern pass. These checks apply
// whenever the value is present, regardless of the Safe flag.
func checkValue(key, value string) error {
	if value == "" {
		return nil
	}
	pattern, ok := attrValidators[key]
	if !ok || pattern.MatchString(value) {
		return nil
	}
	return &ValidationError{
		Field:   key,
		Value:   value,
		Pattern: pattern.String(),
		Err:     ErrInvalidAttrValue,
	}
}

// extractAttrs collects an attribute mapping for an XML element from the
// source mapping. Each key must be of the exact two-segment category:subkey
// form; the resulting mapping is keyed by the bare subkey. Keys absent from
// the source, or present with an empty value, are skipped. A malformed key is
// rejected outright and a value failing its registered pattern is rejected
// with the expected pattern attached.
func extractAttrs(src map[string]string, keys ...string) (map[string]string, error) {
	attrs := make(map[string]string)
	for _, key := range keys {
		value, ok := src[key]
		if !ok || value == "" {
			continue
		}
		parts := strings.Split(key, ":")
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, &ValidationError{Field: key, Err: ErrInvalidAttrKey}
		}
		if err := checkValue(key, value); err != nil {
			return nil, err
		}
		attrs[parts[1]] = value
	}
	return attrs, nil
}

// setAttrs applies extracted attributes to the open element in the given
// order. Attribute order is fixed by the caller, not by map iteration.
func setAttrs(b XMLBuilder, attrs map[string]string, names ...string) {
	for _, name := range names {
		if value, ok := attrs[name]; ok {
			b.Attr(name, value)
		}
	}
}
