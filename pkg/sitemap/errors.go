package sitemap

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for every validation failure this package can produce.
// All of them are immediate, unrecoverable rejections of the offending
// configuration; callers distinguish them with errors.Is.
//
// Example:
//
//	entry, err := sitemap.NewEntry(cfg)
//	if errors.Is(err, sitemap.ErrInvalidPriority) {
//	    // priority outside [0.0, 1.0]
//	}
var (
	// ErrMissingURL indicates the entry has no location.
	ErrMissingURL = errors.New("missing url")

	// ErrInvalidChangeFreq indicates a changefreq outside the protocol enum.
	ErrInvalidChangeFreq = errors.New("invalid changefreq value")

	// ErrInvalidPriority indicates a priority outside [0.0, 1.0].
	ErrInvalidPriority = errors.New("invalid priority value")

	// ErrInvalidAttrKey indicates a namespaced attribute key that is not of
	// the exact form category:subkey.
	ErrInvalidAttrKey = errors.New("invalid attribute key")

	// ErrInvalidAttrValue indicates a value that fails its registered pattern.
	ErrInvalidAttrValue = errors.New("invalid attribute value")

	// ErrInvalidVideoFormat indicates a video missing thumbnail_loc, title or
	// description.
	ErrInvalidVideoFormat = errors.New("invalid video format")

	// ErrInvalidVideoDuration indicates a video duration outside [0, 28800].
	ErrInvalidVideoDuration = errors.New("invalid video duration")

	// ErrInvalidVideoDescription indicates a video description longer than
	// 2048 characters.
	ErrInvalidVideoDescription = errors.New("invalid video description")

	// ErrInvalidNewsFormat indicates news metadata missing the publication
	// name, publication language, publication date or title.
	ErrInvalidNewsFormat = errors.New("invalid news format")

	// ErrInvalidNewsAccess indicates a news access value other than
	// Registration or Subscription.
	ErrInvalidNewsAccess = errors.New("invalid news access value")

	// ErrInvalidLastMod indicates a lastmod string no known layout parses.
	ErrInvalidLastMod = errors.New("invalid lastmod value")

	// ErrInvalidExpires indicates an expires string no known layout parses.
	ErrInvalidExpires = errors.New("invalid expires value")

	// ErrInvalidConfig indicates a broken project configuration. It is wrapped
	// by the CLI layer rather than by entry validation.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ValidationError carries the field, offending value and expected pattern of a
// validation failure. It wraps one of the package sentinels, so both
// errors.Is classification and human-readable context are available.
type ValidationError struct {
	Field   string // field or namespaced key, e.g. "priority" or "price:currency"
	Value   string // offending value, empty when absence is the problem
	Pattern string // expected pattern or domain, empty when not applicable
	Err     error  // the wrapped sentinel
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := e.Err.Error()
	if e.Field != "" {
		msg = fmt.Sprintf("%s [field: %s]", msg, e.Field)
	}
	if e.Value != "" {
		msg = fmt.Sprintf("%s: %q", msg, e.Value)
	}
	if e.Pattern != "" {
		msg = fmt.Sprintf("%s (expected %s)", msg, e.Pattern)
	}
	return msg
}

// Unwrap exposes the sentinel for errors.Is.
func (e *ValidationError) Unwrap() error { return e.Err }

// validationSentinels lists every sentinel that classifies as a hard
// validation failure for exit-code mapping.
var validationSentinels = []error{
	ErrMissingURL,
	ErrInvalidChangeFreq,
	ErrInvalidPriority,
	ErrInvalidAttrKey,
	ErrInvalidAttrValue,
	ErrInvalidVideoFormat,
	ErrInvalidVideoDuration,
	ErrInvalidVideoDescription,
	ErrInvalidNewsFormat,
	ErrInvalidNewsAccess,
	ErrInvalidLastMod,
	ErrInvalidExpires,
}

// ExitCodeForError returns the appropriate process exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrInvalidConfig) {
		return ExitConfigError
	}
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return ExitValidationError
		}
	}

	// Flag and argument parsing errors surface as plain error strings from
	// the CLI framework.
	errStr := err.Error()
	if strings.Contains(errStr, "unknown flag") ||
		strings.Contains(errStr, "unknown shorthand flag") ||
		strings.Contains(errStr, "unknown command") ||
		strings.Contains(errStr, "invalid argument") ||
		strings.Contains(errStr, "required flag") ||
		strings.Contains(errStr, "accepts at most") {
		return ExitUsageError
	}

	return ExitGeneralError
}
