package sitemap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vvka-141/sitemapgen/pkg/sitemap"
)

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, sitemap.ExitSuccess},
		{"general error", errors.New("something went wrong"), sitemap.ExitGeneralError},
		{"unknown flag", errors.New("unknown flag --foo"), sitemap.ExitUsageError},
		{"unknown shorthand flag", errors.New("unknown shorthand flag: 'x'"), sitemap.ExitUsageError},
		{"unknown command", errors.New(`unknown command "generte" for "sitemapgen"`), sitemap.ExitUsageError},
		{"invalid argument", errors.New(`invalid argument "abc" for "--output"`), sitemap.ExitUsageError},
		{"config error", sitemap.ErrInvalidConfig, sitemap.ExitConfigError},
		{"wrapped config error", fmt.Errorf("%w: no file", sitemap.ErrInvalidConfig), sitemap.ExitConfigError},
		{"missing url", sitemap.ErrMissingURL, sitemap.ExitValidationError},
		{"invalid priority", sitemap.ErrInvalidPriority, sitemap.ExitValidationError},
		{"wrapped validation error", fmt.Errorf("entry 3: %w", sitemap.ErrInvalidChangeFreq), sitemap.ExitValidationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sitemap.ExitCodeForError(tt.err); got != tt.want {
				t.Errorf("ExitCodeForError(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestValidationError_MessageAndUnwrap(t *testing.T) {
	err := &sitemap.ValidationError{
		Field:   "price:currency",
		Value:   "usd",
		Pattern: "^[A-Z]{3}$",
		Err:     sitemap.ErrInvalidAttrValue,
	}

	if !errors.Is(err, sitemap.ErrInvalidAttrValue) {
		t.Error("expected errors.Is to match the wrapped sentinel")
	}
	want := `invalid attribute value [field: price:currency]: "usd" (expected ^[A-Z]{3}$)`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
