package sitemap

// Exit codes for semantic error classification, following Unix/GNU
// conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Generation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid or missing project configuration
	ExitValidationError = 11 // An entry violated the sitemap protocol
)

// Limits imposed by the video extension schema.
const (
	// MaxVideoDuration is the longest accepted video duration in seconds
	// (eight hours, inclusive).
	MaxVideoDuration = 28800

	// MaxVideoDescription is the longest accepted video description in
	// characters.
	MaxVideoDescription = 2048
)

// Namespace URIs for the sitemap protocol and its vendor extensions.
const (
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"
	NamespaceImage   = "http://www.google.com/schemas/sitemap-image/1.1"
	NamespaceVideo   = "http://www.google.com/schemas/sitemap-video/1.1"
	NamespaceNews    = "http://www.google.com/schemas/sitemap-news/0.9"
	NamespaceMobile  = "http://www.google.com/schemas/sitemap-mobile/1.0"
	NamespaceXHTML   = "http://www.w3.org/1999/xhtml"
)
