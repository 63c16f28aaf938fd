package sitemap

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Command completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or options
	ExitInvalidLocation = 11 // A supplied URL failed validation
	ExitWriteFailed     = 12 // Writing a sitemap or index file failed
)

const (
	// DefaultMaxURLs is the protocol limit of URLs in a single sitemap file.
	DefaultMaxURLs = 50000

	// DefaultMaxBytes is the protocol limit of uncompressed bytes in a single sitemap file.
	// Chunk boundaries do not depend on it; oversized chunks are only reported.
	DefaultMaxBytes int64 = 10 * 1024 * 1024

	// DefaultPriority is used when a priority is missing, non-numeric or outside [0, 1].
	DefaultPriority = "0.5"

	// DocumentRootEnv is the environment variable consulted when no document root is given.
	DocumentRootEnv = "DOCUMENT_ROOT"

	// NamespaceSitemap is the default namespace of urlset and sitemapindex documents.
	NamespaceSitemap = "http://www.sitemaps.org/schemas/sitemap/0.9"

	// NamespaceXHTML is declared on urlset when any entry carries alternates.
	NamespaceXHTML = "http://www.w3.org/1999/xhtml"

	// ExtensionXML and ExtensionGzip are the file name tokens managed by path normalization.
	ExtensionXML  = "xml"
	ExtensionGzip = "gz"
)
