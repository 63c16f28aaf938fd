package sitemap

// Logger provides a pluggable logging interface for sitemap operations.
// Implementations used from several goroutines must be safe for concurrent use.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...interface{})

	// Info logs informational messages about normal operations.
	Info(format string, args ...interface{})

	// Error logs error messages.
	Error(format string, args ...interface{})
}

// FileSystem is the storage collaborator used by documents to load and store files.
type FileSystem interface {
	// ReadFile reads the whole file at path.
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path with data, creating it if needed.
	WriteFile(path string, data []byte) error

	// Exists reports whether a regular file exists at path.
	Exists(path string) bool
}
