package sitemap

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/vvka-141/sitemapper/internal/files/filesystem"
	"github.com/vvka-141/sitemapper/internal/logging"
)

// Option configures a Sitemap or an Index at construction time.
type Option func(*options)

type options struct {
	compressed   bool
	documentRoot string
	read         bool
	maxURLs      int
	maxBytes     int64
	fs           FileSystem
	logger       Logger
}

func defaultOptions() options {
	return options{
		read:     true,
		maxURLs:  DefaultMaxURLs,
		maxBytes: DefaultMaxBytes,
	}
}

// WithGzip enables gzip output and the ".gz" file name suffix.
func WithGzip(enabled bool) Option {
	return func(o *options) { o.compressed = enabled }
}

// WithDocumentRoot sets the directory that maps to the site's URL root.
// An empty root means "use $DOCUMENT_ROOT".
func WithDocumentRoot(root string) Option {
	return func(o *options) { o.documentRoot = root }
}

// WithRead controls whether an existing file is loaded on construction. Default true.
func WithRead(read bool) Option {
	return func(o *options) { o.read = read }
}

// WithMaxURLs bounds the number of entries per sitemap file.
func WithMaxURLs(n int) Option {
	return func(o *options) { o.maxURLs = n }
}

// WithMaxBytes sets the size reported as exceeded after serialization.
func WithMaxBytes(n int64) Option {
	return func(o *options) { o.maxBytes = n }
}

// WithFileSystem replaces the OS filesystem, typically with an in-memory one in tests.
func WithFileSystem(fs FileSystem) Option {
	return func(o *options) { o.fs = fs }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l Logger) Option {
	return func(o *options) { o.logger = l }
}

// resolve applies opts over the defaults and validates the result.
func resolve(path string, opts []Option) (options, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var errs []error
	if strings.TrimSpace(path) == "" {
		errs = append(errs, fmt.Errorf("file path is required: %w", ErrInvalidConfig))
	} else if _, name := filepath.Split(path); name == "" || name == "." || name == ".." {
		errs = append(errs, fmt.Errorf("file path %q has no file name: %w", path, ErrInvalidConfig))
	}
	if o.maxURLs < 1 {
		errs = append(errs, fmt.Errorf("max URLs must be at least 1, got %d: %w", o.maxURLs, ErrInvalidConfig))
	}
	if o.maxBytes < 1 {
		errs = append(errs, fmt.Errorf("max bytes must be at least 1, got %d: %w", o.maxBytes, ErrInvalidConfig))
	}
	if err := errors.Join(errs...); err != nil {
		return o, err
	}

	o.documentRoot = resolveDocumentRoot(o.documentRoot)
	if o.fs == nil {
		o.fs = filesystem.NewOSFileSystem()
	}
	if o.logger == nil {
		o.logger = logging.NewNullLogger()
	}
	return o, nil
}

func resolveDocumentRoot(root string) string {
	if root == "" {
		return os.Getenv(DocumentRootEnv)
	}
	return root
}

// writeFile stores data at path, gzip-compressing it first when requested.
func writeFile(fs FileSystem, path string, data []byte, compressed bool) error {
	if compressed {
		packed, err := Compress(data)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
		}
		data = packed
	}
	if err := fs.WriteFile(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrWriteFailed, path, err)
	}
	return nil
}

// readDocument loads and parses path, inflating gzip content whatever the extension says.
func readDocument(fs FileSystem, path string) (*parsedDocument, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, err
	}
	data, err = Decompress(data)
	if err != nil {
		return nil, err
	}
	return decodeDocument(data)
}
