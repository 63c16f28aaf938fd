package scanner

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/vvka-141/sitemapper/internal/files/filesystem"
)

// DefaultExtensions are the page types scanned when none are given.
var DefaultExtensions = []string{".html", ".htm"}

// indexNames are served as their directory URL.
var indexNames = []string{"index.html", "index.htm"}

// Page is a file that is published under the document root.
type Page struct {
	Path       string // Slash-separated path relative to the scanned root
	URLPath    string // Path component of the public URL, always starting with "/"
	SizeBytes  int64
	ModifiedAt time.Time
}

// Scanner discovers pages in a directory tree.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider is also thread-safe.
type Scanner struct {
	fsProvider filesystem.FileSystemProvider
	extensions []string
}

// NewScanner creates a scanner on the OS filesystem.
// Extensions are matched case-insensitively; none means DefaultExtensions.
func NewScanner(extensions ...string) *Scanner {
	return NewScannerWithFS(filesystem.NewOSFileSystem(), extensions...)
}

// NewScannerWithFS creates a scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(fsProvider filesystem.FileSystemProvider, extensions ...string) *Scanner {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	return &Scanner{
		fsProvider: fsProvider,
		extensions: normalizeExtensions(extensions),
	}
}

// ScanDirectory recursively scans root and returns its pages in walk order.
// Hidden files and anything inside hidden directories are skipped.
func (s *Scanner) ScanDirectory(root string) ([]Page, error) {
	info, err := s.fsProvider.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("failed to stat document root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("document root is not a directory: %s", root)
	}

	dir, err := s.fsProvider.Open(root)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory: %w", err)
	}

	var pages []Page
	err = dir.Walk(func(file filesystem.File, err error) error {
		if err != nil {
			return fmt.Errorf("error walking path: %w", err)
		}

		info := file.Info()
		if info.IsDir() {
			return nil
		}

		relPath := filepath.ToSlash(file.RelativePath())
		if isHidden(relPath) {
			return nil
		}
		if !lo.Contains(s.extensions, strings.ToLower(path.Ext(relPath))) {
			return nil
		}

		pages = append(pages, Page{
			Path:       relPath,
			URLPath:    URLPath(relPath),
			SizeBytes:  info.Size(),
			ModifiedAt: info.ModTime(),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pages, nil
}

// URLPath maps a slash-separated relative file path to the path it is served at.
// Index files map to their directory: "blog/index.html" becomes "/blog/".
func URLPath(relPath string) string {
	dir, name := path.Split(relPath)
	if lo.Contains(indexNames, strings.ToLower(name)) {
		return "/" + dir
	}
	return "/" + relPath
}

func isHidden(relPath string) bool {
	return lo.SomeBy(strings.Split(relPath, "/"), func(segment string) bool {
		return strings.HasPrefix(segment, ".") && segment != "." && segment != ".."
	})
}

func normalizeExtensions(extensions []string) []string {
	return lo.Uniq(lo.Map(extensions, func(ext string, _ int) string {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		return ext
	}))
}
