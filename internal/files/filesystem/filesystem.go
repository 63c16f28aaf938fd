package filesystem

import (
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
type FileInfo = fs.FileInfo

// File represents an individual file with its metadata and content accessor
type File interface {
	// Path returns the absolute path to the file
	Path() string

	// RelativePath returns the path relative to the walked directory
	RelativePath() string

	// Info returns file metadata
	Info() FileInfo

	// ReadContent returns the file's content
	ReadContent() ([]byte, error)
}

// Directory represents a directory that can be traversed to discover files
type Directory interface {
	// Path returns the absolute path to the directory
	Path() string

	// Walk traverses the directory tree, calling fn for each file and directory.
	// If fn returns an error, walking stops.
	Walk(fn func(File, error) error) error
}

// FileSystemProvider reads and writes sitemap files and walks document roots.
// It satisfies sitemap.FileSystem.
type FileSystemProvider interface {
	// Open opens a directory at the specified path
	Open(path string) (Directory, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// WriteFile replaces the file at path with data, creating parent directories.
	WriteFile(path string, data []byte) error

	// Exists reports whether a regular file exists at path
	Exists(path string) bool

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
