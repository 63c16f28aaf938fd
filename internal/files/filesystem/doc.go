// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// Sitemap documents read, write and probe files only through FileSystemProvider,
// which keeps the document logic testable without touching disk.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
