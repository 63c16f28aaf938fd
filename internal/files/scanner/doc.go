// Package scanner discovers publishable pages under a document root.
//
// The scanner package is responsible for:
//   - Recursively discovering page files by extension
//   - Mapping each file to the URL path it is served at
//   - Reporting modification times for use as lastmod
//
// The scanner is filesystem-agnostic through the filesystem.FileSystemProvider
// interface, enabling both production use with the OS filesystem and testing
// with in-memory filesystems.
package scanner
