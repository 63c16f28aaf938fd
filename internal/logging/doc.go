// Package logging provides concrete implementations of the sitemap.Logger interface.
//
// Available implementations:
//   - ConsoleLogger: Writes prefixed messages to stderr (or any io.Writer)
//   - NullLogger: Discards all messages, the library default
//
// All logger implementations are safe for concurrent use by multiple goroutines.
package logging
