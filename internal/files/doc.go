// Package files provides file-related functionality organized into sub-packages:
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - scanner: Page discovery under a document root
//
// # Usage
//
//	import (
//	    "github.com/vvka-141/sitemapper/internal/files/filesystem"
//	    "github.com/vvka-141/sitemapper/internal/files/scanner"
//	)
//
//	pageScanner := scanner.NewScanner()
//	pages, err := pageScanner.ScanDirectory("/var/www/html")
package files
