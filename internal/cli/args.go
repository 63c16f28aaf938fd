package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

// RequireFile validates that exactly one <file> argument is provided.
func RequireFile(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file>

Usage: %s

Example:
  %s public/sitemap.xml`, sitemap.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: accepts 1 arg(s), received %d", sitemap.ErrUsage, len(args))
	}
	return nil
}

// RequireFileAndURLs validates a <file> argument followed by at least one URL.
func RequireFileAndURLs(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`%w: missing required argument: <file>

Usage: %s

Example:
  %s public/sitemap.xml https://example.com/about/`, sitemap.ErrUsage, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) < 2 {
		return fmt.Errorf(`%w: missing required argument: <url>

Usage: %s

Example:
  %s %s https://example.com/about/`, sitemap.ErrUsage, cmd.UseLine(), cmd.CommandPath(), args[0])
	}
	return nil
}
