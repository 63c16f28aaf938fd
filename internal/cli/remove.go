package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

func newRemoveCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <url>...",
		Short: "Remove URLs from a sitemap",
		Long: `Remove one or more URLs from a sitemap file and write it back.

URLs that are not present are ignored.

Example:
  sitemapper remove public/sitemap.xml https://example.com/old-page/`,
		Args: RequireFileAndURLs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRemove(cmd, g, args)
		},
	}
}

func runRemove(cmd *cobra.Command, g *globalFlags, args []string) error {
	file, urls := args[0], args[1:]

	opts, err := g.documentOptions(cmd, file)
	if err != nil {
		return err
	}
	sm, err := sitemap.New(file, opts...)
	if err != nil {
		return err
	}

	before := sm.CountItems()
	for _, u := range urls {
		if err := sm.RemoveItem(u); err != nil {
			return err
		}
	}

	if err := sm.Write(); err != nil {
		return err
	}
	printWriteSummary(cmd.OutOrStdout(), sm, fmt.Sprintf("removed %d", before-sm.CountItems()))
	return nil
}
