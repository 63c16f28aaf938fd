package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/internal/tui"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

func newIndexCommand(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "index",
		Short: "Manage a sitemap index",
		Long: `Manage a sitemap index file that references other sitemaps.

Adding a sitemap that is already referenced refreshes its lastmod.`,
	}
	cmd.AddCommand(
		newIndexAddCommand(g),
		newIndexRemoveCommand(g),
		newIndexListCommand(g),
	)
	return cmd
}

func newIndexAddCommand(g *globalFlags) *cobra.Command {
	var lastmod string

	cmd := &cobra.Command{
		Use:   "add <file> <url>...",
		Short: "Reference sitemaps from an index",
		Long: `Reference one or more sitemap URLs from an index file, creating it if needed.

Example:
  sitemapper index add public/sitemap-index.xml https://example.com/sitemap-blog.xml`,
		Args: RequireFileAndURLs,
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseLastmod(lastmod)
			if err != nil {
				return err
			}
			return updateIndex(cmd, g, args, "added", func(idx *sitemap.Index, u string) error {
				return idx.AddSitemap(u, t)
			})
		},
	}

	cmd.Flags().StringVar(&lastmod, "lastmod", "", "Last modification time, RFC 3339 or YYYY-MM-DD (default now)")
	return cmd
}

func newIndexRemoveCommand(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <url>...",
		Short: "Drop sitemap references from an index",
		Args:  RequireFileAndURLs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateIndex(cmd, g, args, "removed", func(idx *sitemap.Index, u string) error {
				return idx.RemoveSitemap(u)
			})
		},
	}
}

func newIndexListCommand(g *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the sitemaps referenced by an index",
		Args:  RequireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.documentOptions(cmd, args[0])
			if err != nil {
				return err
			}
			idx, err := sitemap.NewIndex(args[0], opts...)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), idx.FilePath(), idx.Entries(), asJSON, false)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

// updateIndex loads the index named by args[0], applies fn to every URL and writes it back.
func updateIndex(cmd *cobra.Command, g *globalFlags, args []string, action string, fn func(*sitemap.Index, string) error) error {
	file, urls := args[0], args[1:]

	opts, err := g.documentOptions(cmd, file)
	if err != nil {
		return err
	}
	idx, err := sitemap.NewIndex(file, opts...)
	if err != nil {
		return err
	}

	for _, u := range urls {
		if err := fn(idx, u); err != nil {
			return err
		}
	}
	if err := idx.Write(); err != nil {
		return err
	}
	printIndexSummary(cmd.OutOrStdout(), idx, fmt.Sprintf("%s %d", action, len(urls)))
	return nil
}

func printIndexSummary(w io.Writer, idx *sitemap.Index, action string) {
	check := tui.SymbolCheck
	if tui.IsInteractive() {
		check = tui.SuccessStyle.Render(check)
	}
	fmt.Fprintf(w, "%s %s: %s, %d sitemap(s) referenced\n", check, idx.FilePath(), action, idx.CountItems())
}
