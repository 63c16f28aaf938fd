package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/internal/files/scanner"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

type scanFlags struct {
	baseURL    string
	extensions []string
	changefreq string
	priority   string
	replace    bool
}

func newScanCommand(g *globalFlags) *cobra.Command {
	f := &scanFlags{}

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Add every page under the document root to a sitemap",
		Long: `Walk the document root and add a URL for every page file found.

Index files map to their directory URL (blog/index.html becomes /blog/) and the
file modification time becomes lastmod. Hidden files and directories are skipped.
Pages already in the sitemap keep their metadata unless --replace is given.

Example:
  sitemapper scan public/sitemap.xml --document-root public --base-url https://example.com`,
		Args: RequireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScan(cmd, g, f, args[0])
		},
	}

	cmd.Flags().StringVar(&f.baseURL, "base-url", "", "Scheme and host the document root is served at (required)")
	cmd.Flags().StringSliceVar(&f.extensions, "ext", scanner.DefaultExtensions, "Page file extensions to include")
	cmd.Flags().StringVar(&f.changefreq, "changefreq", string(sitemap.Daily), "Change frequency for scanned pages")
	cmd.Flags().StringVar(&f.priority, "priority", sitemap.DefaultPriority, "Priority for scanned pages")
	cmd.Flags().BoolVar(&f.replace, "replace", false, "Start from an empty sitemap instead of reading the existing file")
	return cmd
}

func runScan(cmd *cobra.Command, g *globalFlags, f *scanFlags, file string) error {
	if _, ok := sitemap.SchemeAndHost(f.baseURL); !ok {
		return fmt.Errorf("%w: --base-url %q must be an absolute URL such as https://example.com", sitemap.ErrUsage, f.baseURL)
	}
	if f.changefreq != "" && !sitemap.ChangeFrequency(f.changefreq).Valid() {
		return fmt.Errorf("%w: invalid --changefreq %q, expected one of %s", sitemap.ErrUsage, f.changefreq, changeFrequencyList())
	}

	s, err := g.resolveSettings(cmd, file)
	if err != nil {
		return err
	}
	if s.documentRoot == "" {
		return fmt.Errorf("%w: scan needs a document root (--document-root, document_root or $%s)", sitemap.ErrInvalidConfig, sitemap.DocumentRootEnv)
	}

	pages, err := scanner.NewScanner(f.extensions...).ScanDirectory(s.documentRoot)
	if err != nil {
		return fmt.Errorf("%w: %w", sitemap.ErrInvalidConfig, err)
	}

	opts := append(s.options(cmd), sitemap.WithRead(!f.replace))
	sm, err := sitemap.New(file, opts...)
	if err != nil {
		return err
	}

	base := strings.TrimRight(f.baseURL, "/")
	before := sm.CountItems()
	for _, page := range pages {
		modified := page.ModifiedAt.UTC().Truncate(time.Second)
		err := sm.AddItem(sitemap.EntryParams{
			Location:        base + page.URLPath,
			LastModified:    &modified,
			ChangeFrequency: f.changefreq,
			Priority:        f.priority,
		})
		if err != nil {
			return fmt.Errorf("page %s: %w", page.Path, err)
		}
	}

	if err := sm.Write(); err != nil {
		return err
	}
	printWriteSummary(cmd.OutOrStdout(), sm, fmt.Sprintf("scanned %d page(s), added %d", len(pages), sm.CountItems()-before))
	return nil
}
