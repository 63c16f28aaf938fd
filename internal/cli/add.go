package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/internal/tui"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

type addFlags struct {
	lastmod    string
	changefreq string
	priority   string
	alternates []string
}

func newAddCommand(g *globalFlags) *cobra.Command {
	f := &addFlags{}

	cmd := &cobra.Command{
		Use:   "add <file> [url...]",
		Short: "Add URLs to a sitemap",
		Long: `Add one or more URLs to a sitemap file, creating it if needed.

URLs already present keep their existing metadata. With --alternate the call
adds a single localized page whose first alternate is the canonical URL.

Examples:
  sitemapper add public/sitemap.xml https://example.com/ https://example.com/about/
  sitemapper add public/sitemap.xml https://example.com/blog/ --changefreq weekly --priority 0.8
  sitemapper add public/sitemap.xml --alternate en=https://example.com/en/ --alternate fr=https://example.com/fr/`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(f.alternates) > 0 {
				return RequireFile(cmd, args[:min(len(args), 1)])
			}
			return RequireFileAndURLs(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, g, f, args)
		},
	}

	cmd.Flags().StringVar(&f.lastmod, "lastmod", "", "Last modification time, RFC 3339 or YYYY-MM-DD (default now)")
	cmd.Flags().StringVar(&f.changefreq, "changefreq", string(sitemap.Daily), "Change frequency: "+changeFrequencyList())
	cmd.Flags().StringVar(&f.priority, "priority", sitemap.DefaultPriority, "Priority between 0.0 and 1.0")
	cmd.Flags().StringArrayVar(&f.alternates, "alternate", nil, "Language alternate as lang=url (repeatable)")
	return cmd
}

func runAdd(cmd *cobra.Command, g *globalFlags, f *addFlags, args []string) error {
	file, urls := args[0], args[1:]

	lastmod, err := parseLastmod(f.lastmod)
	if err != nil {
		return err
	}
	if f.changefreq != "" && !sitemap.ChangeFrequency(f.changefreq).Valid() {
		return fmt.Errorf("%w: invalid --changefreq %q, expected one of %s", sitemap.ErrUsage, f.changefreq, changeFrequencyList())
	}
	alternates, err := parseAlternates(f.alternates)
	if err != nil {
		return err
	}
	if len(alternates) > 0 && len(urls) > 0 {
		return fmt.Errorf("%w: --alternate cannot be combined with URL arguments", sitemap.ErrUsage)
	}

	opts, err := g.documentOptions(cmd, file)
	if err != nil {
		return err
	}
	sm, err := sitemap.New(file, opts...)
	if err != nil {
		return err
	}

	before := sm.CountItems()
	params := sitemap.EntryParams{
		LastModified:    lastmod,
		ChangeFrequency: f.changefreq,
		Priority:        f.priority,
	}
	if len(alternates) > 0 {
		params.Alternates = alternates
		if err := sm.AddItem(params); err != nil {
			return err
		}
	}
	for _, u := range urls {
		params.Location = u
		if err := sm.AddItem(params); err != nil {
			return err
		}
	}

	if err := sm.Write(); err != nil {
		return err
	}
	printWriteSummary(cmd.OutOrStdout(), sm, fmt.Sprintf("added %d", sm.CountItems()-before))
	return nil
}

// parseLastmod accepts RFC 3339 or a plain date. An empty value means "now".
func parseLastmod(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, value); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("%w: invalid --lastmod %q, expected RFC 3339 or YYYY-MM-DD", sitemap.ErrUsage, value)
}

// parseAlternates splits lang=url pairs, keeping their order.
func parseAlternates(pairs []string) ([]sitemap.Alternate, error) {
	alternates := make([]sitemap.Alternate, 0, len(pairs))
	for _, pair := range pairs {
		lang, href, ok := strings.Cut(pair, "=")
		lang, href = strings.TrimSpace(lang), strings.TrimSpace(href)
		if !ok || lang == "" || href == "" {
			return nil, fmt.Errorf("%w: invalid --alternate %q, expected lang=url", sitemap.ErrUsage, pair)
		}
		alternates = append(alternates, sitemap.Alternate{Lang: lang, URL: href})
	}
	return alternates, nil
}

func changeFrequencyList() string {
	values := sitemap.ChangeFrequencies()
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = string(v)
	}
	return strings.Join(names, ", ")
}

// printWriteSummary reports the written file and any chunk parts.
func printWriteSummary(w io.Writer, sm *sitemap.Sitemap, action string) {
	parts := sm.FilePathParts()
	styled := tui.IsInteractive()

	check := tui.SymbolCheck
	if styled {
		check = tui.SuccessStyle.Render(check)
	}
	fmt.Fprintf(w, "%s %s: %s, %d URL(s) total\n", check, sm.FilePath(), action, sm.CountItems())
	if len(parts) == 0 {
		return
	}
	fmt.Fprintf(w, "  index of %d chunk(s):\n", len(parts))
	for _, p := range parts {
		fmt.Fprintf(w, "  %s %s\n", tui.SymbolArrowRight, p)
	}
}
