package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/internal/tui"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

// entryJSON is the machine-readable form of a sitemap or index entry.
type entryJSON struct {
	Location        string              `json:"loc"`
	LastModified    string              `json:"lastmod"`
	ChangeFrequency string              `json:"changefreq,omitempty"`
	Priority        string              `json:"priority,omitempty"`
	Alternates      []sitemap.Alternate `json:"alternates,omitempty"`
}

func newListCommand(g *globalFlags) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list <file>",
		Short: "List the URLs of a sitemap",
		Long: `List the URLs of a sitemap file. Indexes are followed into their chunk files.

Example:
  sitemapper list public/sitemap.xml.gz --json`,
		Args: RequireFile,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := g.documentOptions(cmd, args[0])
			if err != nil {
				return err
			}
			sm, err := sitemap.New(args[0], opts...)
			if err != nil {
				return err
			}
			return printEntries(cmd.OutOrStdout(), sm.FilePath(), sm.Entries(), asJSON, true)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print entries as JSON")
	return cmd
}

// printEntries renders entries as JSON or as a table. withURLFields adds the
// changefreq and priority columns that index entries do not carry.
func printEntries(w io.Writer, path string, entries []*sitemap.Entry, asJSON, withURLFields bool) error {
	if asJSON {
		out := make([]entryJSON, 0, len(entries))
		for _, e := range entries {
			item := entryJSON{Location: e.Location(), LastModified: e.LastModified()}
			if withURLFields {
				item.ChangeFrequency = string(e.ChangeFrequency())
				item.Priority = e.Priority()
				item.Alternates = e.Alternates()
			}
			out = append(out, item)
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	table := tui.Table{
		Title:   fmt.Sprintf("%s (%d)", path, len(entries)),
		Headers: []string{"LOCATION", "LASTMOD"},
		Styles:  []lipgloss.Style{tui.LocationStyle, tui.MutedStyle},
	}
	if withURLFields {
		table.Headers = append(table.Headers, "CHANGEFREQ", "PRIORITY", "ALTERNATES")
	}
	for _, e := range entries {
		row := []string{e.Location(), e.LastModified()}
		if withURLFields {
			row = append(row, string(e.ChangeFrequency()), e.Priority(), fmt.Sprint(len(e.Alternates())))
		}
		table.Rows = append(table.Rows, row)
	}
	_, err := io.WriteString(w, table.Render(tui.IsInteractive()))
	return err
}
