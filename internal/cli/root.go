package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

// globalFlags holds the persistent flags shared by every document command.
type globalFlags struct {
	verbose      bool
	gzip         bool
	documentRoot string
	maxURLs      int
	maxBytes     int64
	configPath   string
}

// NewRootCommand builds the command tree. Each call returns fresh flag state.
func NewRootCommand() *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "sitemapper",
		Short: "Generate and maintain XML sitemaps",
		Long: `sitemapper maintains sitemap.xml files and sitemap indexes on disk.

Existing files are read back before every change, so adding or removing a URL
keeps what is already published. Gzip-compressed files are detected by content.
Large sitemaps are split into numbered chunk files linked by an index.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Invalid URL
  12 - Writing a sitemap or index failed`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", sitemap.ErrUsage, err)
	})

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&g.verbose, "verbose", "v", false, "Enable verbose output for all commands")
	pf.BoolVar(&g.gzip, "gzip", false, "Write gzip-compressed files (.xml.gz)")
	pf.StringVar(&g.documentRoot, "document-root", "", "Directory served at the site root (default $DOCUMENT_ROOT)")
	pf.IntVar(&g.maxURLs, "max-urls", 0, "Maximum URLs per sitemap file before chunking (default 50000)")
	pf.Int64Var(&g.maxBytes, "max-bytes", 0, "Size in bytes above which a sitemap file is reported (default 10485760)")
	pf.StringVar(&g.configPath, "config", "", "Path to sitemapper.yaml (default ./sitemapper.yaml)")

	rootCmd.AddCommand(
		newAddCommand(g),
		newRemoveCommand(g),
		newListCommand(g),
		newIndexCommand(g),
		newScanCommand(g),
		newVersionCommand(),
	)
	return rootCmd
}

// Execute runs the root command and prints a failure to stderr.
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
