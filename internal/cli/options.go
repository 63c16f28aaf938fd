package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vvka-141/sitemapper/internal/config"
	"github.com/vvka-141/sitemapper/internal/logging"
	"github.com/vvka-141/sitemapper/pkg/sitemap"
)

// settings is the effective document configuration after merging
// sitemapper.yaml, .env and flags.
type settings struct {
	gzip         bool
	documentRoot string
	maxURLs      int
	maxBytes     int64
	verbose      bool
}

// resolveSettings merges configuration sources.
// Priority (highest to lowest): explicit flags > sitemapper.yaml > file name > defaults.
// The .env file in the working directory is loaded first so DOCUMENT_ROOT can live there.
func (g *globalFlags) resolveSettings(cmd *cobra.Command, file string) (settings, error) {
	s := settings{
		gzip:         g.gzip,
		documentRoot: g.documentRoot,
		maxURLs:      g.maxURLs,
		maxBytes:     g.maxBytes,
		verbose:      g.verbose,
	}

	cwd, err := os.Getwd()
	if err != nil {
		return s, fmt.Errorf("%w: %w", sitemap.ErrInvalidConfig, err)
	}
	if err := config.LoadEnv(cwd); err != nil {
		return s, fmt.Errorf("%w: %w", sitemap.ErrInvalidConfig, err)
	}

	cfg, err := g.loadProjectConfig(cmd, cwd)
	if err != nil {
		return s, err
	}

	flags := cmd.Flags()
	if !flags.Changed("gzip") {
		switch {
		case cfg != nil && cfg.Gzip != nil:
			s.gzip = *cfg.Gzip
		default:
			s.gzip = strings.HasSuffix(file, "."+sitemap.ExtensionGzip)
		}
	}
	if !flags.Changed("document-root") && cfg != nil && cfg.DocumentRoot != "" {
		s.documentRoot = cfg.DocumentRoot
	}
	if s.documentRoot == "" {
		s.documentRoot = os.Getenv(sitemap.DocumentRootEnv)
	}
	if !flags.Changed("max-urls") {
		s.maxURLs = sitemap.DefaultMaxURLs
		if cfg != nil && cfg.MaxURLs != nil {
			s.maxURLs = *cfg.MaxURLs
		}
	}
	if !flags.Changed("max-bytes") {
		s.maxBytes = sitemap.DefaultMaxBytes
		if cfg != nil && cfg.MaxBytes != nil {
			s.maxBytes = *cfg.MaxBytes
		}
	}
	return s, nil
}

// loadProjectConfig returns nil when no config file exists, unless --config
// named one explicitly.
func (g *globalFlags) loadProjectConfig(cmd *cobra.Command, cwd string) (*config.ProjectConfig, error) {
	path := g.configPath
	explicit := cmd.Flags().Changed("config")
	if path == "" {
		path = cwd
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: failed to load %s: %w", sitemap.ErrInvalidConfig, config.ConfigFileName, err)
	}
	return cfg, nil
}

// options turns settings into document options logging to the command's stderr.
func (s settings) options(cmd *cobra.Command) []sitemap.Option {
	return []sitemap.Option{
		sitemap.WithGzip(s.gzip),
		sitemap.WithDocumentRoot(s.documentRoot),
		sitemap.WithMaxURLs(s.maxURLs),
		sitemap.WithMaxBytes(s.maxBytes),
		sitemap.WithLogger(logging.NewConsoleLoggerTo(cmd.ErrOrStderr(), s.verbose)),
	}
}

// documentOptions resolves settings for file and returns the matching options.
func (g *globalFlags) documentOptions(cmd *cobra.Command, file string) ([]sitemap.Option, error) {
	s, err := g.resolveSettings(cmd, file)
	if err != nil {
		return nil, err
	}
	return s.options(cmd), nil
}
