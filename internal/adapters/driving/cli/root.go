// Package cli implements the cobra command tree for the Pantry CLI.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/adapters/driven/catalog/file"
	"github.com/pantrykit/pantry-cli/internal/core/ports/driving"
	"github.com/pantrykit/pantry-cli/internal/core/services"
	"github.com/pantrykit/pantry-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var (
	catalogPath string
	verbose     bool

	// catalogService is built lazily from the catalog file, or
	// injected up front via SetCatalogService (tests, main wiring).
	catalogService driving.CatalogService
)

var rootCmd = &cobra.Command{
	Use:   "pantry",
	Short: "Query the household food catalog",
	Long: `Pantry filters and sorts a two-person household food catalog.

Each food carries a category per tracked person (Superfood, Enjoy,
Minimize or Avoid). Queries combine per-person category filters, a
keyword match over English and native names, and a locale-aware sort.

Malformed query input never fails a command: a typo in a category or
sort field quietly applies no filter. Malformed catalog data, by
contrast, is rejected loudly at load time.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging to stderr")
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "catalog file path (default ~/.pantry/catalog.toml)")
}

// SetCatalogService injects the catalog service, overriding the lazy
// file-backed construction. Used by tests.
func SetCatalogService(svc driving.CatalogService) {
	catalogService = svc
}

// ensureCatalogService returns the injected service or builds one from
// the catalog file on first use.
func ensureCatalogService(ctx context.Context) (driving.CatalogService, error) {
	if catalogService != nil {
		return catalogService, nil
	}
	store, err := file.NewStore(catalogPath)
	if err != nil {
		return nil, err
	}
	svc, err := services.NewCatalogService(ctx, store)
	if err != nil {
		return nil, err
	}
	catalogService = svc
	return svc, nil
}

// Execute runs the root command with the given build version.
func Execute(v string) error {
	if v != "" {
		version = v
	}
	return rootCmd.Execute()
}
