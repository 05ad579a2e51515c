package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

var (
	listSort  string
	listOrder string
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the full catalog",
	Long: `Prints every catalog record in its stored order, optionally sorted.

Unlike query, the sort arguments here are strict: an unknown sort
field or order token is a usage error, not a silent no-op.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listSort, "sort", "s", "", "sort field (alias, nameEn, nameNative or a category field)")
	listCmd.Flags().StringVar(&listOrder, "order", string(domain.OrderAscending), "sort order (ascending or descending)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output records as JSON")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	svc, err := ensureCatalogService(cmd.Context())
	if err != nil {
		return err
	}

	c, err := svc.List(cmd.Context())
	if err != nil {
		return err
	}

	// The order token is validated even when no sort field was given.
	if c, err = c.SortByField(listSort, domain.Order(listOrder)); err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if listJSON {
		return outputFoodsJSON(cmd, svc.Schema(), c)
	}
	return outputFoodsTable(cmd, svc.Schema(), c)
}
