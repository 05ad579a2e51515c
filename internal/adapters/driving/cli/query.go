package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
	"github.com/pantrykit/pantry-cli/internal/logger"
)

var (
	queryCategories []string
	querySort       string
	queryJSON       bool
)

var queryCmd = &cobra.Command{
	Use:   "query [keyword]",
	Short: "Filter and sort the catalog",
	Long: `Applies the digest pipeline to the catalog: one category filter per
tracked person, then a case-insensitive keyword match over English and
native names, then an ascending locale-aware sort.

Query input is self-healing. Punctuation and digits are stripped from
the keyword, and an unrecognized category or sort field applies no
filter instead of failing the command.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runQuery,
}

func init() {
	queryCmd.Flags().StringArrayVarP(&queryCategories, "category", "c", nil, "category filter as person=Value (repeatable)")
	queryCmd.Flags().StringVarP(&querySort, "sort", "s", "", "sort field (alias, nameEn, nameNative or a category field)")
	queryCmd.Flags().BoolVar(&queryJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(queryCmd)
}

func runQuery(cmd *cobra.Command, args []string) error {
	svc, err := ensureCatalogService(cmd.Context())
	if err != nil {
		return err
	}
	schema := svc.Schema()

	raw := domain.RawQuery{}
	if len(args) == 1 {
		raw[domain.QueryKeySearch] = args[0]
	}
	if querySort != "" {
		raw[domain.QueryKeySortBy] = querySort
	}
	for _, pair := range queryCategories {
		person, value, ok := strings.Cut(pair, "=")
		if !ok {
			return fmt.Errorf("category filter %q must have the form person=Value", pair)
		}
		field, ok := schema.CategoryField(person)
		if !ok {
			logger.Warn("unknown person %q, category filter ignored", person)
			continue
		}
		raw[field] = value
	}

	out, err := svc.Digest(cmd.Context(), raw)
	if err != nil {
		return fmt.Errorf("query failed: %w", err)
	}

	if queryJSON {
		return outputFoodsJSON(cmd, schema, out)
	}
	return outputFoodsTable(cmd, schema, out)
}
