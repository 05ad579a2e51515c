package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// outputFoodsJSON prints the collection as an indented JSON array.
// Category values appear under their schema field names.
func outputFoodsJSON(cmd *cobra.Command, schema domain.Schema, c *domain.Collection) error {
	fields := schema.CategoryFields()
	items := make([]map[string]string, 0, c.Len())
	for _, f := range c.Foods() {
		item := map[string]string{
			domain.FieldAlias:      f.Alias(),
			domain.FieldImageFile:  f.ImageFile(),
			domain.FieldNameEn:     f.NameEn(),
			domain.FieldNameNative: f.NameNative(),
			domain.FieldServing:    f.Serving(),
		}
		for _, cf := range fields {
			v, _ := f.Field(cf)
			item[cf] = v
		}
		items = append(items, item)
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal foods: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// outputFoodsTable prints the collection as a readable listing.
func outputFoodsTable(cmd *cobra.Command, schema domain.Schema, c *domain.Collection) error {
	if c.Len() == 0 {
		cmd.Println("No foods matched.")
		return nil
	}

	people := schema.People()
	fields := schema.CategoryFields()

	cmd.Printf("%d food(s):\n", c.Len())
	cmd.Println()
	for i, f := range c.Foods() {
		name := f.NameEn()
		if f.NameNative() != f.NameEn() {
			name = fmt.Sprintf("%s / %s", f.NameEn(), f.NameNative())
		}
		cat1, _ := f.Category(fields[0])
		cat2, _ := f.Category(fields[1])

		cmd.Printf("  [%d] %s (%s)\n", i+1, name, f.Alias())
		cmd.Printf("      Serving: %s\n", f.Serving())
		cmd.Printf("      %s: %s  %s: %s\n", people[0], cat1, people[1], cat2)
		cmd.Println()
	}
	return nil
}
