package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// QueryInput is the input schema for the query_foods tool.
type QueryInput struct {
	Search     string            `json:"search,omitempty" jsonschema:"keyword matched case-insensitively against English and native food names"`
	SortBy     string            `json:"sortBy,omitempty" jsonschema:"sort field: alias, nameEn, nameNative or a category field name"`
	Categories map[string]string `json:"categories,omitempty" jsonschema:"category filter per person key, value one of Superfood, Enjoy, Minimize, Avoid"`
}

// ListInput is the (empty) input schema for the list_foods tool.
type ListInput struct{}

// FoodOutput represents a single catalog record.
type FoodOutput struct {
	Alias      string            `json:"alias"`
	NameEn     string            `json:"nameEn"`
	NameNative string            `json:"nameNative"`
	Serving    string            `json:"serving"`
	ImageFile  string            `json:"imageFile,omitempty"`
	Categories map[string]string `json:"categories"`
}

// FoodsOutput is the output schema for both food tools.
type FoodsOutput struct {
	Foods []FoodOutput `json:"foods"`
	Count int          `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name: "query_foods",
		Description: "Filter and sort the household food catalog. " +
			"Invalid filter values are ignored, never rejected.",
	}, s.handleQuery)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_foods",
		Description: "List the full household food catalog in stored order",
	}, s.handleList)
}

// handleQuery handles the query_foods tool invocation.
func (s *Server) handleQuery(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input QueryInput,
) (*mcp.CallToolResult, FoodsOutput, error) {
	schema := s.ports.Catalog.Schema()

	raw := domain.RawQuery{}
	if input.Search != "" {
		raw[domain.QueryKeySearch] = input.Search
	}
	if input.SortBy != "" {
		raw[domain.QueryKeySortBy] = input.SortBy
	}
	for person, value := range input.Categories {
		// Unknown person keys are dropped, matching the lenient
		// query philosophy.
		if field, ok := schema.CategoryField(person); ok {
			raw[field] = value
		}
	}

	out, err := s.ports.Catalog.Digest(ctx, raw)
	if err != nil {
		return nil, FoodsOutput{}, err
	}
	return nil, foodsOutput(schema, out), nil
}

// handleList handles the list_foods tool invocation.
func (s *Server) handleList(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListInput,
) (*mcp.CallToolResult, FoodsOutput, error) {
	out, err := s.ports.Catalog.List(ctx)
	if err != nil {
		return nil, FoodsOutput{}, err
	}
	return nil, foodsOutput(s.ports.Catalog.Schema(), out), nil
}

// foodsOutput converts a collection to the tool output shape, keying
// categories by person rather than by field name.
func foodsOutput(schema domain.Schema, c *domain.Collection) FoodsOutput {
	people := schema.People()
	fields := schema.CategoryFields()

	output := FoodsOutput{
		Foods: make([]FoodOutput, c.Len()),
		Count: c.Len(),
	}
	for i, f := range c.Foods() {
		categories := make(map[string]string, 2)
		for j, cf := range fields {
			v, _ := f.Field(cf)
			categories[people[j]] = v
		}
		output.Foods[i] = FoodOutput{
			Alias:      f.Alias(),
			NameEn:     f.NameEn(),
			NameNative: f.NameNative(),
			Serving:    f.Serving(),
			ImageFile:  f.ImageFile(),
			Categories: categories,
		}
	}
	return output
}
