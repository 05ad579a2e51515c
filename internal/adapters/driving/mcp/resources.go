package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// uriScheme is the custom URI scheme for Pantry resources.
const uriScheme = "pantry://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "schema",
		Name:        "schema",
		Description: "The tracked people, their category field names and the standardized category values",
		MIMEType:    "application/json",
	}, s.handleSchemaResource)
}

// handleSchemaResource returns the active schema description.
func (s *Server) handleSchemaResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	schema := s.ports.Catalog.Schema()

	categories := make([]string, 0, 4)
	for _, c := range domain.Categories() {
		categories = append(categories, c.String())
	}

	info := struct {
		People         [2]string `json:"people"`
		CategoryFields [2]string `json:"categoryFields"`
		SortableFields []string  `json:"sortableFields"`
		Categories     []string  `json:"categories"`
	}{
		People:         schema.People(),
		CategoryFields: schema.CategoryFields(),
		SortableFields: schema.SortableFields(),
		Categories:     categories,
	}

	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling schema: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
