package mcp

import (
	"context"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// mockCatalogService implements driving.CatalogService for MCP tests.
type mockCatalogService struct {
	schema  domain.Schema
	foods   []domain.RawFood
	err     error
	lastRaw domain.RawQuery
}

func newMockCatalogService() *mockCatalogService {
	schema, _ := domain.NewSchema("Ren", "Stimpy")
	return &mockCatalogService{
		schema: schema,
		foods: []domain.RawFood{
			{
				"alias": "green-tea", "nameEn": "Green tea", "nameNative": "Thé vert",
				"serving": "1 cup", "categoryRen": "Superfood", "categoryStimpy": "Enjoy",
			},
			{
				"alias": "barley", "nameEn": "Barley", "nameNative": "Orge",
				"serving": "1 cup", "categoryRen": "Minimize", "categoryStimpy": "Enjoy",
			},
		},
	}
}

func (m *mockCatalogService) Schema() domain.Schema {
	return m.schema
}

func (m *mockCatalogService) List(_ context.Context) (*domain.Collection, error) {
	if m.err != nil {
		return nil, m.err
	}
	return domain.NewCollection(m.schema, m.foods)
}

func (m *mockCatalogService) Digest(_ context.Context, raw domain.RawQuery) (*domain.Collection, error) {
	m.lastRaw = raw
	if m.err != nil {
		return nil, m.err
	}
	c, err := domain.NewCollection(m.schema, m.foods)
	if err != nil {
		return nil, err
	}
	return c.Digest(domain.NewQuery(m.schema, raw))
}

func (m *mockCatalogService) Reload(_ context.Context) error {
	return m.err
}
