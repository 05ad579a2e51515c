package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pantrykit/pantry-cli/internal/core/domain"
)

// mockCatalogService backs the command tests with a fixed catalog.
type mockCatalogService struct {
	schema domain.Schema
	foods  []domain.RawFood
	err    error
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

// setupTestCatalog injects a fixed catalog service and returns a
// cleanup that restores the previous one.
func setupTestCatalog() func() {
	schema, _ := domain.NewSchema("Ren", "Stimpy")
	prev := catalogService
	catalogService = &mockCatalogService{
		schema: schema,
		foods: []domain.RawFood{
			{
				"alias": "green-tea", "nameEn": "Green tea", "nameNative": "Thé vert",
				"serving": "1 cup", "categoryRen": "Superfood", "categoryStimpy": "Enjoy",
			},
			{
				"alias": "grape-seed-oil", "nameEn": "Grape seed oil",
				"nameNative": "Huile de pépins de raisin", "serving": "1 tbsp",
				"categoryRen": "Enjoy", "categoryStimpy": "Enjoy",
			},
			{
				"alias": "barley", "nameEn": "Barley", "nameNative": "Orge",
				"serving": "1 cup", "categoryRen": "Minimize", "categoryStimpy": "Enjoy",
			},
		},
	}
	return func() { catalogService = prev }
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "pantry", rootCmd.Use)
}

func TestRootCmd_Long(t *testing.T) {
	assert.Contains(t, rootCmd.Long, "category")
	assert.Contains(t, rootCmd.Long, "keyword")
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	assert.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
}

func TestRootCmd_HasCatalogFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("catalog")
	assert.NotNil(t, flag)
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "query")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "browse")
	assert.Contains(t, names, "mcp")
	assert.Contains(t, names, "version")
}

func TestRootCmd_UnknownCommand(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"frobnicate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}
