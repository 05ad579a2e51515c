package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryCmd_Use(t *testing.T) {
	assert.Equal(t, "query [keyword]", queryCmd.Use)
}

func TestQueryCmd_Short(t *testing.T) {
	assert.Equal(t, "Filter and sort the catalog", queryCmd.Short)
}

func TestQueryCmd_Long(t *testing.T) {
	assert.Contains(t, queryCmd.Long, "category filter")
	assert.Contains(t, queryCmd.Long, "keyword")
	assert.Contains(t, queryCmd.Long, "self-healing")
}

func TestQueryCmd_HasFlags(t *testing.T) {
	category := queryCmd.Flags().Lookup("category")
	require.NotNil(t, category)
	assert.Equal(t, "c", category.Shorthand)

	sort := queryCmd.Flags().Lookup("sort")
	require.NotNil(t, sort)
	assert.Equal(t, "s", sort.Shorthand)

	assert.NotNil(t, queryCmd.Flags().Lookup("json"))
}

func TestQueryCmd_RejectsExtraArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"query", "one", "two"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
}

func TestQueryCmd_ExecutesWithoutFilters(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 food(s):")
	assert.Contains(t, buf.String(), "Green tea / Thé vert")
}

func TestQueryCmd_KeywordFilter(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "gra"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "1 food(s):")
	assert.Contains(t, buf.String(), "grape-seed-oil")
	assert.NotContains(t, buf.String(), "barley")
}

func TestQueryCmd_CategoryFilter(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "-c", "Ren=Superfood"})
	defer func() {
		rootCmd.SetArgs(nil)
		queryCategories = nil
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "green-tea")
	assert.NotContains(t, buf.String(), "barley")
}

func TestQueryCmd_UnknownPersonIgnored(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "-c", "Muddy=Superfood"})
	defer func() {
		rootCmd.SetArgs(nil)
		queryCategories = nil
	}()

	err := rootCmd.Execute()

	// Unknown person applies no filter, it does not fail.
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "3 food(s):")
}

func TestQueryCmd_MalformedCategoryPair(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"query", "-c", "RenSuperfood"})
	defer func() {
		rootCmd.SetArgs(nil)
		queryCategories = nil
	}()

	err := rootCmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "person=Value")
}

func TestQueryCmd_SortedOutput(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "-s", "nameEn"})
	defer func() {
		rootCmd.SetArgs(nil)
		querySort = ""
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Less(t, bytes.Index([]byte(out), []byte("Barley")), bytes.Index([]byte(out), []byte("Grape seed oil")))
	assert.Less(t, bytes.Index([]byte(out), []byte("Grape seed oil")), bytes.Index([]byte(out), []byte("Green tea")))
}

func TestQueryCmd_BadSortFieldIsNoOp(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "-s", "serving"})
	defer func() {
		rootCmd.SetArgs(nil)
		querySort = ""
	}()

	err := rootCmd.Execute()

	// serving is not sortable; the digest quietly keeps catalog order.
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "3 food(s):")
	assert.Less(t, bytes.Index([]byte(out), []byte("Green tea")), bytes.Index([]byte(out), []byte("Barley")))
}

func TestQueryCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestCatalog()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"query", "gra", "--json"})
	defer func() {
		rootCmd.SetArgs(nil)
		queryJSON = false
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"alias": "grape-seed-oil"`)
	assert.Contains(t, buf.String(), `"categoryRen": "Enjoy"`)
}
