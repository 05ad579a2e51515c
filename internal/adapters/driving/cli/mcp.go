package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pantrykit/pantry-cli/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server over stdio",
	Long: `Run a Model Context Protocol server exposing the catalog query
engine, so AI assistants can filter and sort the household catalog.

The server speaks MCP over stdin/stdout and runs until the client
disconnects.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, _ []string) error {
	svc, err := ensureCatalogService(cmd.Context())
	if err != nil {
		return err
	}

	server, err := mcp.NewServer(&mcp.Ports{Catalog: svc})
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}
	return server.Run(cmd.Context())
}
