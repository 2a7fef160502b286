package cli

import (
	"github.com/spf13/cobra"

	"github.com/docsight/docsight/internal/mcp"
)

// mcpCmd serves documentation extraction over the Model Context Protocol.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve documentation tools over MCP on stdio",
	Long: `Start an MCP server exposing two tools: javadoc_file_docs returns the
full documentation model for a Java file, and javadoc_symbol_at maps a line
number to the enclosing method's documentation.`,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, cleanup, err := buildService(cfg, true)
	if err != nil {
		return err
	}
	defer cleanup()

	server, err := mcp.NewDocServer(service)
	if err != nil {
		return err
	}
	return server.Serve(cmd.Context())
}
