package cmd

import (
	"github.com/oceanplan/sizecard/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the SizeCard MCP server",
	Long:  `Launch an MCP server that allows AI agents to build size cards and fetch size metrics via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Sketch paths arrive per tool call, so no positional argument here.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, resultsManager)
	},
}
