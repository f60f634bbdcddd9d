package cmd

import (
	"github.com/huangsam/repulse/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp",
	Short:   "Start the Repulse MCP server",
	Long:    `Launch an MCP server over stdio that lets AI agents plan and render traffic charts via standard tools.`,
	PreRunE: sharedSetup,
	RunE: func(_ *cobra.Command, _ []string) error {
		loader := openStore()
		defer func() { _ = loader.Close() }()
		return mcp.StartMCPServer(rootCtx, cfg, loader)
	},
}
