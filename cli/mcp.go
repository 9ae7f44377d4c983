package cli

import (
	"github.com/spf13/cobra"

	"github.com/jongio/urlprefix/mcpserver"
	"github.com/jongio/urlprefix/version"
)

func newMCPCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the prefix tools over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mcpserver.New(mcpserver.Options{
				Name:    Name,
				Version: version.Version,
			}).ServeStdio()
		},
	}
}
