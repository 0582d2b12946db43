package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/rentacar/rentacar/internal/adapters/inbound/mcp"
)

func newMCPCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the rentacar MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd(g))
	return cmd
}

func newMCPServeCmd(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start rentacar MCP server (stdio)",
		Long:  "Start the rentacar MCP server using stdio transport. AI assistants can then quote and rent cars and read the tax table.",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, done, err := g.open()
			if err != nil {
				return err
			}
			defer done()

			return server.ServeStdio(mcpadapter.NewRentacarMCPServer(a.Desk, version, a.Config.LookupTimeout))
		},
	}
}
