package mcp

import (
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/rentacar/rentacar/internal/application"
)

// NewRentacarMCPServer creates an MCP server exposing the rental desk as
// tools and resources. Each tool call's lookups are bounded by timeout;
// zero means no limit.
func NewRentacarMCPServer(desk *application.DeskService, version string, timeout time.Duration) *server.MCPServer {
	s := server.NewMCPServer(
		"rentacar",
		version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, desk, timeout)
	registerResources(s, desk)

	return s
}
