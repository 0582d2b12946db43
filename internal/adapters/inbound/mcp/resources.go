package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rentacar/rentacar/internal/application"
	"github.com/rentacar/rentacar/internal/domain"
)

const (
	taxTableURI = "rentacar://tax-table"
	historyURI  = "rentacar://history"
)

func registerResources(s *server.MCPServer, desk *application.DeskService) {
	s.AddResource(
		mcplib.NewResource(
			taxTableURI,
			"Tax Table",
			mcplib.WithResourceDescription("Age brackets and price multipliers used for pricing"),
			mcplib.WithMIMEType("application/json"),
		),
		handleTaxTableResource(desk),
	)

	s.AddResource(
		mcplib.NewResource(
			historyURI,
			"Rental History",
			mcplib.WithResourceDescription("Completed rentals, oldest first"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(desk),
	)
}

func handleTaxTableResource(desk *application.DeskService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonResource(taxTableURI, desk.TaxTable())
	}
}

func handleHistoryResource(desk *application.DeskService) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := desk.History()
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		if entries == nil {
			entries = []domain.RentalEntry{}
		}
		return jsonResource(historyURI, entries)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
