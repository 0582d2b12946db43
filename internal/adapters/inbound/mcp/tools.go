package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/rentacar/rentacar/internal/application"
)

func registerTools(s *server.MCPServer, desk *application.DeskService, timeout time.Duration) {
	s.AddTool(
		mcplib.NewTool("rentacar_rent",
			mcplib.WithDescription("Rent a car from a category for a customer. Returns the transaction receipt as JSON"),
			mcplib.WithString("customer", mcplib.Required(), mcplib.Description("Customer id")),
			mcplib.WithString("category", mcplib.Required(), mcplib.Description("Car category id")),
			mcplib.WithNumber("days", mcplib.Required(), mcplib.Description("Number of rental days (> 0)")),
		),
		handleRent(desk, timeout),
	)

	s.AddTool(
		mcplib.NewTool("rentacar_quote",
			mcplib.WithDescription("Price a rental without allocating a car or recording history"),
			mcplib.WithString("customer", mcplib.Required(), mcplib.Description("Customer id")),
			mcplib.WithString("category", mcplib.Required(), mcplib.Description("Car category id")),
			mcplib.WithNumber("days", mcplib.Required(), mcplib.Description("Number of rental days (> 0)")),
		),
		handleQuote(desk, timeout),
	)

	s.AddTool(
		mcplib.NewTool("rentacar_choose_car",
			mcplib.WithDescription("Draw a random car id from a category"),
			mcplib.WithString("category", mcplib.Required(), mcplib.Description("Car category id")),
		),
		handleChooseCar(desk, timeout),
	)
}

func rentalRequest(request mcplib.CallToolRequest) (application.RentalRequest, error) {
	customer, err := request.RequireString("customer")
	if err != nil {
		return application.RentalRequest{}, err
	}
	category, err := request.RequireString("category")
	if err != nil {
		return application.RentalRequest{}, err
	}
	days, err := request.RequireInt("days")
	if err != nil {
		return application.RentalRequest{}, err
	}
	return application.RentalRequest{CustomerID: customer, CategoryID: category, Days: days}, nil
}

func handleRent(desk *application.DeskService, timeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req, err := rentalRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ctx, cancel := withTimeout(ctx, timeout)
		defer cancel()

		tx, err := desk.Rent(ctx, req)
		if err != nil {
			return errorResult(fmt.Sprintf("rent failed: %v", err)), nil
		}
		return jsonResult(tx)
	}
}

func handleQuote(desk *application.DeskService, timeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		req, err := rentalRequest(request)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ctx, cancel := withTimeout(ctx, timeout)
		defer cancel()

		quote, err := desk.Quote(ctx, req)
		if err != nil {
			return errorResult(fmt.Sprintf("quote failed: %v", err)), nil
		}
		return jsonResult(quote)
	}
}

func handleChooseCar(desk *application.DeskService, timeout time.Duration) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		category, err := request.RequireString("category")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		ctx, cancel := withTimeout(ctx, timeout)
		defer cancel()

		carID, err := desk.ChooseCar(ctx, category)
		if err != nil {
			return errorResult(fmt.Sprintf("choose car failed: %v", err)), nil
		}
		return jsonResult(map[string]string{"category": category, "carId": carID})
	}
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
