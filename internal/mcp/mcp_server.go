// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/findexlab/fipulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Fipulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.RunManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Fipulse Forecast Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: list_indicators ---
	s.AddTool(mcp.NewTool("list_indicators",
		mcp.WithDescription("List the financial inclusion indicators available in the configured dataset."),
	), h.handleListIndicators)

	// --- 2. Tool: get_forecast ---
	s.AddTool(mcp.NewTool("get_forecast",
		mcp.WithDescription("Run the scenario forecast pipeline for one indicator and return the full scenario table."),
		mcp.WithString("indicator", mcp.Description("Indicator display name or code (e.g. 'acct_own')."), mcp.Required()),
		mcp.WithString("years", mcp.Description("Forecast years expression (e.g. '2025-2027' or '2025,2026'). Defaults to the configured horizon.")),
		mcp.WithString("trend", mcp.Description("Trend form for the baseline fit. Defaults to the configured form."), mcp.Enum("linear", "loglinear")),
	), h.handleGetForecast)

	// --- 3. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Compute year-over-year growth and fitted annual drift per indicator."),
		mcp.WithString("indicator", mcp.Description("Restrict the summary to one indicator (name or code).")),
	), h.handleGetTrends)

	// --- 4. Tool: get_overview ---
	s.AddTool(mcp.NewTool("get_overview",
		mcp.WithDescription("Summarize the dataset: record counts, categorical splits, coverage, and headline metrics."),
	), h.handleGetOverview)

	return s
}

// StartMCPServer starts the Fipulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.RunManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
