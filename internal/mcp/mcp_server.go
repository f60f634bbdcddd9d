// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/repulse/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Repulse MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, loader contract.SeriesLoader) *server.MCPServer {
	s := server.NewMCPServer(
		"Repulse Traffic Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		loader:  loader,
	}

	// --- 1. Tool: get_badge_summary ---
	s.AddTool(mcp.NewTool("get_badge_summary",
		mcp.WithDescription("Summarize the latest clone and download totals used by README badges."),
	), h.handleGetBadgeSummary)

	// --- 2. Tool: get_chart_plan ---
	s.AddTool(mcp.NewTool("get_chart_plan",
		mcp.WithDescription("Compute the sampled points and window of one chart without drawing it."),
		mcp.WithString("chart", mcp.Description("Chart name (e.g. total_clones, total_downloads)."), mcp.Required()),
		mcp.WithString("weekday", mcp.Description("Weekday to sample on, as a name or 0-6 with 0 = Monday. Defaults to the configured weekday.")),
		mcp.WithBoolean("include_curve", mcp.Description("Include the smoothed curve positions in the result.")),
	), h.handleGetChartPlan)

	// --- 3. Tool: render_charts ---
	s.AddTool(mcp.NewTool("render_charts",
		mcp.WithDescription("Render every enabled chart, the combined image and the badge data."),
		mcp.WithString("mode", mcp.Description("Color scheme. Defaults to the configured mode."), mcp.Enum("light", "dark")),
		mcp.WithString("format", mcp.Description("Image format. Defaults to the configured format."), mcp.Enum("svg", "png")),
		mcp.WithString("renderer", mcp.Description("Charting backend."), mcp.Enum("gonum", "gochart")),
	), h.handleRenderCharts)

	return s
}

// StartMCPServer starts the Repulse MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, loader contract.SeriesLoader) error {
	s := NewMCPServer(baseCfg, loader)
	return server.ServeStdio(s)
}
