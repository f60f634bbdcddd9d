package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/huangsam/repulse/core"
	"github.com/huangsam/repulse/internal/composite"
	"github.com/huangsam/repulse/internal/contract"
	"github.com/huangsam/repulse/internal/render"
	"github.com/huangsam/repulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	loader  contract.SeriesLoader
}

func jsonResult(v any) *mcp.CallToolResult {
	jsonData, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(jsonData))
}

func (h *toolHandler) handleGetBadgeSummary(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	series, err := h.loader.LoadSeries(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load traffic series: %v", err)), nil
	}
	return jsonResult(core.Summarize(series)), nil
}

func (h *toolHandler) handleGetChartPlan(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	name := request.GetString("chart", "")
	if name == "" {
		return mcp.NewToolResultError("chart is required"), nil
	}
	spec, ok := schema.LookupChart(cfg.Charts, name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%v: %s", schema.ErrUnknownChart, name)), nil
	}
	if w := request.GetString("weekday", ""); w != "" {
		weekday, err := schema.ParseWeekday(w)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid weekday: %v", err)), nil
		}
		cfg.Weekday = weekday
	}

	series, err := h.loader.LoadSeries(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load traffic series: %v", err)), nil
	}
	plan, err := core.PlanChart(series, spec, core.PlanOptionsFromConfig(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("planning failed: %v", err)), nil
	}
	if !request.GetBool("include_curve", false) {
		plan.Curve = nil
	}
	return jsonResult(plan), nil
}

func (h *toolHandler) handleRenderCharts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if m := request.GetString("mode", ""); m != "" {
		mode := schema.DisplayMode(m)
		if mode != schema.LightMode && mode != schema.DarkMode {
			return mcp.NewToolResultError(fmt.Sprintf("invalid mode: %s", m)), nil
		}
		cfg.Mode = mode
	}
	if f := request.GetString("format", ""); f != "" {
		if _, ok := schema.ValidOutputFormats[schema.OutputFormat(f)]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid format: %s", f)), nil
		}
		cfg.Format = schema.OutputFormat(f)
	}
	if r := request.GetString("renderer", ""); r != "" {
		cfg.Renderer = schema.RenderBackend(r)
	}

	renderer, err := render.New(cfg.Renderer, render.OptionsFromConfig(cfg))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid renderer: %v", err)), nil
	}
	p := &core.Pipeline{
		Config:     cfg,
		Loader:     h.loader,
		Renderer:   renderer,
		Compositor: composite.SVGCompositor{},
	}
	report, err := p.Run(core.WithQuiet(ctx))
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
	}
	return jsonResult(report), nil
}
