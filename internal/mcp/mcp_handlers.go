package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/findexlab/fipulse/core"
	"github.com/findexlab/fipulse/internal/contract"
	"github.com/findexlab/fipulse/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.RunManager
}

func (h *toolHandler) handleListIndicators(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	records, _, _, err := core.LoadInputs(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(map[string][]string{
		"indicators": schema.IndicatorNames(records),
	}, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetForecast(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Indicator = request.GetString("indicator", "")
	if cfg.Indicator == "" {
		return mcp.NewToolResultError("parameter 'indicator' is required"), nil
	}

	if y := request.GetString("years", ""); y != "" {
		years, err := contract.ParseYearList(y)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid years: %v", err)), nil
		}
		cfg.ForecastYears = years
	}
	if tr := request.GetString("trend", ""); tr != "" {
		form := schema.TrendForm(tr)
		if _, ok := schema.ValidTrendForms[form]; !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid trend form %q", tr)), nil
		}
		cfg.Trend = form
	}

	records, impacts, schedule, err := core.LoadInputs(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	table, err := core.GetForecastTable(cfg, records, impacts, schedule)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("forecast failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(table, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.Indicator = request.GetString("indicator", "")

	records, _, _, err := core.LoadInputs(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	summaries, err := core.GetTrendSummaries(cfg, records)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trend analysis failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(summaries, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetOverview(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()

	records, _, _, err := core.LoadInputs(cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to load dataset: %v", err)), nil
	}

	overview := core.BuildOverview(records)
	jsonData, _ := json.MarshalIndent(overview, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
