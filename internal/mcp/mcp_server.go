// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the shooting-analysis MCP
// server without starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.CacheManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Shooting Incident Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: rank_incidents ---
	s.AddTool(mcp.NewTool("rank_incidents",
		mcp.WithDescription("Rank days or hour categories by distinct shooting incidents or deaths."),
		mcp.WithString("by", mcp.Description("Ranking axis (day, hour). Defaults to 'day'."), mcp.Enum("day", "hour")),
		mcp.WithString("metric", mcp.Description("Metric to rank by (incidents, deaths). Defaults to 'incidents'."), mcp.Enum("incidents", "deaths")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of results returned.")),
	), h.handleRank)

	// --- 2. Tool: get_heatmap ---
	s.AddTool(mcp.NewTool("get_heatmap",
		mcp.WithDescription("Build the day x hour-category incident matrix with share-of-total percentages."),
		mcp.WithString("metric", mcp.Description("Metric to display (incidents, deaths, rate)."), mcp.Enum("incidents", "deaths", "rate")),
	), h.handleHeatmap)

	// --- 3. Tool: get_trend ---
	s.AddTool(mcp.NewTool("get_trend",
		mcp.WithDescription("Build the yearly incident/death series, excluding years without incidents."),
	), h.handleTrend)

	// --- 4. Tool: run_regression ---
	s.AddTool(mcp.NewTool("run_regression",
		mcp.WithDescription("Fit fatality rate on incident and death counts per (day type, hour category, borough) group."),
		mcp.WithBoolean("legacy_daytype", mcp.Description("Reproduce the legacy all-Weekday day-type classification.")),
	), h.handleRegression)

	return s
}

// StartMCPServer starts the shooting-analysis MCP server over stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.CacheManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
