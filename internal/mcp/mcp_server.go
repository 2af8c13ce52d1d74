// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/oceanplan/sizecard/internal/contract"
)

// NewMCPServer initializes and configures the SizeCard MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.ResultsManager) *server.MCPServer {
	s := server.NewMCPServer(
		"SizeCard Report Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: get_size_card ---
	s.AddTool(mcp.NewTool("get_size_card",
		mcp.WithDescription("Summarize how much of each boundary (EEZ, offshore, contiguous zone) a plan or network of MPAs covers, with progress towards area targets."),
		mcp.WithString("sketch_path", mcp.Description("Path to the sketch properties or GeoJSON file."), mcp.Required()),
		mcp.WithString("geography_id", mcp.Description("Geography to measure against (defaults to the default boundary).")),
		mcp.WithString("locale", mcp.Description("Language of labels and text, e.g. 'en' or 'es'.")),
		mcp.WithString("priority", mcp.Description("Comma separated class ids shown first.")),
	), h.handleGetSizeCard)

	// --- 2. Tool: get_size_metrics ---
	s.AddTool(mcp.NewTool("get_size_metrics",
		mcp.WithDescription("Return the raw boundary overlap metrics of a sketch, as offered by the size download."),
		mcp.WithString("sketch_path", mcp.Description("Path to the sketch properties or GeoJSON file."), mcp.Required()),
	), h.handleGetSizeMetrics)

	return s
}

// StartMCPServer starts the SizeCard MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.ResultsManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
