package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/oceanplan/sizecard/core"
	"github.com/oceanplan/sizecard/internal/contract"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.ResultsManager
}

func (h *toolHandler) handleGetSizeCard(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	err := contract.RevalidateCardRequest(cfg,
		request.GetString("sketch_path", ""),
		request.GetString("geography_id", ""),
		request.GetString("locale", ""),
		request.GetString("priority", ""),
	)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid size card parameters: %v", err)), nil
	}

	card, err := core.LoadSizeCard(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("size card failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(card, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSizeMetrics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if err := contract.RevalidateCardRequest(cfg, request.GetString("sketch_path", ""), "", "", ""); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid size metrics parameters: %v", err)), nil
	}

	deps, err := core.LoadDeps(ctx, cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("size metrics failed: %v", err)), nil
	}
	metrics, err := core.GetSizeMetrics(ctx, deps.Provider, deps.Sketch.ID, deps.Translator)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("size metrics failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(metrics, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
