package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
)

var resRecentLogs = mcp.NewResource(
	"myworkout://recent_logs",
	"Recent Workout Logs",
	mcp.WithResourceDescription("The last 10 finished workout sessions with per-exercise completion and fatigue"),
	mcp.WithMIMEType("application/json"),
)

func (h *handlers) recentLogs(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	records, err := h.ds.ListLogs(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) > 10 {
		records = records[:10]
	}

	data, err := json.Marshal(records)
	if err != nil {
		return nil, err
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
