package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"
)

// New creates an MCP server with all tools and resources registered.
func New(ds DataSource, version string, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("my-workout-app", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("Workout log server. Query finished workout sessions, per-exercise fatigue trends, the training calendar, and aggregate stats."),
	)

	h := &handlers{ds: ds, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolListWorkoutLogs, Handler: h.listWorkoutLogs},
		server.ServerTool{Tool: toolGetLogStats, Handler: h.getLogStats},
		server.ServerTool{Tool: toolGetFatigueTrend, Handler: h.getFatigueTrend},
		server.ServerTool{Tool: toolGetCalendarMonth, Handler: h.getCalendarMonth},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resRecentLogs, Handler: h.recentLogs},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds  DataSource
	log *slog.Logger
}
