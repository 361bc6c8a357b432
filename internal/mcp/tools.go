package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ibuki-kubota/my-workout-app/internal/history"
)

// --- Tool definitions ---

var toolListWorkoutLogs = mcp.NewTool("list_workout_logs",
	mcp.WithDescription("List finished workout sessions, newest first. Each log has the session date, total completed sets, and per-exercise items with completed sets and fatigue rating."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of logs to return. Defaults to 10.")),
)

var toolGetLogStats = mcp.NewTool("get_log_stats",
	mcp.WithDescription("Aggregate statistics across all workout logs: total sessions, total sets, distinct exercises, first/last session."),
)

var toolGetFatigueTrend = mcp.NewTool("get_fatigue_trend",
	mcp.WithDescription("Per-day fatigue samples for one exercise across a month, on a fixed 1-10 scale. Days without a rating yield no sample; consecutive samples are connected, gaps are not interpolated."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name, exactly as logged (e.g. 'チェストプレス'). Use list_workout_logs to discover names.")),
	mcp.WithNumber("year", mcp.Description("Calendar year. Defaults to the current year.")),
	mcp.WithNumber("month", mcp.Description("Calendar month 1-12. Defaults to the current month.")),
)

var toolGetCalendarMonth = mcp.NewTool("get_calendar_month",
	mcp.WithDescription("The month grid of training days: which calendar days have a logged session."),
	mcp.WithNumber("year", mcp.Description("Calendar year. Defaults to the current year.")),
	mcp.WithNumber("month", mcp.Description("Calendar month 1-12. Defaults to the current month.")),
)

// yearMonthArgs reads year/month arguments, defaulting to the current month.
func yearMonthArgs(req mcp.CallToolRequest) (int, time.Month) {
	now := time.Now()
	year := req.GetInt("year", now.Year())
	month := req.GetInt("month", int(now.Month()))
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year < 1 {
		year = now.Year()
	}
	return year, time.Month(month)
}

// --- Tool handlers ---

func (h *handlers) listWorkoutLogs(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := req.GetInt("limit", 10)

	records, err := h.ds.ListLogs(ctx)
	if err != nil {
		h.log.Error("mcp list_workout_logs", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}

	result, err := mcp.NewToolResultJSON(records)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getLogStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	stats, err := h.ds.GetLogStats(ctx)
	if err != nil {
		h.log.Error("mcp get_log_stats", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(stats)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getFatigueTrend(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	year, month := yearMonthArgs(req)

	records, err := h.ds.ListLogs(ctx)
	if err != nil {
		h.log.Error("mcp get_fatigue_trend", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	samples := history.MonthSamples(records, exercise, year, month)
	result, err := mcp.NewToolResultJSON(map[string]any{
		"exercise":  exercise,
		"year":      year,
		"month":     int(month),
		"samples":   samples,
		"segments":  history.Segments(samples),
		"scale_min": history.FatigueScaleMin,
		"scale_max": history.FatigueScaleMax,
	})
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) getCalendarMonth(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	year, month := yearMonthArgs(req)

	records, err := h.ds.ListLogs(ctx)
	if err != nil {
		h.log.Error("mcp get_calendar_month", "error", err)
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}

	result, err := mcp.NewToolResultJSON(history.Calendar(records, year, month, time.Now()))
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}
