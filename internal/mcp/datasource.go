package mcp

import (
	"context"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
	"github.com/ibuki-kubota/my-workout-app/internal/storage"
)

// DataSource abstracts the history data for MCP tools. Both *storage.DB
// (local) and HTTPClient (remote via REST API) satisfy this interface; the
// calendar and trend shapes are derived locally from the log list.
type DataSource interface {
	ListLogs(ctx context.Context) ([]models.HistoryRecord, error)
	GetLogStats(ctx context.Context) (*storage.LogStats, error)
}

// Compile-time check: *storage.DB satisfies DataSource.
var _ DataSource = (*storage.DB)(nil)
