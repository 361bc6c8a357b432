package storage

import (
	"context"
	"fmt"
	"time"
)

// LogStats holds aggregate statistics about the stored workout history.
type LogStats struct {
	TotalSessions     int64      `json:"total_sessions"`
	TotalSets         int64      `json:"total_sets"`
	DistinctExercises int64      `json:"distinct_exercises"`
	FirstSession      *time.Time `json:"first_session"`
	LastSession       *time.Time `json:"last_session"`
}

// GetLogStats returns aggregate statistics across all workout logs.
func (db *DB) GetLogStats(ctx context.Context) (*LogStats, error) {
	stats := &LogStats{}

	err := db.Pool.QueryRow(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total_sets), 0), MIN(created_at), MAX(created_at)
		 FROM workout_logs`,
	).Scan(&stats.TotalSessions, &stats.TotalSets, &stats.FirstSession, &stats.LastSession)
	if err != nil {
		return nil, fmt.Errorf("counting workout logs: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`SELECT COUNT(DISTINCT item->>'name')
		 FROM workout_logs, jsonb_array_elements(items) AS item`,
	).Scan(&stats.DistinctExercises)
	if err != nil {
		return nil, fmt.Errorf("counting distinct exercises: %w", err)
	}

	return stats, nil
}
