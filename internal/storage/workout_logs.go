package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ibuki-kubota/my-workout-app/internal/models"
)

var ErrLogNotFound = errors.New("workout log not found")

// ListLogs retrieves every workout log, newest first. Ordering follows the
// server-assigned creation timestamp, not the session date.
func (db *DB) ListLogs(ctx context.Context) ([]models.HistoryRecord, error) {
	rows, err := db.Pool.Query(ctx,
		`SELECT id, created_at, date, to_char(day_key, 'YYYY-MM-DD'), total_sets, items, fatigue_data
		 FROM workout_logs
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying workout logs: %w", err)
	}
	defer rows.Close()

	var result []models.HistoryRecord
	for rows.Next() {
		var rec models.HistoryRecord
		var items, fatigue []byte
		if err := rows.Scan(&rec.ID, &rec.CreatedAt, &rec.Date, &rec.DayKey, &rec.TotalSets, &items, &fatigue); err != nil {
			return nil, fmt.Errorf("scanning workout log: %w", err)
		}
		if err := json.Unmarshal(items, &rec.Items); err != nil {
			return nil, fmt.Errorf("decoding workout log items: %w", err)
		}
		if len(fatigue) > 0 {
			if err := json.Unmarshal(fatigue, &rec.FatigueData); err != nil {
				return nil, fmt.Errorf("decoding workout log fatigue data: %w", err)
			}
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

// InsertLog appends a finished session. The server assigns id and created_at;
// the stored record is returned with both populated.
func (db *DB) InsertLog(ctx context.Context, rec models.HistoryRecord) (models.HistoryRecord, error) {
	items, err := json.Marshal(rec.Items)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("encoding workout log items: %w", err)
	}
	fatigue, err := json.Marshal(rec.FatigueData)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("encoding workout log fatigue data: %w", err)
	}

	err = db.Pool.QueryRow(ctx,
		`INSERT INTO workout_logs (date, day_key, total_sets, items, fatigue_data)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at`,
		rec.Date, rec.DayKey, rec.TotalSets, items, fatigue,
	).Scan(&rec.ID, &rec.CreatedAt)
	if err != nil {
		return models.HistoryRecord{}, fmt.Errorf("inserting workout log: %w", err)
	}
	return rec, nil
}

// DeleteLog removes exactly one workout log by id.
func (db *DB) DeleteLog(ctx context.Context, id int64) error {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM workout_logs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deleting workout log: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrLogNotFound
	}
	return nil
}
