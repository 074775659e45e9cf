package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// ListFavorites returns favorited job ids in the order they were added.
func ListFavorites(ctx context.Context, db *sql.DB) ([]string, error) {
	rows, err := db.QueryContext(ctx, `SELECT job_id FROM favorites ORDER BY added_at, job_id;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

func AddFavorite(ctx context.Context, db *sql.DB, jobID string) error {
	_, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO favorites (job_id, added_at) VALUES (?, ?);`,
		jobID, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("add favorite %s: %w", jobID, err)
	}
	return nil
}

func RemoveFavorite(ctx context.Context, db *sql.DB, jobID string) error {
	_, err := db.ExecContext(ctx, `DELETE FROM favorites WHERE job_id = ?;`, jobID)
	if err != nil {
		return fmt.Errorf("remove favorite %s: %w", jobID, err)
	}
	return nil
}
