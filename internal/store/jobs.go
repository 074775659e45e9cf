package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"jobboard-engine/internal/domain"
)

func Migrate(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var v int
	if err := tx.QueryRow(`PRAGMA user_version;`).Scan(&v); err != nil {
		return err
	}
	if v >= 1 {
		return tx.Commit()
	}

	// ---- Schema v1 ----

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS jobs (
  id TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  company TEXT NOT NULL,
  location TEXT NOT NULL DEFAULT '',
  skills TEXT NOT NULL DEFAULT '[]',
  type TEXT NOT NULL DEFAULT '',
  category TEXT NOT NULL DEFAULT '',
  experience_level TEXT NOT NULL DEFAULT '',
  is_remote INTEGER NOT NULL DEFAULT 0,
  can_refer INTEGER NOT NULL DEFAULT 0,
  is_trusted INTEGER NOT NULL DEFAULT 0,
  posted_at TEXT NOT NULL DEFAULT '',
  source_url TEXT NOT NULL DEFAULT ''
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE TABLE IF NOT EXISTS favorites (
  job_id TEXT PRIMARY KEY,
  added_at TEXT NOT NULL
);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
CREATE INDEX IF NOT EXISTS idx_jobs_posted_at
ON jobs(posted_at);
`); err != nil {
		return err
	}

	if _, err := tx.Exec(`PRAGMA user_version = 1;`); err != nil {
		return err
	}

	return tx.Commit()
}

// ListJobs returns every stored job. Filtering and ranking happen in the
// engine, not in SQL: a taxonomy edit must reclassify the same rows
// without another query shape.
func ListJobs(ctx context.Context, db *sql.DB) ([]domain.JobRecord, error) {
	rows, err := db.QueryContext(ctx, `
SELECT id, title, company, location, skills, type, category,
       experience_level, is_remote, can_refer, is_trusted, posted_at, source_url
FROM jobs
ORDER BY rowid;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.JobRecord
	for rows.Next() {
		var j domain.JobRecord
		var skillsJSON string
		if err := rows.Scan(
			&j.ID,
			&j.Title,
			&j.Company,
			&j.Location,
			&skillsJSON,
			&j.Type,
			&j.Category,
			&j.ExperienceLevel,
			&j.IsRemote,
			&j.CanRefer,
			&j.IsTrusted,
			&j.PostedAt,
			&j.SourceURL,
		); err != nil {
			return nil, err
		}
		_ = json.Unmarshal([]byte(skillsJSON), &j.Skills)
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// UpsertJob writes a job row, replacing an existing one with the same id.
func UpsertJob(ctx context.Context, db *sql.DB, j domain.JobRecord) error {
	skillsB, _ := json.Marshal(j.Skills)
	_, err := db.ExecContext(ctx, `
INSERT INTO jobs (id, title, company, location, skills, type, category,
                  experience_level, is_remote, can_refer, is_trusted, posted_at, source_url)
VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET
  title=excluded.title, company=excluded.company, location=excluded.location,
  skills=excluded.skills, type=excluded.type, category=excluded.category,
  experience_level=excluded.experience_level, is_remote=excluded.is_remote,
  can_refer=excluded.can_refer, is_trusted=excluded.is_trusted,
  posted_at=excluded.posted_at, source_url=excluded.source_url;`,
		j.ID, j.Title, j.Company, j.Location, string(skillsB), j.Type, j.Category,
		j.ExperienceLevel, j.IsRemote, j.CanRefer, j.IsTrusted, j.PostedAt, j.SourceURL,
	)
	if err != nil {
		return fmt.Errorf("upsert job %s: %w", j.ID, err)
	}
	return nil
}
