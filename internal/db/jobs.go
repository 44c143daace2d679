package db

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-matcher/internal/types"
)

// FetchAllJobs retrieves the full job corpus snapshot. Callers treat an error
// as an empty corpus: the matching core degrades to an empty result instead
// of failing the request.
func (db *DB) FetchAllJobs(ctx context.Context) ([]types.Job, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT id, title, company, location, description, skills, created_at
		 FROM jobs
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch jobs: %w", err)
	}
	defer rows.Close()

	var jobs []types.Job
	for rows.Next() {
		var j types.Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Company, &j.Location,
			&j.Description, &j.Skills, &j.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan job row: %w", err)
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read job rows: %w", err)
	}

	return jobs, nil
}

// InsertJob creates a job posting and returns its assigned ID.
func (db *DB) InsertJob(ctx context.Context, job types.Job) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx,
		`INSERT INTO jobs (title, company, location, description, skills)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id`,
		job.Title, job.Company, job.Location, job.Description, job.Skills,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert job: %w", err)
	}
	return id, nil
}

// CountJobs returns the number of job postings in the corpus.
func (db *DB) CountJobs(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, "SELECT COUNT(*) FROM jobs").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count jobs: %w", err)
	}
	return count, nil
}
