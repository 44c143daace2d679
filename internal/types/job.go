// Package types defines the shared data structures for the job matching pipeline.
package types

import "time"

// Job is a single job posting as stored in the jobs table.
// The matching core treats it as read-only.
type Job struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	// Skills is a comma-separated list of free-text skill tokens.
	// Tokens are untrimmed in storage and must be trimmed before comparison.
	Skills string `json:"skills"`

	CreatedAt time.Time `json:"created_at,omitempty"`
}

// RankedJob is a job with its computed match score, produced fresh per request.
type RankedJob struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Company     string  `json:"company"`
	Location    string  `json:"location"`
	Description string  `json:"description"`
	Skills      string  `json:"skills"`
	FinalScore  float64 `json:"final_score"` // [0,100], rounded to 2 decimals

	Components ScoreComponents `json:"components"`
}

// ScoreComponents holds the independent score factors before blending.
// Each component is in [0,100].
type ScoreComponents struct {
	Location   float64 `json:"location"`
	Skill      float64 `json:"skill"`
	Experience float64 `json:"experience"`
	Semantic   float64 `json:"semantic"`
}
