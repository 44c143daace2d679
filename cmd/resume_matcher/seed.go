package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/types"
)

// seedFetchConcurrency bounds how many posting URLs resolve in parallel.
const seedFetchConcurrency = 4

var (
	seedFile        string
	seedDatabaseURL string
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load job postings into the corpus",
	Long: `Reads a JSON array of job postings and inserts them into the jobs table.

Each entry carries title, company, location, skills, and either an inline
description or a description_url to fetch the posting text from.`,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Path to jobs JSON file (required)")
	seedCmd.Flags().StringVar(&seedDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	_ = seedCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(seedCmd)
}

// seedEntry is one posting in the seed file.
type seedEntry struct {
	Title          string `json:"title"`
	Company        string `json:"company"`
	Location       string `json:"location"`
	Description    string `json:"description,omitempty"`
	DescriptionURL string `json:"description_url,omitempty"`
	Skills         string `json:"skills"`
}

func runSeed(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	databaseURL := seedDatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL == "" {
		return fmt.Errorf("database URL is required (via --db-url or DATABASE_URL env var)")
	}

	data, err := os.ReadFile(seedFile)
	if err != nil {
		return fmt.Errorf("failed to read seed file: %w", err)
	}

	var entries []seedEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("failed to parse seed JSON: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("seed file %s contains no jobs", seedFile)
	}

	for i, e := range entries {
		if e.Title == "" {
			return fmt.Errorf("seed entry %d: title is required", i)
		}
		if e.Description == "" && e.DescriptionURL == "" {
			return fmt.Errorf("seed entry %d (%s): description or description_url is required", i, e.Title)
		}
	}

	if err := resolveDescriptions(ctx, entries); err != nil {
		return err
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	for _, e := range entries {
		id, err := database.InsertJob(ctx, types.Job{
			Title:       e.Title,
			Company:     e.Company,
			Location:    e.Location,
			Description: e.Description,
			Skills:      e.Skills,
		})
		if err != nil {
			return fmt.Errorf("failed to insert %q: %w", e.Title, err)
		}
		fmt.Printf("inserted job %d: %s\n", id, e.Title)
	}

	fmt.Printf("seeded %d jobs\n", len(entries))
	return nil
}

// resolveDescriptions fetches posting text for URL-backed entries, a bounded
// number at a time. One unreachable URL fails the whole seed run so a partial
// corpus never loads silently.
func resolveDescriptions(ctx context.Context, entries []seedEntry) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(seedFetchConcurrency)

	for i := range entries {
		if entries[i].DescriptionURL == "" {
			continue
		}
		g.Go(func() error {
			result, err := fetch.URL(ctx, entries[i].DescriptionURL, nil)
			if err != nil {
				return fmt.Errorf("failed to fetch %q: %w", entries[i].Title, err)
			}
			entries[i].Description = result.Text
			return nil
		})
	}

	return g.Wait()
}
