package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/extraction"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/matching"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Match a resume against the job corpus",
	Long: `Extracts a skill set (or role recommendations) from a resume document and
ranks the job corpus against it: filter -> retrieve -> score -> rank -> truncate.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchResume      string
	matchMode        string
	matchLocation    string
	matchTopK        int
	matchTruncateN   int
	matchAPIKey      string
	matchDatabaseURL string
	matchVerbose     bool
)

func init() {
	// Config file flag (processed first)
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchResume, "resume", "r", "", "Path to resume file (.pdf, .docx, .html, or plain text)")
	matchCommand.Flags().StringVarP(&matchMode, "mode", "m", "", "Matching mode: skills or roles (default skills)")
	matchCommand.Flags().StringVarP(&matchLocation, "location", "l", "", "Candidate location (default Hyderabad)")
	matchCommand.Flags().IntVar(&matchTopK, "top-k", 0, "Retrieval depth override")
	matchCommand.Flags().IntVar(&matchTruncateN, "truncate", 0, "Result cap override")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	matchCommand.Flags().StringVar(&matchAPIKey, "api-key", "", "Gemini API Key (optional, defaults to GEMINI_API_KEY env var)")

	matchCommand.Flags().StringVar(&matchDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
		if matchVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", matchConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	if cmd.Flags().Changed("mode") {
		cfg.Mode = matchMode
	}
	if cmd.Flags().Changed("location") {
		cfg.Location = matchLocation
	}
	if cmd.Flags().Changed("top-k") {
		cfg.TopK = matchTopK
	}
	if cmd.Flags().Changed("truncate") {
		cfg.TruncateN = matchTruncateN
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = matchAPIKey
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}

	// Step 3: Apply environment defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
	})

	// Step 4: Validate required fields
	if matchResume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required (via --db-url, config, or DATABASE_URL env var)")
	}

	matchCfg, err := cfg.MatchConfig()
	if err != nil {
		return err
	}

	resumeText, err := readResume(matchResume)
	if err != nil {
		return err
	}
	if strings.TrimSpace(resumeText) == "" {
		return fmt.Errorf("resume file %s contains no extractable text", matchResume)
	}

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	// No API key means fallback-only extraction, not an error.
	var client llm.Client
	if cfg.APIKey != "" {
		client, err = llm.NewClient(ctx, nil, cfg.APIKey)
		if err != nil {
			return fmt.Errorf("failed to create LLM client: %w", err)
		}
		defer func() { _ = client.Close() }()
	}

	extractor := extraction.New(client, database)

	profile := profileForMode(ctx, extractor, matchCfg.Mode, resumeText)

	matcher := matching.New(database, matchCfg)
	matches := matcher.Match(ctx, resumeText, profile, "")

	if cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintProfile(&profile)
		printer.PrintMatches(matches)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(matches)
}

// profileExtractor derives a matching profile from résumé text.
type profileExtractor interface {
	ExtractSkills(ctx context.Context, resumeText string) types.Profile
	RecommendRoles(ctx context.Context, resumeText string) types.Profile
}

// profileForMode runs exactly one extraction, the one the pipeline mode needs.
func profileForMode(ctx context.Context, e profileExtractor, mode matching.Mode, resumeText string) types.Profile {
	if mode == matching.ModeRoles {
		return e.RecommendRoles(ctx, resumeText)
	}
	return e.ExtractSkills(ctx, resumeText)
}

// readResume extracts plain text from a resume file, dispatching on the file
// extension.
func readResume(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open resume file: %w", err)
	}
	defer func() { _ = f.Close() }()

	text, err := ingestion.ExtractText(f, contentTypeForPath(path))
	if err != nil {
		return "", fmt.Errorf("failed to extract resume text: %w", err)
	}
	return ingestion.CleanText(text), nil
}

func contentTypeForPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return "application/pdf"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	case ".html", ".htm":
		return "text/html"
	default:
		return "text/plain"
	}
}
