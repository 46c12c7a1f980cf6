// Command insights analyzes a survey workbook: it classifies free-text
// answers into geospatial categories, scores capability coverage, prints the
// report, and writes the generated test-case JSON.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/repository"
	"github.com/dhenenjay/orbital-insights/internal/services/analysis"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		file  = flag.String("file", "", "survey workbook path (.xlsx, required)")
		sheet = flag.String("sheet", "", "sheet name (defaults to the first sheet)")
		out   = flag.String("out", "", "test-case JSON output path (defaults to user-test-cases.json)")
		xlsx  = flag.String("xlsx", "", "optional path for a classified-use-case workbook")
		cat   = flag.String("category", "", "limit the report to one category (name or keyword)")
		top   = flag.Int("top", 0, "size of the detailed-analysis window (default from SURVEY_DETAIL_LIMIT)")
		dbDSN = flag.String("db", "", "optional DSN for recording runs (postgres:// or sqlite path)")
		quiet = flag.Bool("quiet", false, "suppress the report, log only")
	)
	flag.Parse()

	if *file == "" {
		printError("Error: --file is required\n")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()
	if *top > 0 {
		cfg.Survey.DetailLimit = *top
	}

	var runs repository.RunRepository
	if *dbDSN != "" {
		db, err := repository.Open(ctx, repository.Config{DSN: *dbDSN, DialTimeout: cfg.Database.DialTimeout}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(db, logger)
		runs = repository.NewRunRepository(db, logger)
	}

	svc := analysis.NewService(cfg.Survey, runs, logger)
	res, err := svc.AnalyzeFile(ctx, *file, *sheet, *out)
	if err != nil {
		logger.Error("analysis failed", "file", *file, "error", err)
		os.Exit(1)
	}

	if *xlsx != "" {
		b, err := svc.ExportXLSX(res)
		if err != nil {
			logger.Error("xlsx export failed", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsx, b, 0o644); err != nil {
			logger.Error("xlsx write failed", "path", *xlsx, "error", err)
			os.Exit(1)
		}
	}

	if *quiet {
		return
	}
	if *cat != "" {
		category, ok := constants.Canonicalize(*cat)
		if !ok {
			printError("Error: unknown category %q (valid: %s)\n",
				*cat, strings.Join(constants.AsStringSlice(), ", "))
			os.Exit(1)
		}
		analysis.RenderCategory(os.Stdout, res, category)
		return
	}
	analysis.RenderReport(os.Stdout, res)
}
