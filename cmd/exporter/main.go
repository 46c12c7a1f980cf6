// Command exporter submits one cloud-masked median-composite export job to
// the imagery service and prints the job id. The job runs remotely; nothing
// is polled or downloaded here.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/earthengine"
	"github.com/dhenenjay/orbital-insights/internal/repository"
	"github.com/dhenenjay/orbital-insights/internal/services/exports"
)

func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		fromStr    = flag.String("from", "2024-08-01", "start date YYYY-MM-DD")
		toStr      = flag.String("to", "2024-09-01", "end date YYYY-MM-DD (exclusive)")
		regionPath = flag.String("region", "", "GeoJSON polygon file (defaults to the SF Bay box)")
		prefix     = flag.String("prefix", "", "export filename prefix (defaults to EE_FILENAME_PREFIX)")
		folder     = flag.String("folder", "", "Drive folder (defaults to EE_DRIVE_FOLDER)")
		dbDSN      = flag.String("db", "", "optional DSN for recording jobs (postgres:// or sqlite path)")
		dryRun     = flag.Bool("dry-run", false, "print the expression instead of submitting")
	)
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	region := earthengine.DefaultRegion()
	if *regionPath != "" {
		var err error
		if region, err = earthengine.LoadRegion(*regionPath); err != nil {
			logger.Error("failed to load region", "path", *regionPath, "error", err)
			os.Exit(1)
		}
	}

	if *dryRun {
		expr := earthengine.CompositeExpression(earthengine.CompositeParams{
			Collection: cfg.Export.Collection,
			StartDate:  *fromStr,
			EndDate:    *toStr,
			Region:     region,
		})
		b, err := json.MarshalIndent(expr, "", "  ")
		if err != nil {
			logger.Error("failed to encode expression", "error", err)
			os.Exit(1)
		}
		fmt.Println(string(b))
		return
	}

	if cfg.Export.Project == "" {
		printError("Error: EE_PROJECT is required\n")
		os.Exit(1)
	}

	var jobs repository.ExportJobRepository
	if *dbDSN != "" {
		db, err := repository.Open(ctx, repository.Config{DSN: *dbDSN, DialTimeout: cfg.Database.DialTimeout}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repository.Close(db, logger)
		jobs = repository.NewExportJobRepository(db, logger)
	}

	client := earthengine.NewClient(earthengine.Config{
		BaseURL:         cfg.Export.BaseURL,
		Project:         cfg.Export.Project,
		CredentialsFile: cfg.Export.CredentialsFile,
		Collection:      cfg.Export.Collection,
		Timeout:         cfg.Export.Timeout,
	}, logger)

	svc := exports.NewService(client, cfg.Export, jobs, logger)
	job, err := svc.Submit(ctx, earthengine.ExportRequest{
		StartDate:      *fromStr,
		EndDate:        *toStr,
		Region:         region,
		Folder:         *folder,
		FilenamePrefix: *prefix,
	})
	if err != nil {
		logger.Error("export submission failed", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Export task started: %s\n", job.OperationName)
	fmt.Println("Check https://code.earthengine.google.com/tasks for progress")
	fmt.Printf("File will appear in your Drive in the %s folder\n", job.Folder)
}
