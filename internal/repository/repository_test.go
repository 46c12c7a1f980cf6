package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), Config{DSN: ":memory:"}, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpenBootstrapsSchema(t *testing.T) {
	db := openTestDB(t)

	// both tables must exist and be queryable after Open
	for _, table := range []string{"analysis_run", "export_job"} {
		var n int
		err := db.QueryRowContext(context.Background(),
			"SELECT COUNT(*) FROM "+table).Scan(&n)
		require.NoError(t, err, "table %s missing", table)
		assert.Zero(t, n)
	}

	require.NoError(t, HealthCheck(context.Background(), db, time.Second, slog.Default()))
}

func TestRunRepositoryRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db, slog.Default())
	ctx := context.Background()

	started := time.Date(2024, 8, 1, 12, 0, 0, 0, time.UTC)
	first := &entity.AnalysisRun{
		SourcePath:    "responses.xlsx",
		Responses:     42,
		UseCases:      17,
		Uncategorized: 3,
		TestCases:     5,
		StartedAt:     started,
		FinishedAt:    started.Add(2 * time.Second),
	}
	require.NoError(t, repo.CreateRun(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID, "CreateRun must assign an id")

	second := &entity.AnalysisRun{
		SourcePath: "followup.xlsx",
		StartedAt:  started.Add(time.Hour),
		FinishedAt: started.Add(time.Hour + time.Second),
	}
	require.NoError(t, repo.CreateRun(ctx, second))

	runs, err := repo.ListRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)

	// newest first
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)
	assert.Equal(t, "responses.xlsx", runs[1].SourcePath)
	assert.Equal(t, 42, runs[1].Responses)
	assert.Equal(t, 3, runs[1].Uncategorized)
}

func TestRunRepositoryLimit(t *testing.T) {
	db := openTestDB(t)
	repo := NewRunRepository(db, slog.Default())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateRun(ctx, &entity.AnalysisRun{
			SourcePath: "responses.xlsx",
			StartedAt:  time.Now().Add(time.Duration(i) * time.Minute),
			FinishedAt: time.Now(),
		}))
	}

	runs, err := repo.ListRuns(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestExportJobLifecycle(t *testing.T) {
	db := openTestDB(t)
	repo := NewExportJobRepository(db, slog.Default())
	ctx := context.Background()

	job := &entity.ExportJob{
		Description:    "sf_bay_area_sentinel2_10m",
		Collection:     constants.Sentinel2Collection,
		StartDate:      "2024-08-01",
		EndDate:        "2024-09-01",
		Folder:         "EarthEngine_Exports",
		FilenamePrefix: "sf_bay_area_sentinel2_10m",
		SubmittedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateJob(ctx, job))
	assert.NotEqual(t, uuid.Nil, job.ID)

	jobs, err := repo.ListJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, constants.JobStatusPending, jobs[0].Status)

	require.NoError(t, repo.MarkSubmitted(ctx, job.ID, "projects/p/operations/XYZ"))
	jobs, err = repo.ListJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, constants.JobStatusSubmitted, jobs[0].Status)
	assert.Equal(t, "projects/p/operations/XYZ", jobs[0].OperationName)
	assert.Empty(t, jobs[0].ErrorMessage)
}

func TestExportJobMarkFailed(t *testing.T) {
	db := openTestDB(t)
	repo := NewExportJobRepository(db, slog.Default())
	ctx := context.Background()

	job := &entity.ExportJob{
		Description:    "export",
		Collection:     constants.Sentinel2Collection,
		StartDate:      "2024-08-01",
		EndDate:        "2024-09-01",
		Folder:         "EarthEngine_Exports",
		FilenamePrefix: "export",
		SubmittedAt:    time.Now().UTC(),
	}
	require.NoError(t, repo.CreateJob(ctx, job))
	require.NoError(t, repo.MarkFailed(ctx, job.ID, "permission denied"))

	jobs, err := repo.ListJobs(ctx, 10)
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, constants.JobStatusFailed, jobs[0].Status)
	assert.Equal(t, "permission denied", jobs[0].ErrorMessage)
}
