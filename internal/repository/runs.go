package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dhenenjay/orbital-insights/internal/entity"
)

type RunRepository interface {
	CreateRun(ctx context.Context, run *entity.AnalysisRun) error
	ListRuns(ctx context.Context, limit int) ([]*entity.AnalysisRun, error)
}

type runRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewRunRepository(db *sql.DB, logger *slog.Logger) RunRepository {
	return &runRepository{
		db:     db,
		logger: logger,
	}
}

func (r *runRepository) CreateRun(ctx context.Context, run *entity.AnalysisRun) error {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO analysis_run
			(id, source_path, responses, use_cases, uncategorized, test_cases, started_at, finished_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		run.ID.String(), run.SourcePath, run.Responses, run.UseCases,
		run.Uncategorized, run.TestCases, run.StartedAt, run.FinishedAt,
	)
	if err != nil {
		r.logger.Error("repo.run.create_failed", "source_path", run.SourcePath, "error", err)
		return err
	}
	return nil
}

func (r *runRepository) ListRuns(ctx context.Context, limit int) ([]*entity.AnalysisRun, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, source_path, responses, use_cases, uncategorized, test_cases, started_at, finished_at
		 FROM analysis_run
		 ORDER BY started_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.AnalysisRun
	for rows.Next() {
		var run entity.AnalysisRun
		var id string
		if err := rows.Scan(&id, &run.SourcePath, &run.Responses, &run.UseCases,
			&run.Uncategorized, &run.TestCases, &run.StartedAt, &run.FinishedAt); err != nil {
			return nil, err
		}
		if run.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		out = append(out, &run)
	}
	return out, rows.Err()
}
