package repository

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/google/uuid"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/entity"
)

type ExportJobRepository interface {
	CreateJob(ctx context.Context, job *entity.ExportJob) error
	MarkSubmitted(ctx context.Context, id uuid.UUID, operationName string) error
	MarkFailed(ctx context.Context, id uuid.UUID, message string) error
	ListJobs(ctx context.Context, limit int) ([]*entity.ExportJob, error)
}

type exportJobRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

func NewExportJobRepository(db *sql.DB, logger *slog.Logger) ExportJobRepository {
	return &exportJobRepository{
		db:     db,
		logger: logger,
	}
}

func (r *exportJobRepository) CreateJob(ctx context.Context, job *entity.ExportJob) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.Status == "" {
		job.Status = constants.JobStatusPending
	}
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO export_job
			(id, description, collection, start_date, end_date, folder, filename_prefix,
			 operation_name, status, error_message, submitted_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		job.ID.String(), job.Description, job.Collection, job.StartDate, job.EndDate,
		job.Folder, job.FilenamePrefix, job.OperationName, string(job.Status),
		job.ErrorMessage, job.SubmittedAt,
	)
	if err != nil {
		r.logger.Error("repo.export_job.create_failed", "description", job.Description, "error", err)
		return err
	}
	return nil
}

func (r *exportJobRepository) MarkSubmitted(ctx context.Context, id uuid.UUID, operationName string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE export_job SET status = $1, operation_name = $2 WHERE id = $3`,
		string(constants.JobStatusSubmitted), operationName, id.String(),
	)
	return err
}

func (r *exportJobRepository) MarkFailed(ctx context.Context, id uuid.UUID, message string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE export_job SET status = $1, error_message = $2 WHERE id = $3`,
		string(constants.JobStatusFailed), message, id.String(),
	)
	return err
}

func (r *exportJobRepository) ListJobs(ctx context.Context, limit int) ([]*entity.ExportJob, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, description, collection, start_date, end_date, folder, filename_prefix,
		        operation_name, status, error_message, submitted_at
		 FROM export_job
		 ORDER BY submitted_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.ExportJob
	for rows.Next() {
		var job entity.ExportJob
		var id, status string
		if err := rows.Scan(&id, &job.Description, &job.Collection, &job.StartDate, &job.EndDate,
			&job.Folder, &job.FilenamePrefix, &job.OperationName, &status,
			&job.ErrorMessage, &job.SubmittedAt); err != nil {
			return nil, err
		}
		if job.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		job.Status = constants.JobStatus(status)
		out = append(out, &job)
	}
	return out, rows.Err()
}
