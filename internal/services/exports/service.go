// Package exports submits composite export jobs and keeps a local record of
// what was sent. The remote service owns execution.
package exports

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dhenenjay/orbital-insights/constants"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/earthengine"
	"github.com/dhenenjay/orbital-insights/internal/entity"
	"github.com/dhenenjay/orbital-insights/internal/repository"
)

// Submitter is what this service needs from the imagery client.
type Submitter interface {
	SubmitExport(ctx context.Context, req earthengine.ExportRequest) (string, error)
}

// Service wires the imagery client to the job record. The job repository is
// optional; without it submissions are fire-and-forget.
type Service struct {
	client Submitter
	cfg    common.ExportConfig
	jobs   repository.ExportJobRepository
	logger *slog.Logger
}

func NewService(client Submitter, cfg common.ExportConfig, jobs repository.ExportJobRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{client: client, cfg: cfg, jobs: jobs, logger: logger}
}

// Submit fills config defaults into req, submits it, and records the outcome.
// On success the returned job carries the remote operation name.
func (s *Service) Submit(ctx context.Context, req earthengine.ExportRequest) (*entity.ExportJob, error) {
	if req.Folder == "" {
		req.Folder = s.cfg.Folder
	}
	if req.FilenamePrefix == "" {
		req.FilenamePrefix = s.cfg.FilenamePrefix
	}
	if req.Description == "" {
		req.Description = req.FilenamePrefix
	}
	if req.ScaleMeters <= 0 {
		req.ScaleMeters = s.cfg.ScaleMeters
	}
	if req.CRS == "" {
		req.CRS = s.cfg.CRS
	}
	if req.MaxPixels <= 0 {
		req.MaxPixels = s.cfg.MaxPixels
	}

	job := &entity.ExportJob{
		ID:             uuid.New(),
		Status:         constants.JobStatusPending,
		Description:    req.Description,
		Collection:     s.cfg.Collection,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Folder:         req.Folder,
		FilenamePrefix: req.FilenamePrefix,
		SubmittedAt:    time.Now().UTC(),
	}
	if s.jobs != nil {
		if err := s.jobs.CreateJob(ctx, job); err != nil {
			return nil, fmt.Errorf("record job: %w", err)
		}
	}

	opName, err := s.client.SubmitExport(ctx, req)
	if err != nil {
		job.Status = constants.JobStatusFailed
		job.ErrorMessage = err.Error()
		if s.jobs != nil {
			if mErr := s.jobs.MarkFailed(ctx, job.ID, err.Error()); mErr != nil {
				s.logger.Warn("exports.job.mark_failed_error", "job_id", job.ID, "error", mErr)
			}
		}
		return nil, fmt.Errorf("submit: %w", err)
	}

	job.OperationName = opName
	job.Status = constants.JobStatusSubmitted
	if s.jobs != nil {
		if err := s.jobs.MarkSubmitted(ctx, job.ID, opName); err != nil {
			s.logger.Warn("exports.job.mark_submitted_error", "job_id", job.ID, "error", err)
		}
	}

	s.logger.Info("exports.submit.ok",
		"job_id", job.ID,
		"operation", opName,
		"description", job.Description,
	)
	return job, nil
}

// ListJobs returns the most recent recorded jobs.
func (s *Service) ListJobs(ctx context.Context, limit int) ([]*entity.ExportJob, error) {
	if s.jobs == nil {
		return nil, common.ErrDatabase
	}
	return s.jobs.ListJobs(ctx, limit)
}
