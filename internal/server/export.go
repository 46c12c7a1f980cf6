package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/dhenenjay/orbital-insights/gen/proto/insights/v1"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/earthengine"
	"github.com/dhenenjay/orbital-insights/internal/services/exports"
	"github.com/dhenenjay/orbital-insights/internal/utils"
)

type ExportServer struct {
	v1.UnimplementedExportServiceServer
	svc    *exports.Service
	logger *slog.Logger
}

func NewExportServer(svc *exports.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) SubmitExport(ctx context.Context, req *v1.SubmitExportRequest) (*v1.SubmitExportResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.New().String())

	validator := common.NewValidator()
	validator.Field("start_date", req.GetStartDate(), common.Required, common.DateYMD)
	validator.Field("end_date", req.GetEndDate(), common.Required, common.DateYMD)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}
	from, _ := utils.ParseYMD(req.GetStartDate())
	to, _ := utils.ParseYMD(req.GetEndDate())
	if !from.Before(to) {
		return nil, common.InvalidArgumentError("start_date must be before end_date")
	}
	// Drive chokes on very long names; bound them here rather than round-trip
	// a remote rejection.
	for _, f := range []struct{ name, v string }{
		{"description", req.GetDescription()},
		{"filename_prefix", req.GetFilenamePrefix()},
	} {
		if ve := common.MaxLength(f.name, f.v, 100); ve != nil {
			return nil, common.InvalidArgumentError(ve.Error())
		}
	}

	var region earthengine.Polygon
	if gj := strings.TrimSpace(req.GetRegionGeojson()); gj != "" {
		var doc struct {
			Type        string              `json:"type"`
			Coordinates earthengine.Polygon `json:"coordinates"`
		}
		if err := json.Unmarshal([]byte(gj), &doc); err != nil || doc.Type != "Polygon" {
			return nil, common.InvalidArgumentError("region_geojson must be a GeoJSON Polygon geometry")
		}
		region = doc.Coordinates
		if err := region.Validate(); err != nil {
			return nil, common.InvalidArgumentErrorf("region_geojson: %v", err)
		}
	}

	job, err := s.svc.Submit(ctx, earthengine.ExportRequest{
		Description:    req.GetDescription(),
		StartDate:      req.GetStartDate(),
		EndDate:        req.GetEndDate(),
		Region:         region,
		Folder:         req.GetFolder(),
		FilenamePrefix: req.GetFilenamePrefix(),
	})
	if err != nil {
		s.logger.Error("server.export.failed",
			"req_id", common.RequestIDFromContext(ctx),
			"start_date", req.GetStartDate(),
			"end_date", req.GetEndDate(),
			"err", err,
		)
		return nil, common.UnavailableError(err.Error())
	}

	return &v1.SubmitExportResponse{Job: utils.ToPBExportJob(job)}, nil
}

func (s *ExportServer) ListExportJobs(ctx context.Context, req *v1.ListExportJobsRequest) (*v1.ListExportJobsResponse, error) {
	jobs, err := s.svc.ListJobs(ctx, int(req.GetLimit()))
	if err != nil {
		s.logger.Error("server.export.list_failed", "err", err)
		return nil, common.InternalErrorf("list jobs: %v", err)
	}

	out := make([]*v1.ExportJob, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, utils.ToPBExportJob(j))
	}
	return &v1.ListExportJobsResponse{Jobs: out}, nil
}
