package server

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	v1 "github.com/dhenenjay/orbital-insights/gen/proto/insights/v1"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/services/analysis"
	"github.com/dhenenjay/orbital-insights/internal/utils"
)

type InsightsServer struct {
	v1.UnimplementedInsightsServiceServer
	svc    *analysis.Service
	logger *slog.Logger
}

func NewInsightsServer(svc *analysis.Service, logger *slog.Logger) *InsightsServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &InsightsServer{svc: svc, logger: logger}
}

func (s *InsightsServer) AnalyzeSurvey(ctx context.Context, req *v1.AnalyzeSurveyRequest) (*v1.AnalyzeSurveyResponse, error) {
	ctx = common.WithRequestID(ctx, uuid.New().String())

	path := strings.TrimSpace(req.GetFilePath())
	validator := common.NewValidator()
	validator.Field("file_path", path, common.Required)
	if err := common.ValidateAndReturnError(validator); err != nil {
		return nil, err
	}

	res, err := s.svc.AnalyzeFile(ctx, path, req.GetSheet(), req.GetOutputPath())
	if err != nil {
		s.logger.Error("server.analyze.failed",
			"req_id", common.RequestIDFromContext(ctx),
			"file_path", path,
			"err", err,
		)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, common.NotFoundError("survey workbook not found: " + path)
		}
		return nil, common.InternalErrorf("analysis: %v", err)
	}

	var xlsx []byte
	if req.GetIncludeXlsx() {
		if xlsx, err = s.svc.ExportXLSX(res); err != nil {
			s.logger.Error("server.analyze.xlsx_failed",
				"req_id", common.RequestIDFromContext(ctx),
				"file_path", path,
				"err", err,
			)
			return nil, common.InternalErrorf("xlsx export: %v", err)
		}
	}

	return &v1.AnalyzeSurveyResponse{
		Responses:     uint32(res.Responses),
		UseCases:      uint32(len(res.UseCases)),
		Uncategorized: uint32(len(res.Summary.Uncategorized)),
		TestCases:     uint32(len(res.TestCases)),
		OutputPath:    res.OutputPath,
		Buckets:       utils.ToPBBuckets(res.Summary),
		Capabilities:  utils.ToPBCapabilities(res.Summary),
		Support:       utils.ToPBSupport(res.Summary),
		Xlsx:          xlsx,
	}, nil
}
