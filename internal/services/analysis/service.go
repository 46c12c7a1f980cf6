// Package analysis runs the survey pipeline end to end: load the workbook,
// classify the use cases, generate test-case records, and record the run.
package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/dhenenjay/orbital-insights/internal/classify"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/entity"
	"github.com/dhenenjay/orbital-insights/internal/repository"
	"github.com/dhenenjay/orbital-insights/internal/survey"
	"github.com/dhenenjay/orbital-insights/internal/testcases"
)

// Service is a façade over the survey, classify and testcases packages.
// The run repository is optional; without it runs are not recorded.
type Service struct {
	cfg    common.SurveyConfig
	runs   repository.RunRepository
	logger *slog.Logger
}

func NewService(cfg common.SurveyConfig, runs repository.RunRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cfg: cfg, runs: runs, logger: logger}
}

// Result carries everything one analysis pass produced.
type Result struct {
	SourcePath string
	Sheet      string
	Responses  int
	Columns    []string
	KeyColumns []string
	Stats      survey.Stats
	UseCases   []entity.UseCase
	Summary    *classify.Summary
	TestCases  []entity.TestCase
	OutputPath string
	Run        entity.AnalysisRun
}

// AnalyzeFile runs the full pipeline over the workbook at path. If outPath is
// non-empty the generated test cases are written there; otherwise the
// configured default is used. An empty sheet name selects the first sheet.
func (s *Service) AnalyzeFile(ctx context.Context, path, sheet, outPath string) (*Result, error) {
	start := time.Now().UTC()

	if outPath == "" {
		outPath = s.cfg.OutputPath
	}

	wb, err := survey.Load(path, sheet, s.logger)
	if err != nil {
		return nil, common.WrapError(err, "load survey")
	}

	useCases, stats := wb.UseCases(s.cfg.MinTextLength)
	summary := classify.Analyze(useCases, s.cfg.DetailLimit, s.logger)

	cases := testcases.Build(useCases, testcases.DefaultRules, s.cfg.TriggerLimit, s.cfg.TruncateAt)
	if err := testcases.WriteFile(outPath, cases, testcases.DefaultRules, s.logger); err != nil {
		return nil, common.WrapError(err, "write test cases")
	}

	res := &Result{
		SourcePath: path,
		Sheet:      wb.Sheet,
		Responses:  len(wb.Rows),
		Columns:    wb.Headers,
		KeyColumns: wb.KeyColumns(),
		Stats:      stats,
		UseCases:   useCases,
		Summary:    summary,
		TestCases:  cases,
		OutputPath: outPath,
		Run: entity.AnalysisRun{
			SourcePath:    path,
			Responses:     len(wb.Rows),
			UseCases:      len(useCases),
			Uncategorized: len(summary.Uncategorized),
			TestCases:     len(cases),
			StartedAt:     start,
			FinishedAt:    time.Now().UTC(),
		},
	}

	if s.runs != nil {
		if err := s.runs.CreateRun(ctx, &res.Run); err != nil {
			// recording is bookkeeping; the analysis itself succeeded
			s.logger.Warn("analysis.run.record_failed", "source_path", path, "error", err)
		}
	}

	s.logger.Info("analysis.ok",
		"source_path", path,
		"responses", res.Responses,
		"use_cases", len(useCases),
		"uncategorized", len(summary.Uncategorized),
		"test_cases", len(cases),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return res, nil
}
