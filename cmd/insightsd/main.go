// Command insightsd serves survey analysis and export submission over gRPC.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	insightsv1 "github.com/dhenenjay/orbital-insights/gen/proto/insights/v1"
	"github.com/dhenenjay/orbital-insights/internal/common"
	"github.com/dhenenjay/orbital-insights/internal/earthengine"
	"github.com/dhenenjay/orbital-insights/internal/repository"
	"github.com/dhenenjay/orbital-insights/internal/server"
	"github.com/dhenenjay/orbital-insights/internal/services/analysis"
	"github.com/dhenenjay/orbital-insights/internal/services/exports"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := repository.Open(ctx, repository.Config{
		DSN:         cfg.Database.DSN,
		DialTimeout: cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("creating DB connection", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.HealthCheck(ctx, db, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("DB health failed", "error", err)
		os.Exit(1)
	}
	logger.Info("DB health OK")

	runsRepo := repository.NewRunRepository(db, logger)
	jobsRepo := repository.NewExportJobRepository(db, logger)

	eeClient := earthengine.NewClient(earthengine.Config{
		BaseURL:         cfg.Export.BaseURL,
		Project:         cfg.Export.Project,
		CredentialsFile: cfg.Export.CredentialsFile,
		Collection:      cfg.Export.Collection,
		Timeout:         cfg.Export.Timeout,
	}, logger)

	analysisSvc := analysis.NewService(cfg.Survey, runsRepo, logger)
	exportSvc := exports.NewService(eeClient, cfg.Export, jobsRepo, logger)

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business services
	insightsv1.RegisterInsightsServiceServer(grpcServer, server.NewInsightsServer(analysisSvc, logger))
	insightsv1.RegisterExportServiceServer(grpcServer, server.NewExportServer(exportSvc, logger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	grpcServer.GracefulStop()
	fmt.Println("stopped.")
}
