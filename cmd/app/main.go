package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/choreo-timeline/internal/config"
	"github.com/bagdasarian/choreo-timeline/internal/db"
	"github.com/bagdasarian/choreo-timeline/internal/handler"
	"github.com/bagdasarian/choreo-timeline/internal/handler/server"
	"github.com/bagdasarian/choreo-timeline/internal/logging"
	"github.com/bagdasarian/choreo-timeline/internal/metrics"
	"github.com/bagdasarian/choreo-timeline/internal/repository/postgres"
	"github.com/bagdasarian/choreo-timeline/internal/service"
	"github.com/bagdasarian/choreo-timeline/internal/timeline"
)

func main() {
	logger := logging.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", err)
		os.Exit(1)
	}
	if err := logging.SetLevel(cfg.LogLevel); err != nil {
		logger.Error("invalid log level", err, logging.String("log_level", cfg.LogLevel))
		os.Exit(1)
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 10*time.Second)
	database := db.MustLoad(connectCtx, cfg)
	cancelConnect()
	defer database.Close()
	logger.Info("connected to database",
		logging.String("host", cfg.Database.Host),
		logging.String("name", cfg.Database.DBName),
	)

	m := metrics.New()

	teamRepo := postgres.NewTeamRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	choreoRepo := postgres.NewChoreoRepository(database)
	lineupRepo := postgres.NewLineupRepository(database)
	participationRepo := postgres.NewParticipationRepository(database)

	layout := timeline.NewFormationLayout(cfg.Timeline.MatLanes, cfg.Timeline.DefaultRowY)
	interpolator := timeline.NewInterpolator(layout)
	grid := timeline.NewCountGrid(cfg.Timeline.BeatsPerBar)
	guard := timeline.NewOrderingGuard(time.Now)
	colors := timeline.NewColorAssigner(timeline.DefaultPalette, nil)

	teamService := service.NewTeamService(teamRepo, m, logging.NewLogger(os.Stdout, "team-service"))
	choreoService := service.NewChoreoService(choreoRepo, memberRepo, interpolator, grid,
		cfg.Timeline.MaxFrameWindow, m,
		logging.NewLogger(os.Stdout, "choreo-service"))
	lineupService := service.NewLineupService(choreoRepo, lineupRepo, m, logging.NewLogger(os.Stdout, "lineup-service"))
	positionService := service.NewPositionService(database, guard, m, logging.NewLogger(os.Stdout, "position-service"))
	participationService := service.NewParticipationService(database, choreoRepo, memberRepo, participationRepo, colors, m,
		logging.NewLogger(os.Stdout, "participation-service"))

	h := handler.NewHandler(
		teamService,
		choreoService,
		lineupService,
		positionService,
		participationService,
		grid,
		logging.NewLogger(os.Stdout, "handler"),
	)
	srv := server.NewServer(h, cfg.Addr, m, logging.NewLogger(os.Stdout, "http"))

	go func() {
		if err := srv.Start(); err != nil {
			logger.Error("server failed to start", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", err)
	}
}
