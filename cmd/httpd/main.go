package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/jonesrussell/grievance-analyzer/internal/analyzer"
	"github.com/jonesrussell/grievance-analyzer/internal/api"
	"github.com/jonesrussell/grievance-analyzer/internal/config"
	"github.com/jonesrussell/grievance-analyzer/internal/logger"
	"github.com/jonesrussell/grievance-analyzer/internal/logging"
	"github.com/jonesrussell/grievance-analyzer/internal/ml"
	"github.com/jonesrussell/grievance-analyzer/internal/telemetry"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		os.Stderr.WriteString("failed to load config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Must(logger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	})
	defer func() { _ = log.Sync() }()

	log.Info("Starting grievance analyzer",
		logger.String("service", cfg.Service.Name),
		logger.String("version", cfg.Service.Version),
		logger.Int("port", cfg.Service.Port),
		logger.Bool("debug", cfg.Service.Debug),
	)

	adapter := logging.NewAdapter(log)
	tp := telemetry.NewProvider()

	// The statistical model must be ready before the server accepts traffic.
	model := ml.NewClassifier(cfg.Model.Dir, cfg.Model.MaxFeatures, adapter)
	model.OnTrained(tp.RecordModelTrained)
	model.OnLoaded(tp.RecordModelLoaded)
	if err := model.Initialize(analyzer.TrainingExamples(), cfg.Model.Retrain); err != nil {
		log.Fatal("Model initialization failed", logger.Error(err))
	}

	service := analyzer.NewService(adapter, model, tp)
	handler := api.NewHandler(service, model, adapter)

	serverCfg := api.ServerConfig{
		ServiceName:    cfg.Service.Name,
		ServiceVersion: cfg.Service.Version,
		Port:           cfg.Service.Port,
		Debug:          cfg.Service.Debug,
		ReadTimeout:    cfg.Service.ReadTimeout,
		WriteTimeout:   cfg.Service.WriteTimeout,
	}

	server := api.NewServer(serverCfg, log, func(router *gin.Engine) {
		if cfg.RateLimit.Enabled {
			router.Use(api.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
		api.SetupRoutes(router, handler, tp)
	})

	if err := server.RunWithGracefulShutdown(context.Background()); err != nil {
		log.Fatal("Server error", logger.Error(err))
	}
}
