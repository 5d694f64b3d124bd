// @title EduSync Gateway API
// @version 1.0
// @description API gateway for the EduSync learning platform.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"edusync_gateway/internal/app"
	"edusync_gateway/internal/config"
	"edusync_gateway/pkg/configwatcher"
	"edusync_gateway/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)

	go configwatcher.WatchConfig("configs/config.yaml", cfg, func(reloaded interface{}) {
		logger.Log.Info("Configuration reloaded")
		if c, ok := reloaded.(*config.Config); ok {
			application.ApplyConfig(c)
		}
	})

	defer func() {
		if err := logger.Log.Sync(); err != nil {
			log.Printf("logger sync: %v", err)
		}
	}()

	logger.Log.Info("Starting EduSync gateway",
		zap.String("port", cfg.Server.Port),
		zap.String("upstream", cfg.Upstream.BaseURL))

	application.Run()
}
