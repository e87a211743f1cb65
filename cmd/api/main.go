package main

import (
	"context"
	"flag"

	"github.com/asthait/studentms/internal/bootstrap"
	"github.com/asthait/studentms/internal/pkg/logger"
	"github.com/asthait/studentms/internal/server"
)

// @title Student Management System API
// @version 1.0
// @description CRUD API for students and teachers behind a shared-credential JWT gate.

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the token obtained from /login.

// @host localhost:3000
// @BasePath /
func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	cfg, err := bootstrap.LoadConfigAndSetupLogger(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load configuration")
	}

	mongodb, err := bootstrap.SetupDatabase(context.Background(), cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up database")
	}

	deps := bootstrap.BuildDependencies(cfg, mongodb)
	router := bootstrap.SetupRouter(deps)

	srv := server.New(cfg, router, mongodb)
	if err := srv.Run(); err != nil {
		logger.Fatal().Err(err).Msg("Server exited with error")
	}
}
