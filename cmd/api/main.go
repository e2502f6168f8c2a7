package main

import (
	"os"

	"github.com/astrolabs/skywatch/internal/pkg/logger"
	"github.com/astrolabs/skywatch/internal/server"
)

// @title SkyWatch API
// @version 1.0
// @description REST API for querying astronomical alert-survey objects, their classifications and lightcurves

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
}
