package main

import (
	"context"

	"github.com/rs/zerolog/log"

	"posada/config"
	"posada/di"
	"posada/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeApp()

	if err := app.Seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed starter data")
	}

	app.HTTP.Serve()
}
