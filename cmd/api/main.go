package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"tzlon-api/internal/config"
	"tzlon-api/internal/handler"
	"tzlon-api/internal/repository"
	"tzlon-api/internal/selection"
	"tzlon-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

//	@title			Time Zone ↔ Longitude API
//	@version		1.0
//	@description	Converts between geographic longitude and UTC offsets at 15° per hour.
//	@BasePath		/

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Str("level", config.LogLevel).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)
	if config.GinMode == gin.DebugMode {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	gin.SetMode(config.GinMode)

	// History is recorded only when a database is configured
	var (
		recorder service.HistoryRecorder
		history  *handler.HistoryHandler
	)
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.EnsureSchema(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot create schema")
		}

		recorder = repo
		history = handler.NewHistoryHandler(service.NewHistoryService(repo))
	} else {
		log.Info().Msg("DB_SOURCE not set, conversion history disabled")
	}

	sessions, err := selection.NewStore(config.SessionCacheSize)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create session store")
	}

	// Initialize layers
	conversionService := service.NewConversionService(recorder)
	batchService := service.NewBatchService(config.BatchWorkers)

	r := handler.NewRouter(handler.Handlers{
		Convert: handler.NewConvertHandler(conversionService),
		Batch:   handler.NewBatchHandler(batchService, config.MaxUploadBytes),
		Session: handler.NewSessionHandler(sessions),
		History: history,
	})

	srv := &http.Server{
		Addr:              config.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info().Str("addr", config.ServerAddress).Msg("server listening")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
