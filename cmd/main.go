package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arzan03/aircnc-server/internal/config"
	"github.com/arzan03/aircnc-server/internal/db"
	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/arzan03/aircnc-server/internal/server"
	"github.com/arzan03/aircnc-server/internal/services"
	"github.com/arzan03/aircnc-server/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger("info").Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.NewLogger(cfg.LogLevel)
	ctx := context.Background()

	// Connect to MongoDB
	client, err := db.ConnectMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("connected to mongodb")

	collections := db.NewCollections(client.Database(cfg.Mongo.Database))
	svc := server.Services{
		Users:    services.NewUserService(collections.Users),
		Rooms:    services.NewRoomService(collections.Rooms),
		Bookings: services.NewBookingService(collections.Bookings),
		Auth:     services.NewAuthService(cfg.Auth.TokenSecret, cfg.Auth.TokenTTL),
	}

	// Image uploads are optional
	if cfg.Images.Enabled() {
		store, err := storage.NewMinioStore(cfg.Images)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to init image store")
		}
		created, err := store.EnsureBucket(ctx)
		if err != nil {
			log.Fatal().Err(err).Str("bucket", store.Bucket()).Msg("failed to prepare image bucket")
		}
		log.Info().Str("bucket", store.Bucket()).Bool("created", created).Msg("image store ready")
		svc.Images = services.NewImageService(store)
	}

	app := server.New(cfg, log, svc)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server listening")
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info().Str("signal", sig.String()).Msg("shutting down")

	if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongodb disconnect failed")
	}

	log.Info().Msg("server exited")
}
