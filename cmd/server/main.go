package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"homenest-backend/internal/auth"
	"homenest-backend/internal/config"
	"homenest-backend/internal/database"
	"homenest-backend/internal/observability"
	"homenest-backend/internal/repository"
	"homenest-backend/internal/server"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "dotenv file to load before reading the environment")
	pflag.Parse()

	// Load .env (ignore error in production — env vars set directly)
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warn().Err(err).Str("file", *envFile).Msg("could not read env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	// Connect to MongoDB
	db, err := database.Connect(context.Background(), cfg.MongoConnectionURI(), cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}

	// Initialize repositories
	propertyRepo := repository.NewPropertyRepo(db)
	ratingRepo := repository.NewRatingRepo(db)

	// Ensure indexes
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := propertyRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create property indexes")
	}
	if err := ratingRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("failed to create rating indexes")
	}

	router := server.NewRouter(server.Deps{
		Logger:     log.Logger,
		Verifier:   newVerifier(cfg),
		Properties: propertyRepo,
		Ratings:    ratingRepo,
		Registry:   observability.InitRegistry(),
	})

	log.Info().Str("addr", cfg.Addr()).Msg("app running")
	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

func newVerifier(cfg config.Config) auth.Verifier {
	if cfg.FirebaseProjectID != "" {
		log.Info().Str("project", cfg.FirebaseProjectID).Msg("verifying Firebase ID tokens")
		return auth.NewFirebaseVerifier(cfg.FirebaseProjectID)
	}
	log.Warn().Msg("FIREBASE_PROJECT_ID not set, verifying HS256 tokens with JWT_SECRET")
	return auth.NewHMACVerifier(cfg.JWTSecret)
}
