package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mrtribble/brewlist/api/routes"
	"github.com/mrtribble/brewlist/internal/shops"
	"github.com/mrtribble/brewlist/pkg/config"
	"github.com/mrtribble/brewlist/pkg/db"
	"github.com/mrtribble/brewlist/pkg/logger"
	"github.com/mrtribble/brewlist/pkg/migrate"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	// The database is optional at startup: without one the API still
	// serves requests, reporting the missing configuration per call.
	dbClient := connectDatabase(cfg, logg)
	if dbClient != nil {
		defer func() {
			if err := dbClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing database", err)
			}
		}()
	}

	shopService := buildShopService(cfg, logg, dbClient)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	id := os.Getenv("DYNO")
	if id == "" {
		id = "local"
	}
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":      cfg.App.Env,
		"addr":     addr,
		"instance": id,
	})
	logg.Info(ctx, "starting api server")

	var dbP db.Pinger
	if dbClient != nil {
		dbP = dbClient
	}

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, dbP, shopService),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}

// connectDatabase resolves the DSN and opens the pool. Only a missing or
// malformed configuration leaves the client nil; a reachable-but-down
// server keeps the client wired so requests recover through the pool.
func connectDatabase(cfg *config.Config, logg *logger.Logger) *db.Client {
	ctx := context.Background()

	dsn, state := cfg.DB.Resolve()
	switch state {
	case config.ResolveInvalid:
		logg.Warn(ctx, "DATABASE_URL is malformed, database disabled")
		return nil
	case config.ResolveUnconfigured:
		logg.Warn(ctx, "no database configured, set DATABASE_URL or BREWLIST_DB_DSN")
		return nil
	}

	client, err := db.New(ctx, dsn, cfg.DB, logg)
	if err != nil {
		logg.Error(ctx, "database configuration unusable, database disabled", err)
		return nil
	}
	return client
}

// buildShopService bootstraps the schema and wires the repository. A
// nil client yields a degraded service that reports NOT_CONFIGURED.
func buildShopService(cfg *config.Config, logg *logger.Logger, dbClient *db.Client) shops.Service {
	if dbClient == nil {
		return shops.NewService(nil)
	}

	ctx := context.Background()

	if err := shops.EnsureSchema(ctx, dbClient); err != nil {
		// Bootstrap failure is not fatal: requests surface the missing
		// table until the database is fixed.
		logg.Error(ctx, "failed to ensure shop schema", err)
	}

	if err := migrate.MaybeRunDev(ctx, cfg, logg, dbClient); err != nil {
		logg.Error(ctx, "failed to run dev migrations", err)
	}

	return shops.NewService(shops.NewRepository(dbClient.DB(ctx)))
}
