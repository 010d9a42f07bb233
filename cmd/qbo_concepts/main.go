package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	limitermem "github.com/ulule/limiter/v3/drivers/store/memory"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/qbodev/qbo_concepts_app/internal/adapters/database/pgsql"
	"github.com/qbodev/qbo_concepts_app/internal/adapters/qbo"
	"github.com/qbodev/qbo_concepts_app/internal/adapters/session"
	portsrepo "github.com/qbodev/qbo_concepts_app/internal/core/ports/repositories"
	portssvc "github.com/qbodev/qbo_concepts_app/internal/core/ports/services"
	"github.com/qbodev/qbo_concepts_app/internal/core/services"
	"github.com/qbodev/qbo_concepts_app/internal/handlers"
	"github.com/qbodev/qbo_concepts_app/internal/middleware"
	"github.com/qbodev/qbo_concepts_app/pkg/config"
	"github.com/qbodev/qbo_concepts_app/pkg/database"
)

// @title QBO Concepts API
// @version 1.0
// @description Demonstrates core QuickBooks Online accounting concepts against a sandbox company.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions, cleanup, err := buildSessionStore(context.Background(), cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize session store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	factory := qbo.NewFactory(cfg.QBOAPIHost, cfg.QBOMinorVersion, nil)
	oauthConfig := qbo.NewOAuthConfig(cfg.ClientID, cfg.ClientSecret, cfg.RedirectURL, cfg.AuthorizeURL, cfg.TokenURL)
	refresher := qbo.NewTokenRefresher(oauthConfig)

	container := services.NewServiceContainer(sessions, refresher, factory, portssvc.SystemClock{})

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, per-IP rate limit)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted("30-M")
	if err != nil {
		logger.Error("Failed to parse rate limit", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(limitermem.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, oauthConfig)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildSessionStore picks the session backend from config. The in-memory
// store is the default; SESSION_STORE=pgsql switches to PostgreSQL and
// runs the schema migrations first.
func buildSessionStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.SessionRepository, func(), error) {
	if cfg.SessionStore != config.SessionStorePgsql {
		logger.Info("Using in-memory session store; sessions are lost on restart.")
		return session.NewMemoryRepository(), func() {}, nil
	}

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established.")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	return pgsql.NewPgxSessionRepository(dbPool), func() { database.ClosePgxPool(dbPool) }, nil
}

// runMigrations applies all pending "up" migrations over a temporary
// database/sql connection. Uses the pgx stdlib driver to stay compatible
// with the main pool.
func runMigrations(databaseURL string, logger *slog.Logger) error {
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	sourceErr, dbErr := m.Close()
	if sourceErr != nil {
		return sourceErr
	}
	if dbErr != nil {
		return dbErr
	}

	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}
