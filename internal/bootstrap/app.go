package bootstrap

import (
	"context"
	"database/sql"
	"strings"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/analyses"
	"jobportal-backend/internal/profiles"
	"jobportal-backend/internal/services/health"
	"jobportal-backend/internal/shared/auth"
	"jobportal-backend/internal/shared/config"
	"jobportal-backend/internal/shared/server"
	"jobportal-backend/internal/shared/server/middleware"
	"jobportal-backend/internal/shared/storage/db"
	"jobportal-backend/internal/shared/telemetry"
)

// App holds shared dependencies.
type App struct {
	Config          config.Config
	Router          *gin.Engine
	DB              *sql.DB
	ProfilesRepo    profiles.Repo
	HistoryRepo     analyses.HistoryRepo
	ProfilesService *profiles.Service
	AnalysesService *analyses.Service
	AnalysisHandler *analyses.Handler
	Health          *health.Service
	Verifier        *auth.Verifier
}

// Build connects storage, wires services and registers routes.
func Build(ctx context.Context, cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	verifier, err := auth.NewVerifier(cfg.JWTSecret, cfg.Env)
	if err != nil {
		return nil, err
	}

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	app := &App{
		Config:   cfg,
		DB:       sqlDB,
		Verifier: verifier,
		Health:   health.NewService(sqlDB),
	}
	if err := buildServices(ctx, app); err != nil {
		app.Close()
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:          cfg,
		Verifier:        verifier,
		Health:          app.Health,
		AnalysisHandler: app.AnalysisHandler,
		Limiter:         middleware.NewRateLimiter(nil),
	})
	return app, nil
}

// Close releases the database pool.
func (a *App) Close() error {
	if a == nil || a.DB == nil {
		return nil
	}
	return a.DB.Close()
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if cfg.DatabaseURL == "" {
		telemetry.Info("bootstrap.memory_store", map[string]any{"env": cfg.Env})
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.db_connect_failed", map[string]any{"error": err, "fallback": "memory"})
			return nil, nil
		}
		return nil, err
	}

	if isDevLike(cfg.Env) {
		if err := db.RunMigrations(ctx, sqlDB); err != nil {
			sqlDB.Close()
			return nil, err
		}
	}
	return sqlDB, nil
}

func buildServices(ctx context.Context, app *App) error {
	if app.DB != nil {
		app.ProfilesRepo = &profiles.PGRepo{DB: app.DB}
		app.HistoryRepo = &analyses.PGHistoryRepo{DB: app.DB}
	} else {
		mem := profiles.NewMemoryRepo()
		if isDevLike(app.Config.Env) {
			if err := seedDemo(ctx, mem); err != nil {
				return err
			}
		}
		app.ProfilesRepo = mem
		app.HistoryRepo = analyses.NewMemoryHistoryRepo()
	}

	app.ProfilesService = profiles.NewService(app.ProfilesRepo)
	app.AnalysesService = analyses.NewService(app.ProfilesService, app.HistoryRepo)
	if app.Config.MaxJobDescLen > 0 {
		app.AnalysesService.MaxJobDescriptionLen = app.Config.MaxJobDescLen
	}
	app.AnalysisHandler = analyses.NewHandler(app.AnalysesService)
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local", "test":
		return true
	default:
		return false
	}
}
