// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/mealforge/v1/internal/application/planner"
	"github.com/mealforge/v1/internal/application/substitution"
	"github.com/mealforge/v1/internal/infrastructure/config"
	"github.com/mealforge/v1/internal/infrastructure/http/handlers"
	"github.com/mealforge/v1/internal/infrastructure/http/server"
	gormRepo "github.com/mealforge/v1/internal/infrastructure/persistence/gorm"
	"github.com/mealforge/v1/internal/infrastructure/persistence/memory"
	"github.com/mealforge/v1/internal/infrastructure/persistence/postgres"
	redisRepo "github.com/mealforge/v1/internal/infrastructure/persistence/redis"
	"github.com/mealforge/v1/internal/infrastructure/persistence/sqlite"
	"github.com/mealforge/v1/internal/ports/inbound"
	"github.com/mealforge/v1/internal/ports/outbound"
	"github.com/mealforge/v1/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	CacheModule,
	RepositoryModule,
	ServiceModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the GORM database connection, sqlite or
// postgres per configuration
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		logLevel := gormLogger.Silent
		if cfg.App.Debug {
			logLevel = gormLogger.Info
		}

		if cfg.Database.Driver == "postgres" {
			db, err := postgres.SetupDatabase(cfg, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup PostgreSQL database: %w", err)
			}
			log.Info("Connected to PostgreSQL database",
				zap.String("host", cfg.Database.Host),
				zap.String("database", cfg.Database.Database),
			)
			return db, nil
		}

		db, err := sqlite.SetupDatabase(cfg.Database.Database, logLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
		}

		if cfg.Database.SeedCatalog {
			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed catalog", zap.Error(err))
			}
		}

		log.Info("Connected to SQLite database",
			zap.String("path", cfg.Database.Database),
		)
		return db, nil
	},
)

// CacheModule provides the cache repository, redis when enabled with an
// in-memory fallback
var CacheModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) outbound.CacheRepository {
		if cfg.Redis.Enabled {
			client, err := redisRepo.NewClient(cfg)
			if err != nil {
				log.Warn("Redis unavailable, falling back to in-memory cache", zap.Error(err))
				return memory.NewCacheRepository()
			}
			log.Info("Connected to Redis cache", zap.String("addr", cfg.RedisAddr()))
			return redisRepo.NewCacheRepository(client, log)
		}

		log.Info("Using in-memory cache")
		return memory.NewCacheRepository()
	},
)

// RepositoryModule provides repository implementations. The preference
// store variant is selected at startup: persistent (GORM-backed) or
// memory-backed per configuration; the services never branch on which
// one they got.
var RepositoryModule = fx.Provide(
	fx.Annotate(
		gormRepo.NewCatalogRepository,
		fx.As(new(outbound.CatalogReader)),
	),
	gormRepo.NewPlanRepository,
	func(cfg *config.Config, db *gorm.DB, log *zap.Logger) outbound.PreferenceStore {
		if cfg.Planner.PreferenceStore == "memory" {
			log.Info("Using in-memory preference store")
			return memory.NewPreferenceStore()
		}
		return gormRepo.NewPreferenceRepository(db)
	},
)

// ServiceModule provides application services
var ServiceModule = fx.Provide(
	func(
		catalog outbound.CatalogReader,
		prefs outbound.PreferenceStore,
		plans outbound.PlanRepository,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.PlannerService {
		return planner.NewService(catalog, prefs, plans, cache, planner.Config{
			AlgorithmVersion: cfg.Planner.AlgorithmVersion,
			PlanCacheTTL:     cfg.Planner.PlanCacheTTL,
		}, log)
	},
	func(
		catalog outbound.CatalogReader,
		prefs outbound.PreferenceStore,
		plans outbound.PlanRepository,
		cache outbound.CacheRepository,
		cfg *config.Config,
		log *zap.Logger,
	) inbound.SubstitutionService {
		return substitution.NewService(catalog, prefs, plans, cache, substitution.Config{
			MaxAlternatives:      cfg.Substitution.MaxAlternatives,
			NutritionalTolerance: cfg.Substitution.NutritionalTolerance,
		}, log)
	},
)

// HTTPModule provides HTTP server and handlers
var HTTPModule = fx.Provide(
	handlers.NewAPIHandler,
	server.NewServer,
)

// LifecycleModule provides lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks registers application lifecycle hooks
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting MealForge application",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down MealForge application")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()
			return nil
		},
	})
}
