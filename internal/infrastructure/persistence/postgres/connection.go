// Package postgres provides PostgreSQL database setup for production
// deployments
package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/mealforge/v1/internal/infrastructure/config"
	gormModels "github.com/mealforge/v1/internal/infrastructure/persistence/gorm"
)

// SetupDatabase opens a PostgreSQL connection with pooling configured
// from the database section and runs migrations when enabled
func SetupDatabase(cfg *config.Config, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	} else {
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if cfg.Database.AutoMigrate {
		err = db.AutoMigrate(
			&gormModels.RecipeModel{},
			&gormModels.MealPlanModel{},
			&gormModels.PreferenceProfileModel{},
		)
		if err != nil {
			return nil, fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	return db, nil
}
