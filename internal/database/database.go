package database

import (
	"embed"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/config"
	"github.com/EgehanKilicarslan/jobboard/backend-go/internal/database/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ConnectDatabase opens the PostgreSQL connection, applies the embedded
// migrations and returns the handle. Nothing is stored globally.
func ConnectDatabase(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
		cfg.PostgreSQLHost,
		cfg.PostgreSQLUser,
		cfg.PostgreSQLPassword,
		cfg.PostgreSQLDatabase,
		cfg.PostgreSQLPort,
	)

	logger.Info("🔌 [Database] Connecting to PostgreSQL...",
		"host", cfg.PostgreSQLHost,
		"port", cfg.PostgreSQLPort,
		"database", cfg.PostgreSQLDatabase,
	)

	var db *gorm.DB
	var err error
	maxRetries := 30
	retryDelay := 2 * time.Second

	for i := 0; i < maxRetries; i++ {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err == nil {
			sqlDB, dbErr := db.DB()
			if dbErr == nil {
				dbErr = sqlDB.Ping()
			}
			if dbErr == nil {
				break
			}
			err = dbErr
		}

		if i < maxRetries-1 {
			logger.Warn("⏳ [Database] Connection failed, retrying...",
				"attempt", i+1,
				"max_retries", maxRetries,
				"retry_in", retryDelay,
				"error", err,
			)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL after %d attempts: %w", maxRetries, err)
	}

	logger.Info("✅ [Database] Database connection established")

	logger.Info("🔄 [Database] Running migrations...")
	if err := runMigrations(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("✅ [Database] Migrations completed successfully")

	if err := SetupJoinTables(db); err != nil {
		return nil, err
	}

	return db, nil
}

// SetupJoinTables registers models.SavedJob as the users <-> jobs join model
// so association queries and direct join row writes agree on one table.
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&models.User{}, "SavedJobs", &models.SavedJob{}); err != nil {
		return fmt.Errorf("failed to set up saved_jobs join table: %w", err)
	}
	if err := db.SetupJoinTable(&models.Job{}, "SavedByUsers", &models.SavedJob{}); err != nil {
		return fmt.Errorf("failed to set up saved_jobs join table: %w", err)
	}
	return nil
}

// AutoMigrate creates the schema through gorm instead of goose. Used for
// SQLite-backed tests where the Postgres migrations do not apply.
func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(&models.User{}, &models.Job{}, &models.SavedJob{})
}

func runMigrations(gormDB *gorm.DB) error {
	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	if err := goose.Up(sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run goose migrations: %w", err)
	}

	return nil
}
