package database

import (
	"fmt"
	"log/slog"

	"github.com/binagroup/complex-api-server/internal/config"
	"github.com/binagroup/complex-api-server/internal/model"

	"gorm.io/gorm"
)

// Migrate executes database migration based on configuration
func Migrate(db *gorm.DB, cfg *config.Config) error {
	if !cfg.Database.IsAutoMigrate {
		slog.Info("database migration disabled",
			"auto_migrate", false, "env", cfg.App.Env,
		)
		return nil
	}

	slog.Warn("database migration starting - all tables will be dropped and recreated",
		"auto_migrate", true, "env", cfg.App.Env,
	)

	// Safety check: prevent accidental data loss in production
	if cfg.App.Env == "prod" || cfg.App.Env == "production" {
		return fmt.Errorf("DB_AUTO_MIGRATE=true is blocked in production to prevent data loss")
	}

	slog.Info("dropping existing tables")

	// Order matters: drop in reverse dependency order (members references complexes)
	tableNames := []string{"members", "comments", "latest_news", "merchants", "complexes"}

	for _, tableName := range tableNames {
		// Check if table exists (Oracle)
		var count int64
		db.Raw("SELECT COUNT(*) FROM USER_TABLES WHERE UPPER(TABLE_NAME) = UPPER(?)", tableName).Scan(&count)

		if count > 0 {
			dropSQL := fmt.Sprintf("DROP TABLE %s CASCADE CONSTRAINTS", tableName)
			if err := db.Exec(dropSQL).Error; err != nil {
				slog.Debug("drop table failed", "table", tableName, "error", err)
			} else {
				slog.Debug("table dropped", "table", tableName)
			}
		}
	}

	slog.Info("creating tables")
	if err := runAutoMigrate(db); err != nil {
		return fmt.Errorf("create tables: %w", err)
	}

	slog.Info("migration finished")
	return nil
}

// runAutoMigrate creates tables based on model definitions
func runAutoMigrate(db *gorm.DB) error {
	// Independent tables first, FK-referencing tables last
	models := []interface{}{
		&model.Complex{},
		&model.Merchant{},
		&model.LatestNews{},
		&model.Comment{},
		&model.Member{}, // references complexes
	}

	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			return fmt.Errorf("migrate %T: %w", m, err)
		}
		slog.Debug("table created", "model", fmt.Sprintf("%T", m))
	}

	return nil
}
