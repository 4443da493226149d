package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"blogwhale-server/internal/models"
)

// Migrate opens a short-lived gorm connection, brings the schema up to date
// for the registered models and closes again. The serving path stays on pgx.
func Migrate(databaseURL string) error {
	gormDB, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return fmt.Errorf("open gorm db: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return fmt.Errorf("get gorm sql db: %w", err)
	}
	defer func() { _ = sqlDB.Close() }()

	// gen_random_uuid defaults on the id columns need pgcrypto on older
	// Postgres versions; on 13+ it is built in.
	if err := gormDB.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return fmt.Errorf("ensure pgcrypto: %w", err)
	}

	if err := gormDB.AutoMigrate(&models.User{}, &models.Blog{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	return nil
}
