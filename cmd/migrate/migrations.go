package main

import (
	"gorm.io/gorm"

	"github.com/iac-studio/users/internal/models"
)

// registerModels returns all models that need migration
func registerModels() []interface{} {
	return []interface{}{
		&models.User{},

		// Deferred domains; enable as the handlers get implemented.
		// &models.Invitation{},
		// &models.Recovery{},
		// &models.Permission{},
	}
}

// runMigrations executes all database migrations
func runMigrations(db *gorm.DB) error {
	if err := enableUUIDExtension(db); err != nil {
		return err
	}
	return db.AutoMigrate(registerModels()...)
}

// enableUUIDExtension makes gen_random_uuid() available for uuid defaults.
func enableUUIDExtension(db *gorm.DB) error {
	return db.Exec(`CREATE EXTENSION IF NOT EXISTS "pgcrypto"`).Error
}
