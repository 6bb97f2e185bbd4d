package repository

import (
	"hongling-sanctuary-be/internal/model"

	"gorm.io/gorm"
)

// EnsureSchema creates the extensions and tables the service needs.
// Safe to call repeatedly; AutoMigrate only applies missing pieces.
// Tables migrate in dependency order so the narrative FK resolves.
func EnsureSchema(db *gorm.DB) error {
	// gen_random_uuid() lives in pgcrypto on older Postgres versions.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto;`).Error; err != nil {
		return err
	}

	return db.AutoMigrate(
		&model.BaziChart{},
		&model.NarrativeReport{},
		&model.UserSession{},
	)
}
