package database

import (
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"vacaturebord/internal/models"
)

// Connect opens the SQLite file at path and ensures the schema exists.
// AutoMigrate only adds what is missing, so calling this on every start is
// safe for existing data.
func Connect(path string) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Str("path", path).Msg("Failed to open database")
	}

	// SQLite allows a single writer; one pooled connection keeps writers
	// serialized and keeps :memory: databases intact across queries.
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to access connection pool")
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Category{}, &models.Job{}, &models.Application{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to migrate database")
	}

	seedCategories(db)
	return db
}

// seedCategories inserts the fixed category list once. Runs on every start
// but is a no-op when the table already has rows.
func seedCategories(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.Category{}).Count(&count).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to count categories")
	}
	if count > 0 {
		return
	}

	categories := []models.Category{
		{Slug: "bouw", Label: "Bouw"},
		{Slug: "milieu", Label: "Milieu"},
		{Slug: "wonen", Label: "Wonen"},
		{Slug: "zorg", Label: "Zorg"},
		{Slug: "techniek", Label: "Techniek"},
		{Slug: "transport", Label: "Transport"},
	}
	if err := db.Create(&categories).Error; err != nil {
		log.Fatal().Err(err).Msg("Failed to seed categories")
	}
	log.Info().Int("count", len(categories)).Msg("Seeded categories")
}
