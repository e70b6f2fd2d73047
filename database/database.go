package database

import (
	"fmt"
	"log"
	"os"

	"codedrop-app/internal/domain/catalog"
	"codedrop-app/internal/domain/codes"
	"codedrop-app/internal/domain/media"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		log.Fatal("DB_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	DB = db

	if err := Migrate(DB); err != nil {
		log.Fatal("AutoMigrate error:", err)
	}

	fmt.Println("Connected and migrated successfully")
}

// Migrate runs AutoMigrate over every domain model. Shared with the test
// helpers so the sqlite test databases carry the same schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&media.Image{},
		&catalog.Artist{},
		&catalog.Work{},
		&catalog.File{},
		&codes.Batch{},
		&codes.Code{},
	)
}
