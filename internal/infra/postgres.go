package infra

import (
	"log"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbmodels "tobugo/internal/models/db_models"
)

func InitPostgresql() *gorm.DB {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		log.Fatal("POSTGRES_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS vector").Error; err != nil {
		log.Printf("Warning: could not create vector extension: %v", err)
	}

	if err := db.AutoMigrate(
		&dbmodels.Account{},
		&dbmodels.Trip{},
		&dbmodels.ChatSession{},
		&dbmodels.Review{},
		&dbmodels.SavedTrip{},
		&dbmodels.Transaction{},
		&dbmodels.TripEmbedding{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Println("Connected to PostgreSQL")
	return db
}
