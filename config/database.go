package config

import (
	"log/slog"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/asalzp/ExpenseEase/models"
)

var DB *gorm.DB

// ConnectDB opens the postgres connection from DB_URL and migrates the schema.
func ConnectDB() {
	dsn := os.Getenv("DB_URL")
	if dsn == "" {
		slog.Error("DB_URL environment variable is not set")
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Expense{}); err != nil {
		slog.Error("Database migration failed", "error", err)
		os.Exit(1)
	}

	DB = db
	slog.Info("Connected to database")
}
