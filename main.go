package main

import (
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/asalzp/ExpenseEase/config"
	"github.com/asalzp/ExpenseEase/internal/routes"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment as-is")
	}

	config.LoadJWTKey()
	config.ConnectDB()
	config.ConnectRedis()

	r := gin.Default()
	routes.SetupRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	slog.Info("Starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
