package config

import (
	"log/slog"
	"os"
)

// JwtKey signs and verifies every issued token.
var JwtKey []byte

func LoadJWTKey() {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		slog.Error("JWT_SECRET environment variable is not set")
		os.Exit(1)
	}
	JwtKey = []byte(secret)
}
