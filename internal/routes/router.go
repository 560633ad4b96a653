package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asalzp/ExpenseEase/internal/middleware"
)

// SetupRoutes wires every route of the application onto the engine.
func SetupRoutes(r *gin.Engine) {
	r.Use(middleware.RequestID())

	// Public routes: registration and token issuance.
	RegisterAuthRoutes(r)

	// Everything else requires a valid access token.
	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		RegisterAPIRoutes(authRequired)
	}
}
