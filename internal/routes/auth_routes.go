package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asalzp/ExpenseEase/internal/handlers"
)

// RegisterAuthRoutes registers the public routes that hand out accounts and
// tokens. No auth middleware applies here.
func RegisterAuthRoutes(r *gin.Engine) {
	r.POST("/register", handlers.RegisterHandler)
	r.POST("/token", handlers.TokenObtainHandler)
	r.POST("/token/refresh", handlers.TokenRefreshHandler)
}
