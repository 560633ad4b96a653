package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/asalzp/ExpenseEase/internal/handlers"
)

// RegisterAPIRoutes registers the authenticated expense and reporting routes.
func RegisterAPIRoutes(api *gin.RouterGroup) {
	expenses := api.Group("/expenses")
	{
		expenses.GET("", handlers.ListExpensesHandler)
		expenses.POST("", handlers.CreateExpenseHandler)
		expenses.GET("/:id", handlers.GetExpenseHandler)
		expenses.PUT("/:id", handlers.UpdateExpenseHandler)
		expenses.DELETE("/:id", handlers.DeleteExpenseHandler)
	}

	api.GET("/summary", handlers.SummaryHandler)
	api.GET("/category-breakdown/:period", handlers.CategoryBreakdownHandler)
	api.GET("/trends/:period", handlers.SpendingTrendsHandler)
}
