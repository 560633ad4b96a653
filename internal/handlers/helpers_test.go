package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/asalzp/ExpenseEase/config"
	"github.com/asalzp/ExpenseEase/internal/middleware"
	"github.com/asalzp/ExpenseEase/models"
)

// setupRouter builds a router with the same route table the app uses, backed
// by a fresh in-memory database.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pool of one keeps every connection on the same in-memory database.
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Expense{}))

	config.DB = db
	config.RDB = nil
	config.JwtKey = []byte("test-secret")

	r := gin.New()
	r.POST("/register", RegisterHandler)
	r.POST("/token", TokenObtainHandler)
	r.POST("/token/refresh", TokenRefreshHandler)

	authRequired := r.Group("/")
	authRequired.Use(middleware.AuthMiddleware())
	{
		authRequired.GET("/expenses", ListExpensesHandler)
		authRequired.POST("/expenses", CreateExpenseHandler)
		authRequired.GET("/expenses/:id", GetExpenseHandler)
		authRequired.PUT("/expenses/:id", UpdateExpenseHandler)
		authRequired.DELETE("/expenses/:id", DeleteExpenseHandler)
		authRequired.GET("/summary", SummaryHandler)
		authRequired.GET("/category-breakdown/:period", CategoryBreakdownHandler)
		authRequired.GET("/trends/:period", SpendingTrendsHandler)
	}
	return r
}

// fixNow pins the clock used for period boundaries and restores it after
// the test. Call after obtaining tokens: token lifetimes come from the same
// clock.
func fixNow(t *testing.T, now time.Time) {
	t.Helper()
	prev := nowFunc
	nowFunc = func() time.Time { return now }
	t.Cleanup(func() { nowFunc = prev })
}

func doJSON(r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dst))
}

// registerAndLogin creates a user through the API and returns a bearer
// access token for it.
func registerAndLogin(t *testing.T, r http.Handler, username string) string {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/register", "", gin.H{"username": username, "password": "pass1234"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/token", "", gin.H{"username": username, "password": "pass1234"})
	require.Equal(t, http.StatusOK, w.Code)

	var tokens struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	decodeBody(t, w, &tokens)
	require.NotEmpty(t, tokens.Access)
	return tokens.Access
}

// createExpense posts an expense and returns its id.
func createExpense(t *testing.T, r http.Handler, token, category, amount, date string) uint {
	t.Helper()
	w := doJSON(r, http.MethodPost, "/expenses", token, gin.H{
		"category": category,
		"amount":   amount,
		"date":     date,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID uint `json:"id"`
	}
	decodeBody(t, w, &created)
	require.NotZero(t, created.ID)
	return created.ID
}
