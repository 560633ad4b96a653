package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

// nowFunc is swapped in tests so period boundaries are deterministic.
var nowFunc = time.Now

// currentUserID returns the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) uint {
	return c.GetUint("user_id")
}
