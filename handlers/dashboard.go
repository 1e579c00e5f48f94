package handlers

import (
	"net/http"

	"freshlaundry/services/dashboard"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DashboardHandler returns the customer dashboard overview in one call.
func DashboardHandler(svc dashboard.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		overview, err := svc.Overview(userID)
		if err != nil {
			logger.Error("Failed to build dashboard overview", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load dashboard"})
			return
		}
		c.JSON(http.StatusOK, overview)
	}
}
