package handlers

import (
	"net/http"

	"freshlaundry/models"
	"freshlaundry/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// GetProfileHandler returns the authenticated user's profile.
func GetProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		profile, err := svc.GetProfile(userID)
		if err != nil || profile == nil {
			logger.Error("Failed to get user profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profile"})
			return
		}

		c.JSON(http.StatusOK, profile)
	}
}

// UpdateProfileHandler updates the authenticated user's profile.
func UpdateProfileHandler(svc user.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			logger.Error("User ID not found in context")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var updateReq models.ProfileUpdate
		if err := c.ShouldBindJSON(&updateReq); err != nil {
			logger.Error("Invalid update request", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		updatedUser, err := svc.UpdateProfile(userID, updateReq)
		if err != nil {
			logger.Error("Failed to update profile", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}

		c.JSON(http.StatusOK, updatedUser)
	}
}
