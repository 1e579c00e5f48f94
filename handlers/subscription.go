package handlers

import (
	"errors"
	"net/http"

	"freshlaundry/services/subscription"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubscribeHandler activates a plan for the authenticated user.
func SubscribeHandler(svc subscription.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req struct {
			PlanID string `json:"planId" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		sub, err := svc.Subscribe(userID, req.PlanID)
		if err != nil {
			switch {
			case errors.Is(err, subscription.ErrAlreadySubscribed):
				c.JSON(http.StatusConflict, gin.H{"error": "You already have an active subscription"})
			case errors.Is(err, subscription.ErrPlanNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Plan not found"})
			default:
				logger.Error("Failed to create subscription", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			}
			return
		}
		c.JSON(http.StatusCreated, sub)
	}
}

// GetActiveSubscriptionHandler returns the user's active subscription
// with its plan, or null when there is none.
func GetActiveSubscriptionHandler(svc subscription.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		sub, err := svc.ActiveForUser(userID)
		if err != nil {
			logger.Error("Failed to fetch active subscription", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch subscription"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"subscription": sub})
	}
}
