package handlers

import (
	"errors"
	"net/http"

	"freshlaundry/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InitiateSessionHandler starts a booking wizard session for the
// authenticated user.
func InitiateSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := svc.StartSession(userID)
		if err != nil {
			if errors.Is(err, booking.ErrNoSubscription) {
				c.JSON(http.StatusForbidden, gin.H{"error": "An active subscription is required to schedule pickups"})
				return
			}
			logger.Error("Failed to start booking session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start booking session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// UpdateSessionHandler advances or rewinds the wizard.
func UpdateSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := c.Param("sessionID")

		var req booking.UpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		session, err := svc.UpdateSession(sessionID, userID, req)
		if err != nil {
			status, msg := wizardErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to update booking session", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// ConfirmBookingHandler finalizes the wizard into a pending booking.
func ConfirmBookingHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := c.Param("sessionID")

		var req booking.ConfirmRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		created, err := svc.ConfirmBooking(sessionID, userID, req)
		if err != nil {
			status, msg := wizardErrorStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("Failed to confirm booking", zap.Error(err))
			}
			c.JSON(status, gin.H{"error": msg})
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

// CancelSessionHandler abandons a wizard session.
func CancelSessionHandler(svc booking.WizardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		userID, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		sessionID := c.Param("sessionID")

		if err := svc.CancelSession(sessionID, userID); err != nil {
			if errors.Is(err, booking.ErrSessionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "booking session not found or expired"})
				return
			}
			logger.Error("Failed to cancel booking session", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to cancel booking session"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "session cancelled"})
	}
}

// wizardErrorStatus maps wizard service errors onto HTTP responses.
func wizardErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		return http.StatusNotFound, "booking session not found or expired"
	case errors.Is(err, booking.ErrNoSubscription):
		return http.StatusForbidden, "An active subscription is required to schedule pickups"
	case errors.Is(err, booking.ErrMissingDate),
		errors.Is(err, booking.ErrPastDate),
		errors.Is(err, booking.ErrMissingSlot),
		errors.Is(err, booking.ErrUnknownSlot),
		errors.Is(err, booking.ErrMissingAddress),
		errors.Is(err, booking.ErrUnknownAction):
		return http.StatusBadRequest, err.Error()
	default:
		return http.StatusInternalServerError, "Something went wrong. Please try again."
	}
}
