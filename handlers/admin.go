package handlers

import (
	"net/http"
	"strings"

	"freshlaundry/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminStatsHandler returns the summary counters for the admin dashboard.
func AdminStatsHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		stats, err := svc.GetStats()
		if err != nil {
			logger.Error("Failed to compute admin stats", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
			return
		}
		c.JSON(http.StatusOK, stats)
	}
}

// AdminListBookingsHandler returns recent bookings with customer and slot
// details resolved.
func AdminListBookingsHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		bookings, err := svc.ListBookings()
		if err != nil {
			logger.Error("Failed to list bookings", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load bookings"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"bookings": bookings})
	}
}

// AdminUpdateBookingStatusHandler moves a booking through its lifecycle.
func AdminUpdateBookingStatusHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			Status string `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		updated, err := svc.UpdateBookingStatus(c.Param("id"), req.Status)
		if err != nil {
			if strings.Contains(err.Error(), "invalid") {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
				return
			}
			logger.Error("Failed to update booking status", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking"})
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

// AdminListContactsHandler returns recent contact form submissions.
func AdminListContactsHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		contacts, err := svc.ListContacts()
		if err != nil {
			logger.Error("Failed to list contact submissions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"contacts": contacts})
	}
}

// AdminMarkContactReadHandler marks a contact submission as read.
func AdminMarkContactReadHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.MarkContactRead(c.Param("id")); err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Message not found"})
				return
			}
			logger.Error("Failed to mark contact as read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update message"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "marked read"})
	}
}

// AdminListNotificationsHandler returns recent admin notifications.
func AdminListNotificationsHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		notifications, err := svc.ListNotifications()
		if err != nil {
			logger.Error("Failed to list notifications", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"notifications": notifications})
	}
}

// AdminMarkNotificationReadHandler marks a notification as read.
func AdminMarkNotificationReadHandler(svc admin.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		if err := svc.MarkNotificationRead(c.Param("id")); err != nil {
			if strings.Contains(err.Error(), "not found") {
				c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
				return
			}
			logger.Error("Failed to mark notification as read", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update notification"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "marked read"})
	}
}
