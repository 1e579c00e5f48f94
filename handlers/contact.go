package handlers

import (
	"errors"
	"net/http"

	"freshlaundry/services/contact"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SubmitContactHandler stores a contact form submission.
func SubmitContactHandler(svc contact.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req contact.SubmitRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
			return
		}

		if _, err := svc.Submit(req); err != nil {
			if errors.Is(err, contact.ErrMissingFields) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			logger.Error("Failed to store contact submission", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message. Please try again."})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message sent! We'll get back to you within 24 hours."})
	}
}
