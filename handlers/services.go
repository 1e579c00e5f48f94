package handlers

import (
	"errors"
	"net/http"

	planRepo "freshlaundry/database/repository/plan"
	"freshlaundry/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListServicesHandler returns the laundry service catalogue.
func ListServicesHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"services": svc.List()})
	}
}

// GetServiceHandler returns a single service page by slug.
func GetServiceHandler(svc catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		detail, err := svc.Get(c.Param("slug"))
		if err != nil {
			if errors.Is(err, catalog.ErrServiceNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Service not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load service"})
			return
		}
		c.JSON(http.StatusOK, detail)
	}
}

// ListPlansHandler returns the active subscription plans, cheapest first.
func ListPlansHandler(plans planRepo.PlanRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		list, err := plans.ListActive()
		if err != nil {
			logger.Error("Failed to list plans", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load plans"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"plans": list})
	}
}
