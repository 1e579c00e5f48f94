package routes

import (
	"net/http"
	"time"

	"freshlaundry/handlers"
	"freshlaundry/middleware"
	"freshlaundry/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterUserHandler)
		api.POST("/login", hb.AuthenticateUserHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.DELETE("/revoke", hb.RevokeUserAuthTokenHandler)
	}
}

// RegisterProfileRoutes registers the authenticated profile endpoints.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profile")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.GetProfileHandler)
		api.PUT("", hb.UpdateProfileHandler)
	}
}

// RegisterPublicRoutes registers the marketing site endpoints: service
// catalogue, plans and the contact form. No authentication.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/services", hb.ListServicesHandler)
		api.GET("/services/:slug", hb.GetServiceHandler)
		api.GET("/plans", hb.ListPlansHandler)
		api.POST("/contact", hb.SubmitContactHandler)
	}
}

// RegisterSubscriptionRoutes registers plan subscription endpoints.
func RegisterSubscriptionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/subscriptions")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.POST("", hb.SubscribeHandler)
		api.GET("/active", hb.GetActiveSubscriptionHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the pickup wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/bookings")
	{
		bookingGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		bookingGroup.POST("/session", hb.InitiateSession)
		bookingGroup.PUT("/session/:sessionID", hb.UpdateSession)
		bookingGroup.POST("/session/:sessionID/confirm", hb.ConfirmBooking)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterDashboardRoute registers the customer dashboard endpoint.
func RegisterDashboardRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		api.GET("", hb.DashboardHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthUserMiddleware(hb.UserRepo))
		adminGroup.Use(middleware.JWTAuthAdminMiddleware(hb.UserRepo))
		adminGroup.GET("/stats", hb.AdminStatsHandler)
		adminGroup.GET("/bookings", hb.AdminListBookingsHandler)
		adminGroup.PATCH("/bookings/:id/status", hb.AdminUpdateBookingStatusHandler)
		adminGroup.GET("/contacts", hb.AdminListContactsHandler)
		adminGroup.PATCH("/contacts/:id/read", hb.AdminMarkContactReadHandler)
		adminGroup.GET("/notifications", hb.AdminListNotificationsHandler)
		adminGroup.PATCH("/notifications/:id/read", hb.AdminMarkNotificationReadHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterPublicRoutes(r, hb)
	RegisterSubscriptionRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterDashboardRoute(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
