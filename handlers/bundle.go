package handlers

import (
	userRepoPkg "freshlaundry/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Auth endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Profile endpoints
	GetProfileHandler    gin.HandlerFunc
	UpdateProfileHandler gin.HandlerFunc

	// Public site endpoints
	ListServicesHandler  gin.HandlerFunc
	GetServiceHandler    gin.HandlerFunc
	ListPlansHandler     gin.HandlerFunc
	SubmitContactHandler gin.HandlerFunc

	// Subscription endpoints
	SubscribeHandler             gin.HandlerFunc
	GetActiveSubscriptionHandler gin.HandlerFunc

	// Booking wizard endpoints
	InitiateSession gin.HandlerFunc
	UpdateSession   gin.HandlerFunc
	ConfirmBooking  gin.HandlerFunc
	CancelSession   gin.HandlerFunc

	// Dashboard
	DashboardHandler gin.HandlerFunc

	// Admin endpoints
	AdminStatsHandler                gin.HandlerFunc
	AdminListBookingsHandler         gin.HandlerFunc
	AdminUpdateBookingStatusHandler  gin.HandlerFunc
	AdminListContactsHandler         gin.HandlerFunc
	AdminMarkContactReadHandler      gin.HandlerFunc
	AdminListNotificationsHandler    gin.HandlerFunc
	AdminMarkNotificationReadHandler gin.HandlerFunc
}
