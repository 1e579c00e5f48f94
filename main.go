package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"freshlaundry/config"
	"freshlaundry/cron"
	"freshlaundry/database"
	bookingRepoPkg "freshlaundry/database/repository/booking"
	contactRepoPkg "freshlaundry/database/repository/contact"
	notificationRepoPkg "freshlaundry/database/repository/notification"
	planRepoPkg "freshlaundry/database/repository/plan"
	subscriptionRepoPkg "freshlaundry/database/repository/subscription"
	timeslotRepoPkg "freshlaundry/database/repository/timeslot"
	userRepoPkg "freshlaundry/database/repository/user"
	"freshlaundry/handlers"
	"freshlaundry/middleware"
	"freshlaundry/routes"
	"freshlaundry/services/admin"
	"freshlaundry/services/booking"
	"freshlaundry/services/catalog"
	"freshlaundry/services/contact"
	"freshlaundry/services/dashboard"
	"freshlaundry/services/notification"
	"freshlaundry/services/subscription"
	"freshlaundry/services/tasks"
	"freshlaundry/services/user"
	"freshlaundry/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const wizardSessionTTL = 30 * time.Minute

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	timeslotRepo := timeslotRepoPkg.NewMongoTimeSlotRepo()
	planRepo := planRepoPkg.NewMongoPlanRepo()
	subscriptionRepo := subscriptionRepoPkg.NewMongoSubscriptionRepo()
	contactRepo := contactRepoPkg.NewMongoContactRepo()
	notificationRepo := notificationRepoPkg.NewMongoNotificationRepo()

	// Seed reference data so a fresh deployment serves plans and slots
	// immediately.
	if err := planRepo.SeedDefaults(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed plans: %v", err)
	}
	if err := timeslotRepo.SeedDefaults(); err != nil {
		logger.Sugar().Fatalf("main: failed to seed time slots: %v", err)
	}

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}

	notificationService := &notification.DefaultNotificationService{
		Repo: notificationRepo,
	}

	wizardService := &booking.DefaultWizardService{
		Bookings:      bookingRepo,
		Slots:         timeslotRepo,
		Subscriptions: subscriptionRepo,
		Users:         userRepo,
		Sessions:      booking.NewRedisSessionStore(utils.GetWizardCacheClient(), wizardSessionTTL),
		Notifier:      notificationService,
		Reminders:     tasks.NewAsynqReminderScheduler(),
	}

	subscriptionService := &subscription.DefaultService{
		Subs:  subscriptionRepo,
		Plans: planRepo,
	}

	dashboardService := &dashboard.DefaultService{
		Bookings: bookingRepo,
		Subs:     subscriptionRepo,
	}

	contactService := &contact.DefaultService{
		Repo:     contactRepo,
		Notifier: notificationService,
	}

	adminService := &admin.DefaultService{
		Users:         userRepo,
		Subs:          subscriptionRepo,
		Bookings:      bookingRepo,
		Contacts:      contactRepo,
		Notifications: notificationRepo,
	}

	catalogService := &catalog.StaticService{}

	// Pickup reminder worker.
	cron.InitReminderWorker(notificationService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Auth endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler(userService),
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler(userService),
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler(userService),

		// Profile endpoints.
		GetProfileHandler:    handlers.GetProfileHandler(userService),
		UpdateProfileHandler: handlers.UpdateProfileHandler(userService),

		// Public site endpoints.
		ListServicesHandler:  handlers.ListServicesHandler(catalogService),
		GetServiceHandler:    handlers.GetServiceHandler(catalogService),
		ListPlansHandler:     handlers.ListPlansHandler(planRepo),
		SubmitContactHandler: handlers.SubmitContactHandler(contactService),

		// Subscription endpoints.
		SubscribeHandler:             handlers.SubscribeHandler(subscriptionService),
		GetActiveSubscriptionHandler: handlers.GetActiveSubscriptionHandler(subscriptionService),

		// Booking wizard endpoints.
		InitiateSession: handlers.InitiateSessionHandler(wizardService),
		UpdateSession:   handlers.UpdateSessionHandler(wizardService),
		ConfirmBooking:  handlers.ConfirmBookingHandler(wizardService),
		CancelSession:   handlers.CancelSessionHandler(wizardService),

		// Dashboard.
		DashboardHandler: handlers.DashboardHandler(dashboardService),

		// Admin endpoints.
		AdminStatsHandler:                handlers.AdminStatsHandler(adminService),
		AdminListBookingsHandler:         handlers.AdminListBookingsHandler(adminService),
		AdminUpdateBookingStatusHandler:  handlers.AdminUpdateBookingStatusHandler(adminService),
		AdminListContactsHandler:         handlers.AdminListContactsHandler(adminService),
		AdminMarkContactReadHandler:      handlers.AdminMarkContactReadHandler(adminService),
		AdminListNotificationsHandler:    handlers.AdminListNotificationsHandler(adminService),
		AdminMarkNotificationReadHandler: handlers.AdminMarkNotificationReadHandler(adminService),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Background health monitor for /health.
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetCacheClient(), utils.GetAuthCacheClient(), utils.GetWizardCacheClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
