package main

import (
	"context"
	"net/http"
	_ "time/tzdata"

	"github.com/gorilla/mux"
	cron "github.com/robfig/cron/v3"
	"github.com/rs/cors"

	"github.com/propertyfinder/listings-service/internal/app"
	"github.com/propertyfinder/listings-service/internal/config"
	"github.com/propertyfinder/listings-service/internal/constants"
	"github.com/propertyfinder/listings-service/internal/controllers"
	"github.com/propertyfinder/listings-service/internal/middleware"
	"github.com/propertyfinder/listings-service/internal/routes"
	"github.com/propertyfinder/listings-service/internal/services"
	"github.com/propertyfinder/listings-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()
	defer cfg.Close()

	application := app.NewApp(cfg)

	if cfg.SeedDemoData {
		if err := app.SeedDemoData(context.Background(), application); err != nil {
			utils.Logger.WithError(err).Fatal("Failed to seed demo data")
		}
	}

	settings := services.NewModerationSettings(cfg.AutoApproveListings)

	listingService := services.NewListingService(
		application.ListingRepo,
		application.UserRepo,
		application.MessageRepo,
		application.NotificationRepo,
		settings,
	)
	scheduleService := services.NewScheduleService(application.EventRepo)
	inboxService := services.NewInboxService(application.MessageRepo, application.NotificationRepo, application.UserRepo)
	adminService := services.NewAdminService(
		application.ListingRepo,
		application.UserRepo,
		application.NotificationRepo,
		settings,
	)
	authService := services.NewAuthService(cfg, application.UserRepo)
	reminderService := services.NewReminderService(
		cfg,
		application.EventRepo,
		application.UserRepo,
		application.NotificationRepo,
	)

	listingsController := controllers.NewListingsController(listingService)
	scheduleController := controllers.NewScheduleController(scheduleService)
	inboxController := controllers.NewInboxController(inboxService)
	adminController := controllers.NewAdminController(adminService)
	authController := controllers.NewAuthController(authService)
	healthController := controllers.NewHealthController()

	router := mux.NewRouter()

	// Public
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.Listings, listingsController.SearchListingsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingsFeatured, listingsController.FeaturedListingsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingsFilters, listingsController.FilterOptionsHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingByID, listingsController.GetListingHandler).Methods(http.MethodGet)
	router.HandleFunc(routes.ListingInquire, listingsController.InquireHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthLogin, authController.LoginHandler).Methods(http.MethodPost)
	router.HandleFunc(routes.AuthSignup, authController.SignupHandler).Methods(http.MethodPost)

	// Broker dashboard
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.JWTSecret))

	secured.HandleFunc(routes.MyListings, listingsController.ListMyListingsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyListings, listingsController.CreateListingHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyListingByID, listingsController.UpdateListingHandler).Methods(http.MethodPut)
	secured.HandleFunc(routes.MyListingByID, listingsController.DeleteListingHandler).Methods(http.MethodDelete)
	secured.HandleFunc(routes.MyStats, listingsController.BrokerStatsHandler).Methods(http.MethodGet)

	secured.HandleFunc(routes.MyEvents, scheduleController.ListEventsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyEvents, scheduleController.CreateEventHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyEventByID, scheduleController.DeleteEventHandler).Methods(http.MethodDelete)

	secured.HandleFunc(routes.MyMessages, inboxController.ListMessagesHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyMessageRead, inboxController.MarkMessageReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyMessageReply, inboxController.ReplyMessageHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyMessagesReadAll, inboxController.MarkAllMessagesReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyNotifications, inboxController.ListNotificationsHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyNotificationRead, inboxController.MarkNotificationReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyNotificationsRead, inboxController.MarkAllNotificationsReadHandler).Methods(http.MethodPost)
	secured.HandleFunc(routes.MyNotificationsClr, inboxController.ClearNotificationsHandler).Methods(http.MethodPost)

	secured.HandleFunc(routes.MyProfile, authController.GetProfileHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.MyProfile, authController.UpdateProfileHandler).Methods(http.MethodPut)

	// Admin console
	admin := router.NewRoute().Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg.JWTSecret), middleware.RequireAdmin)

	admin.HandleFunc(routes.AdminProperties, adminController.ListPropertiesHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminProperties, adminController.AddPropertyHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminPropertyByID, adminController.DeletePropertyHandler).Methods(http.MethodDelete)
	admin.HandleFunc(routes.AdminApproveByID, adminController.ApprovePropertyHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminRejectByID, adminController.RejectPropertyHandler).Methods(http.MethodPost)
	admin.HandleFunc(routes.AdminChangeBroker, adminController.ChangeBrokerHandler).Methods(http.MethodPut)
	admin.HandleFunc(routes.AdminUsers, adminController.ListUsersHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminUserByID, adminController.UpdateUserRoleHandler).Methods(http.MethodPut)
	admin.HandleFunc(routes.AdminUserByID, adminController.DeleteUserHandler).Methods(http.MethodDelete)
	admin.HandleFunc(routes.AdminStats, adminController.StatsHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminAutoApproval, adminController.GetAutoApprovalHandler).Methods(http.MethodGet)
	admin.HandleFunc(routes.AdminAutoApproval, adminController.SetAutoApprovalHandler).Methods(http.MethodPut)

	c := cron.New()
	_, cronErr := c.AddFunc(constants.ReminderCheckSpec, func() {
		if e := reminderService.RunReminderCheck(context.Background()); e != nil {
			utils.Logger.WithError(e).Error("Reminder check failed")
		}
	})
	if cronErr != nil {
		utils.Logger.WithError(cronErr).Fatal("Failed to schedule reminder cron")
	}
	c.Start()
	defer c.Stop()

	co := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.AppUrl},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("listings-service failed to start:", err)
	}
}
