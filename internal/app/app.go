package app

import (
	"github.com/propertyfinder/listings-service/internal/config"
	"github.com/propertyfinder/listings-service/internal/repositories"
)

// App bundles the config and the shared stores so wiring stays in one
// place.
type App struct {
	Cfg *config.Config

	ListingRepo      repositories.ListingRepository
	EventRepo        repositories.EventRepository
	MessageRepo      repositories.MessageRepository
	NotificationRepo repositories.NotificationRepository
	UserRepo         repositories.UserRepository
}

func NewApp(cfg *config.Config) *App {
	return &App{
		Cfg:              cfg,
		ListingRepo:      repositories.NewListingRepository(),
		EventRepo:        repositories.NewEventRepository(),
		MessageRepo:      repositories.NewMessageRepository(),
		NotificationRepo: repositories.NewNotificationRepository(),
		UserRepo:         repositories.NewUserRepository(),
	}
}
