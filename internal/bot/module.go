package bot

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// HandlerRegistration binds a handler to a message or callback pattern.
// It mirrors the arguments of tgbot.Bot.RegisterHandler.
type HandlerRegistration struct {
	Type      tgbot.HandlerType
	Pattern   string
	MatchType tgbot.MatchType
	Handler   tgbot.HandlerFunc
}

// UpdateHandler processes an update that did not match any registered
// pattern, e.g. free-text messages or media uploads. It reports whether
// it consumed the update; unconsumed updates are offered to the next module.
type UpdateHandler func(ctx context.Context, b *tgbot.Bot, update *models.Update) bool

// ModuleDependencies provides dependencies that modules may need during initialization.
type ModuleDependencies struct {
	Config *Config
	Bot    *tgbot.Bot
}

// Module defines the interface that all bot modules must implement.
type Module interface {
	// Name returns the unique identifier for this module.
	Name() string

	// Handlers returns the pattern-bound handlers that this module provides.
	Handlers() []HandlerRegistration

	// UpdateHandlers returns catch-all handlers for updates that match no
	// registered pattern. They run in registration order until one consumes
	// the update.
	UpdateHandlers() []UpdateHandler

	// Init initializes the module with the provided dependencies.
	Init(deps ModuleDependencies) error

	// Shutdown gracefully shuts down the module.
	Shutdown() error
}

// ConfigurableModule is an optional interface for modules that need configuration.
// Modules implementing this interface will have LoadConfig called before Init.
type ConfigurableModule interface {
	// LoadConfig loads and validates module-specific configuration.
	// Called before Init() and before the Telegram connection is established.
	// Should return an error if required configuration is missing or invalid.
	LoadConfig() error
}
