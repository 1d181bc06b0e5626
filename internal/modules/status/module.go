package status

import (
	tgbot "github.com/go-telegram/bot"

	"github.com/aglarus/tunegram/internal/bot"
	"github.com/aglarus/tunegram/internal/modules/status/presentation"
)

func init() {
	bot.Register(&StatusModule{})
}

// StatusModule provides liveness commands like /ping.
type StatusModule struct {
	pingHandler *presentation.PingHandler
}

// Name returns the module name.
func (m *StatusModule) Name() string {
	return "status"
}

// Handlers returns the pattern-bound handlers for this module.
func (m *StatusModule) Handlers() []bot.HandlerRegistration {
	return []bot.HandlerRegistration{
		{
			Type:      tgbot.HandlerTypeMessageText,
			Pattern:   "/ping",
			MatchType: tgbot.MatchTypeExact,
			Handler:   m.pingHandler.Handle,
		},
	}
}

// UpdateHandlers returns no catch-all handlers.
func (m *StatusModule) UpdateHandlers() []bot.UpdateHandler {
	return nil
}

// Init initializes the module.
func (m *StatusModule) Init(deps bot.ModuleDependencies) error {
	m.pingHandler = presentation.NewPingHandler(deps.Bot)
	return nil
}

// Shutdown cleans up module resources.
func (m *StatusModule) Shutdown() error {
	return nil
}
