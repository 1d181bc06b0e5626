package bot

import (
	"context"
	"fmt"
	"log/slog"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Bot manages the Telegram bot lifecycle and module coordination.
type Bot struct {
	config  *Config
	tg      *tgbot.Bot
	modules []Module

	ctx    context.Context
	cancel context.CancelFunc
}

// NewBot creates a new Bot instance with the given configuration.
func NewBot(cfg *Config) *Bot {
	return &Bot{
		config:  cfg,
		modules: make([]Module, 0),
	}
}

// LoadModules loads modules from the global registry.
func (b *Bot) LoadModules() {
	b.modules = Modules()
}

// Start creates the Telegram session, initializes modules, registers their
// handlers, and begins long polling.
func (b *Bot) Start() error {
	// Load module-specific configuration before any connection is made
	if err := b.loadModuleConfigs(); err != nil {
		return err
	}

	tg, err := tgbot.New(b.config.TelegramToken, tgbot.WithDefaultHandler(b.handleUpdate))
	if err != nil {
		return fmt.Errorf("failed to create Telegram session: %w", err)
	}
	b.tg = tg

	// Initialize modules
	if err := b.initModules(); err != nil {
		return fmt.Errorf("failed to initialize modules: %w", err)
	}

	// Register module handlers
	b.registerHandlers()

	me, err := tg.GetMe(context.Background())
	if err != nil {
		return fmt.Errorf("failed to identify bot: %w", err)
	}

	b.ctx, b.cancel = context.WithCancel(context.Background())
	go tg.Start(b.ctx)

	slog.Info("started bot",
		"user_id", me.ID,
		"username", me.Username,
	)

	return nil
}

// Stop gracefully shuts down the bot.
func (b *Bot) Stop() error {
	// Stop polling first so no new updates reach the modules
	if b.cancel != nil {
		b.cancel()
	}

	// Shutdown modules
	for _, mod := range b.modules {
		if err := mod.Shutdown(); err != nil {
			slog.Warn("failed to shutdown module", "module", mod.Name(), "error", err)
		}
	}

	return nil
}

// loadModuleConfigs runs LoadConfig on every module that opts in.
func (b *Bot) loadModuleConfigs() error {
	for _, mod := range b.modules {
		cfgMod, ok := mod.(ConfigurableModule)
		if !ok {
			continue
		}
		if err := cfgMod.LoadConfig(); err != nil {
			return fmt.Errorf("failed to load %s module config: %w", mod.Name(), err)
		}
	}
	return nil
}

// initModules initializes all loaded modules.
func (b *Bot) initModules() error {
	deps := ModuleDependencies{
		Config: b.config,
		Bot:    b.tg,
	}

	for _, mod := range b.modules {
		if err := mod.Init(deps); err != nil {
			return fmt.Errorf("failed to initialize %s module: %w", mod.Name(), err)
		}
		slog.Debug("initialized module", "module", mod.Name())
	}

	moduleNames := make([]string, len(b.modules))
	for i, mod := range b.modules {
		moduleNames[i] = mod.Name()
	}
	slog.Info("initialized modules", "modules", moduleNames)

	return nil
}

// registerHandlers registers all pattern-bound module handlers with the session.
func (b *Bot) registerHandlers() {
	for _, mod := range b.modules {
		for _, reg := range mod.Handlers() {
			b.tg.RegisterHandler(reg.Type, reg.Pattern, reg.MatchType, reg.Handler)
			slog.Debug("registered handler", "module", mod.Name(), "pattern", reg.Pattern)
		}
	}
}

// handleUpdate routes updates that matched no registered pattern through the
// modules' catch-all handlers, in module load order.
func (b *Bot) handleUpdate(ctx context.Context, tg *tgbot.Bot, update *models.Update) {
	for _, mod := range b.modules {
		for _, handler := range mod.UpdateHandlers() {
			if handler(ctx, tg, update) {
				return
			}
		}
	}
}
