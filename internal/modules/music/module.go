package music

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	tgbot "github.com/go-telegram/bot"

	"github.com/aglarus/tunegram/internal/bot"
	"github.com/aglarus/tunegram/internal/modules/music/application/ports"
	"github.com/aglarus/tunegram/internal/modules/music/application/usecases"
	"github.com/aglarus/tunegram/internal/modules/music/infrastructure"
	"github.com/aglarus/tunegram/internal/modules/music/presentation/telegram"
)

func init() {
	bot.Register(&MusicModule{})
}

// Compile-time interface checks.
var _ bot.ConfigurableModule = (*MusicModule)(nil)

// MusicModule provides music search, recognition and delivery.
type MusicModule struct {
	config   *Config
	handlers *telegram.Handlers
	sessions *infrastructure.MemorySessionRepository

	// Context for the session eviction loop.
	ctx    context.Context
	cancel context.CancelFunc
}

// Name returns the module name.
func (m *MusicModule) Name() string {
	return "music"
}

// Handlers returns the pattern-bound handlers for this module.
func (m *MusicModule) Handlers() []bot.HandlerRegistration {
	return []bot.HandlerRegistration{
		{
			Type:      tgbot.HandlerTypeMessageText,
			Pattern:   "/start",
			MatchType: tgbot.MatchTypeExact,
			Handler:   m.handlers.HandleStart,
		},
		{
			Type:      tgbot.HandlerTypeCallbackQueryData,
			Pattern:   "select:",
			MatchType: tgbot.MatchTypePrefix,
			Handler:   m.handlers.HandleCallback,
		},
		{
			Type:      tgbot.HandlerTypeCallbackQueryData,
			Pattern:   "page:",
			MatchType: tgbot.MatchTypePrefix,
			Handler:   m.handlers.HandleCallback,
		},
		{
			Type:      tgbot.HandlerTypeCallbackQueryData,
			Pattern:   "lang:",
			MatchType: tgbot.MatchTypePrefix,
			Handler:   m.handlers.HandleCallback,
		},
	}
}

// UpdateHandlers returns the catch-all handlers: media goes to recognition,
// any remaining free text becomes a search query.
func (m *MusicModule) UpdateHandlers() []bot.UpdateHandler {
	return []bot.UpdateHandler{
		m.handlers.HandleMediaMessage,
		m.handlers.HandleTextMessage,
	}
}

// LoadConfig loads module-specific configuration from environment variables.
func (m *MusicModule) LoadConfig() error {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return err
	}
	m.config = cfg
	return nil
}

// Init initializes the module.
func (m *MusicModule) Init(deps bot.ModuleDependencies) error {
	if err := os.MkdirAll(m.config.CacheDir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	provider, err := m.searchProvider()
	if err != nil {
		return err
	}

	downloader, err := infrastructure.NewYTDLPDownloader(m.config.DownloadDir)
	if err != nil {
		return fmt.Errorf("failed to set up downloader: %w", err)
	}

	prefStore, err := infrastructure.NewFilePreferenceStore(m.config.PrefsFile)
	if err != nil {
		return fmt.Errorf("failed to load preferences: %w", err)
	}

	m.sessions = infrastructure.NewMemorySessionRepository()

	search := usecases.NewSearchService(
		provider,
		m.sessions,
		m.config.SearchLimit,
		m.config.ProviderTimeout,
	)
	recognition := usecases.NewRecognitionService(
		infrastructure.NewHTTPRecognizer(m.config.RecognitionURL),
		infrastructure.NewFFmpegTranscoder(m.config.ProviderTimeout),
		search,
		m.config.ProviderTimeout,
	)
	browse := usecases.NewBrowseService(m.sessions)
	delivery := usecases.NewDeliveryService(downloader)
	prefs := usecases.NewPreferenceService(prefStore)

	m.handlers = telegram.NewHandlers(
		search,
		recognition,
		browse,
		delivery,
		prefs,
		deps.Bot,
		deps.Bot,
		m.config.CacheDir,
	)

	if m.config.SessionMaxIdle > 0 {
		m.ctx, m.cancel = context.WithCancel(context.Background())
		go m.evictLoop(m.config.SessionMaxIdle)
	}

	return nil
}

// Shutdown gracefully shuts down the module.
func (m *MusicModule) Shutdown() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

func (m *MusicModule) searchProvider() (ports.SearchProvider, error) {
	switch m.config.SearchSource {
	case "youtube":
		return infrastructure.NewYouTubeSearchProvider(), nil
	case "youtube_music":
		return infrastructure.NewYouTubeMusicSearchProvider(), nil
	}
	return nil, fmt.Errorf("unknown search source %q", m.config.SearchSource)
}

func (m *MusicModule) evictLoop(maxIdle time.Duration) {
	interval := maxIdle / 2
	if interval < time.Minute {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-m.ctx.Done():
			return
		case <-ticker.C:
			if n := m.sessions.EvictIdle(maxIdle); n > 0 {
				slog.Debug("evicted idle sessions", "count", n)
			}
		}
	}
}
