package music

import "time"

// Config holds the music module configuration.
type Config struct {
	RecognitionURL  string        `env:"RECOGNITION_URL,notEmpty"`
	SearchSource    string        `env:"SEARCH_SOURCE" envDefault:"youtube"`
	SearchLimit     int           `env:"SEARCH_LIMIT" envDefault:"50"`
	ProviderTimeout time.Duration `env:"PROVIDER_TIMEOUT" envDefault:"30s"`
	CacheDir        string        `env:"CACHE_DIR" envDefault:"cache"`
	DownloadDir     string        `env:"DOWNLOAD_DIR" envDefault:"downloads"`
	PrefsFile       string        `env:"PREFS_FILE" envDefault:"user_prefs.json"`

	// SessionMaxIdle enables background eviction of idle sessions when
	// positive; zero keeps sessions until replaced.
	SessionMaxIdle time.Duration `env:"SESSION_MAX_IDLE" envDefault:"0"`
}
