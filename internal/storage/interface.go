package storage

import "github.com/liftlog-dev/liftlog/internal/models"

// DefaultRestSeconds is the rest-timer duration used when no preference
// has been saved.
const DefaultRestSeconds = 120

// Settings holds the persisted user preferences, read once at startup.
type Settings struct {
	Theme        string `json:"theme"` // "dark" or "light"
	RestTimerSec int    `json:"rest_timer_sec"`
}

// DefaultSettings returns the settings used for a fresh store.
func DefaultSettings() Settings {
	return Settings{
		Theme:        "dark",
		RestTimerSec: DefaultRestSeconds,
	}
}

// Provider is the persistence gateway: it reads and writes the three
// top-level collections and the settings as opaque snapshots. The
// domain store owns all mutation rules; a Provider only moves bytes.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Collections
	LoadCollections() (models.Collections, error)
	SaveCollections(models.Collections) error

	// Settings
	GetSettings() (Settings, error)
	SaveSettings(Settings) error

	// Utils
	GetConfigPath() string
}
