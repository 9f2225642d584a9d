package services

import (
	"fmt"
	"path/filepath"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTickMS         = "drive.tick_ms"
	keyKeyHoldMS      = "drive.key_hold_ms"
	keyStrictPlayback = "playback.strict"
	keySessionsDir    = "sessions.dir"
)

// SettingsService manages deck settings backed by a config store.
type SettingsService struct {
	configStore driven.ConfigStore

	// baseDir is the config directory; the default sessions dir lives
	// under it.
	baseDir string
}

// NewSettingsService creates a new settings service. baseDir is the
// drivedeck config directory, used for the default sessions location.
func NewSettingsService(configStore driven.ConfigStore, baseDir string) *SettingsService {
	return &SettingsService{
		configStore: configStore,
		baseDir:     baseDir,
	}
}

// Get retrieves current settings with defaults applied.
func (s *SettingsService) Get() (domain.DeckSettings, error) {
	settings := domain.DefaultDeckSettings()

	if v := s.configStore.GetInt(keyTickMS); v > 0 {
		settings.TickMS = v
	}
	if v := s.configStore.GetInt(keyKeyHoldMS); v > 0 {
		settings.KeyHoldMS = v
	}
	if _, ok := s.configStore.Get(keyStrictPlayback); ok {
		settings.StrictPlayback = s.configStore.GetBool(keyStrictPlayback)
	}

	settings.SessionsDir = s.configStore.GetString(keySessionsDir)
	if settings.SessionsDir == "" {
		settings.SessionsDir = filepath.Join(s.baseDir, "sessions")
	}

	return settings, nil
}

// Save persists settings.
func (s *SettingsService) Save(settings domain.DeckSettings) error {
	if err := settings.Validate(); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}

	if err := s.configStore.Set(keyTickMS, settings.TickMS); err != nil {
		return fmt.Errorf("save tick_ms: %w", err)
	}
	if err := s.configStore.Set(keyKeyHoldMS, settings.KeyHoldMS); err != nil {
		return fmt.Errorf("save key_hold_ms: %w", err)
	}
	if err := s.configStore.Set(keyStrictPlayback, settings.StrictPlayback); err != nil {
		return fmt.Errorf("save playback.strict: %w", err)
	}
	if err := s.configStore.Set(keySessionsDir, settings.SessionsDir); err != nil {
		return fmt.Errorf("save sessions.dir: %w", err)
	}
	return nil
}
