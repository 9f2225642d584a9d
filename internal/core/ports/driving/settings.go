package driving

import (
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// SettingsService manages deck configuration.
type SettingsService interface {
	// Get retrieves current settings, with defaults applied for any
	// key that has not been configured.
	Get() (domain.DeckSettings, error)

	// Save persists settings.
	Save(settings domain.DeckSettings) error
}
