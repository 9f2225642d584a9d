package services

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// mockConfigStore implements driven.ConfigStore for testing.
type mockConfigStore struct {
	data    map[string]any
	saveErr error
}

func newMockConfigStore() *mockConfigStore {
	return &mockConfigStore{data: make(map[string]any)}
}

func (m *mockConfigStore) Get(key string) (any, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *mockConfigStore) GetString(key string) string {
	if s, ok := m.data[key].(string); ok {
		return s
	}
	return ""
}

func (m *mockConfigStore) GetInt(key string) int {
	switch v := m.data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	default:
		return 0
	}
}

func (m *mockConfigStore) GetBool(key string) bool {
	b, _ := m.data[key].(bool)
	return b
}

func (m *mockConfigStore) Set(key string, value any) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.data[key] = value
	return nil
}

func (m *mockConfigStore) Save() error { return m.saveErr }
func (m *mockConfigStore) Load() error { return nil }
func (m *mockConfigStore) Path() string {
	return "/tmp/config.toml"
}

func TestSettingsService_GetDefaults(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), "/home/op/.drivedeck")

	settings, err := svc.Get()
	require.NoError(t, err)

	defaults := domain.DefaultDeckSettings()
	assert.Equal(t, defaults.TickMS, settings.TickMS)
	assert.Equal(t, defaults.KeyHoldMS, settings.KeyHoldMS)
	assert.False(t, settings.StrictPlayback)
	assert.Equal(t, filepath.Join("/home/op/.drivedeck", "sessions"), settings.SessionsDir)
}

func TestSettingsService_GetConfiguredValues(t *testing.T) {
	store := newMockConfigStore()
	store.data[keyTickMS] = int64(50)
	store.data[keyKeyHoldMS] = int64(200)
	store.data[keyStrictPlayback] = true
	store.data[keySessionsDir] = "/var/deck/sessions"

	svc := NewSettingsService(store, "/home/op/.drivedeck")
	settings, err := svc.Get()
	require.NoError(t, err)

	assert.Equal(t, 50, settings.TickMS)
	assert.Equal(t, 200, settings.KeyHoldMS)
	assert.True(t, settings.StrictPlayback)
	assert.Equal(t, "/var/deck/sessions", settings.SessionsDir)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := newMockConfigStore()
	svc := NewSettingsService(store, "/home/op/.drivedeck")

	want := domain.DeckSettings{
		TickMS:         25,
		KeyHoldMS:      120,
		StrictPlayback: true,
		SessionsDir:    "/data/sessions",
	}
	require.NoError(t, svc.Save(want))

	got, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSettingsService_SaveRejectsInvalidSettings(t *testing.T) {
	svc := NewSettingsService(newMockConfigStore(), "")

	err := svc.Save(domain.DeckSettings{TickMS: 0, KeyHoldMS: 100})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	err = svc.Save(domain.DeckSettings{TickMS: 33, KeyHoldMS: -1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
