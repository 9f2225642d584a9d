package cli

import (
	"context"
	"time"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
)

// mockCatalogService implements driving.CatalogService for testing.
type mockCatalogService struct {
	sessions   []domain.SessionInfo
	registered []domain.SessionInfo
	removed    []string
	listErr    error
	resolveErr error
	removeErr  error
}

var _ driving.CatalogService = (*mockCatalogService)(nil)

func (m *mockCatalogService) Register(_ context.Context, name, path string, records int, duration time.Duration) (domain.SessionInfo, error) {
	info := domain.SessionInfo{
		ID:       "id-" + name,
		Name:     name,
		Path:     path,
		Records:  records,
		Duration: duration,
	}
	m.registered = append(m.registered, info)
	return info, nil
}

func (m *mockCatalogService) List(_ context.Context) ([]domain.SessionInfo, error) {
	return m.sessions, m.listErr
}

func (m *mockCatalogService) Resolve(_ context.Context, ref string) (*domain.SessionInfo, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	for i := range m.sessions {
		if m.sessions[i].ID == ref || m.sessions[i].Name == ref {
			return &m.sessions[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockCatalogService) Remove(_ context.Context, ref string) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, ref)
	return nil
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.DeckSettings
	saved    []domain.DeckSettings
	getErr   error
	saveErr  error
}

var _ driving.SettingsService = (*mockSettingsService)(nil)

func (m *mockSettingsService) Get() (domain.DeckSettings, error) {
	return m.settings, m.getErr
}

func (m *mockSettingsService) Save(settings domain.DeckSettings) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = append(m.saved, settings)
	return nil
}

// mockSessionStore implements driven.SessionStore for testing.
type mockSessionStore struct {
	logs    map[string]*domain.SessionLog
	loadErr error
}

var _ driven.SessionStore = (*mockSessionStore)(nil)

func (m *mockSessionStore) Load(_ context.Context, path string) (*domain.SessionLog, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	log, ok := m.logs[path]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return log.Clone(), nil
}

func (m *mockSessionStore) Save(_ context.Context, path string, log *domain.SessionLog) error {
	if m.logs == nil {
		m.logs = make(map[string]*domain.SessionLog)
	}
	m.logs[path] = log.Clone()
	return nil
}

// stubController implements driving.Controller with a canned playback log.
type stubController struct {
	mode     domain.Mode
	playback []domain.ControlVector
	cursor   int
	ticks    int
	last     domain.ControlVector
	closed   bool
}

var _ driving.Controller = (*stubController)(nil)

func (s *stubController) Mode() domain.Mode { return s.mode }

func (s *stubController) Tick(_ float64, _ domain.KeySet) (domain.TickResult, error) {
	s.ticks++
	if s.cursor < len(s.playback) {
		s.last = s.playback[s.cursor]
		s.cursor++
		return domain.TickResult{Control: s.last}, nil
	}
	return domain.TickResult{Control: s.last, Exhausted: true}, nil
}

func (s *stubController) Ticks() int       { return s.ticks }
func (s *stubController) PlaybackLen() int { return len(s.playback) }
func (s *stubController) Close() error     { s.closed = true; return nil }

func testDeckSettings(dir string) domain.DeckSettings {
	return domain.DeckSettings{
		TickMS:      1,
		KeyHoldMS:   150,
		SessionsDir: dir,
	}
}

// setupCLITest swaps in mock services and returns a cleanup function.
func setupCLITest(catalog *mockCatalogService, settings *mockSettingsService, store *mockSessionStore) func() {
	oldCatalog := catalogService
	oldSettings := settingsService
	oldStore := sessionStore
	oldFactory := newController
	oldWatcher := newWatcher

	catalogService = catalog
	settingsService = settings
	sessionStore = store

	return func() {
		catalogService = oldCatalog
		settingsService = oldSettings
		sessionStore = oldStore
		newController = oldFactory
		newWatcher = oldWatcher
	}
}
