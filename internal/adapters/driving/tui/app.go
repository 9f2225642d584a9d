// Package tui implements the interactive driving deck on top of
// Bubbletea. A timer message drives the control loop: every tick the
// held keys are sampled, fed to the session controller, and the
// resulting control vector is rendered on the dashboard.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/keymap"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/messages"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/styles"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/views/dashboard"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
)

// App is the driving deck application. It implements tea.Model.
type App struct {
	// controller is the session controller ticked every frame.
	controller driving.Controller

	// endpoint is the session file shown in the header, if any.
	endpoint string

	// keys holds the keybindings.
	keys *keymap.KeyMap

	// keyState tracks held driving keys across ticks.
	keyState *KeyState

	// styles holds the TUI styles.
	styles *styles.Styles

	// dashboard renders the HUD.
	dashboard *dashboard.View

	// tick is the frame interval.
	tick time.Duration

	// lastTick is when the previous frame ran.
	lastTick time.Time

	// started is when the first frame ran.
	started time.Time

	// err holds a fatal tick error.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates the app has received its initial size.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a driving deck for the given controller. The settings
// supply the tick interval and the key hold window; endpoint is shown
// in the header and may be empty for live sessions.
func NewApp(controller driving.Controller, settings domain.DeckSettings, endpoint string) (*App, error) {
	if controller == nil {
		return nil, fmt.Errorf("%w: controller is required", domain.ErrInvalidInput)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()

	return &App{
		controller: controller,
		endpoint:   endpoint,
		keys:       keymap.DefaultKeyMap(),
		keyState:   NewKeyState(time.Duration(settings.KeyHoldMS) * time.Millisecond),
		styles:     s,
		dashboard:  dashboard.NewView(s),
		tick:       time.Duration(settings.TickMS) * time.Millisecond,
	}, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("drivedeck"),
		a.tickCmd(),
	)
}

// tickCmd schedules the next frame.
func (a *App) tickCmd() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg {
		return messages.Tick{Time: t}
	})
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.dashboard.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.Tick:
		return a.handleTick(msg.Time)

	case messages.ErrorOccurred:
		a.err = msg.Err
		a.dashboard.SetErr(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// handleKey routes a key press to the key state or quits.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, a.keys.Quit) {
		return a, tea.Quit
	}
	if action, ok := a.keys.DriveAction(msg); ok {
		a.keyState.Press(action, time.Now())
	}
	return a, nil
}

// handleTick advances the controller by one frame.
func (a *App) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := a.tick
	if !a.lastTick.IsZero() {
		elapsed = now.Sub(a.lastTick)
	}
	if a.started.IsZero() {
		a.started = now
	}
	a.lastTick = now

	keys := a.keyState.Snapshot(now)
	result, err := a.controller.Tick(float64(elapsed)/float64(time.Millisecond), keys)
	if err != nil {
		a.err = err
		a.dashboard.SetErr(err)
		return a, tea.Quit
	}

	a.dashboard.SetFrame(dashboard.Frame{
		Mode:        a.controller.Mode(),
		Endpoint:    a.endpoint,
		Ticks:       a.controller.Ticks(),
		Elapsed:     now.Sub(a.started),
		Control:     result.Control,
		PlaybackLen: a.controller.PlaybackLen(),
		Exhausted:   result.Exhausted,
	})

	return a, a.tickCmd()
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}
	return a.dashboard.View()
}

// Run starts the driving deck and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	if err != nil {
		return err
	}
	return a.err
}

// Err returns the fatal tick error, if any.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its initial size.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.dashboard.SetDimensions(width, height)
}
