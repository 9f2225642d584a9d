// Package dashboard provides the driving HUD view for the TUI.
package dashboard

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui/styles"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

// gaugeWidth is the character width of the throttle, brake and
// steering gauges.
const gaugeWidth = 21

// Frame carries the state rendered for a single tick.
type Frame struct {
	Mode        domain.Mode
	Endpoint    string
	Ticks       int
	Elapsed     time.Duration
	Control     domain.ControlVector
	PlaybackLen int
	Exhausted   bool
}

// View renders the driving dashboard.
type View struct {
	styles   *styles.Styles
	progress progress.Model
	frame    Frame
	err      error
	width    int
	height   int
	ready    bool
}

// NewView creates a new dashboard view.
func NewView(s *styles.Styles) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:   s,
		progress: progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		width:    80,
		height:   24,
	}
}

// Init initialises the dashboard view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the dashboard view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		v.SetDimensions(msg.Width, msg.Height)
	}
	return v, nil
}

// SetFrame updates the state shown on the next render.
func (v *View) SetFrame(frame Frame) {
	v.frame = frame
	v.ready = true
}

// SetErr records an error to display in the dashboard.
func (v *View) SetErr(err error) {
	v.err = err
}

// View renders the dashboard.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	f := v.frame
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("drivedeck"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(v.modeLine()))
	b.WriteString("\n\n")

	b.WriteString(v.statusLine())
	b.WriteString("\n\n")

	b.WriteString(v.gaugeLine("throttle", v.styles.Throttle, bar(f.Control.Throttle, gaugeWidth)))
	b.WriteString("\n")
	b.WriteString(v.gaugeLine("brake   ", v.styles.Brake, bar(f.Control.Brake, gaugeWidth)))
	b.WriteString("\n")
	b.WriteString(v.gaugeLine("steer   ", v.styles.Steer, steerGauge(f.Control.Steer, gaugeWidth)))
	b.WriteString("\n")

	if f.Control.HandBrake {
		b.WriteString("\n")
		b.WriteString(v.styles.Warning.Render("HAND BRAKE"))
		b.WriteString("\n")
	}

	if f.Mode == domain.ModePlayback {
		b.WriteString("\n")
		b.WriteString(v.playbackLine())
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render("error: " + v.err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render(
		"[↑/w] throttle  [↓/s] brake  [←→/ad] steer  [space] hand brake  [q] gear  [esc] quit"))

	return b.String()
}

// modeLine describes the session mode and its endpoint, if any.
func (v *View) modeLine() string {
	f := v.frame
	if f.Endpoint == "" {
		return string(f.Mode)
	}
	return fmt.Sprintf("%s %s", f.Mode, f.Endpoint)
}

// statusLine shows tick count, elapsed time and gear.
func (v *View) statusLine() string {
	f := v.frame

	gear := "D"
	if f.Control.Reverse {
		gear = "R"
	}

	return strings.Join([]string{
		v.field("tick", fmt.Sprintf("%d", f.Ticks)),
		v.field("elapsed", f.Elapsed.Truncate(100*time.Millisecond).String()),
		v.field("gear", gear),
	}, "   ")
}

// playbackLine shows playback position and the progress bar.
func (v *View) playbackLine() string {
	f := v.frame

	pos := f.Ticks
	if pos > f.PlaybackLen {
		pos = f.PlaybackLen
	}

	var pct float64
	if f.PlaybackLen > 0 {
		pct = float64(pos) / float64(f.PlaybackLen)
	}

	line := v.field("playback", fmt.Sprintf("%d/%d", pos, f.PlaybackLen)) +
		"  " + v.progress.ViewAs(pct)
	if f.Exhausted {
		line += "  " + v.styles.Warning.Render("end of session")
	}
	return line
}

// field renders a labelled value.
func (v *View) field(label, value string) string {
	return v.styles.Label.Render(label+":") + " " + v.styles.Value.Render(value)
}

// gaugeLine renders a labelled gauge.
func (v *View) gaugeLine(label string, style lipgloss.Style, gauge string) string {
	return v.styles.Label.Render(label) + " " + style.Render(gauge)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true

	pw := width - 30
	if pw > 40 {
		pw = 40
	}
	if pw > 0 {
		v.progress.Width = pw
	}
}

// bar renders a left-to-right fill gauge for a value in [0, 1].
func bar(value float64, width int) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}

	filled := int(value*float64(width) + 0.5)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// steerGauge renders a centred gauge for steer in [-MaxSteer, MaxSteer].
// The marker sits in the middle at zero deflection.
func steerGauge(steer float64, width int) string {
	if width%2 == 0 {
		width++
	}

	norm := steer / domain.MaxSteer
	if norm < -1 {
		norm = -1
	}
	if norm > 1 {
		norm = 1
	}

	centre := width / 2
	pos := centre + int(norm*float64(centre)+math.Copysign(0.5, norm))
	if pos < 0 {
		pos = 0
	}
	if pos >= width {
		pos = width - 1
	}

	cells := []rune(strings.Repeat("·", width))
	cells[centre] = '|'
	cells[pos] = '█'
	return "[" + string(cells) + "]"
}
