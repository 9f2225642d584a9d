package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	fileconfig "github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driven/config/file"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
)

// newController builds a session controller. Injected via SetControllerFactory
// so tests can substitute a fake.
var newController ControllerFactory

// ControllerFactory builds a controller for a session configuration.
type ControllerFactory func(ctx context.Context, cfg domain.SessionConfig) (driving.Controller, error)

// SetControllerFactory wires the controller factory into the command tree.
func SetControllerFactory(factory ControllerFactory) {
	newController = factory
}

// isTerminal reports whether fd is attached to a terminal. Overridable
// in tests.
var isTerminal = func(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

var driveConf string

var driveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Drive a live session",
	Long: `Start an interactive driving session.

Hold the arrow keys or WASD to steer, accelerate and brake. Steering
deflection builds up gradually while a key is held and eases back to
centre when released.

With --conf, the session mode and endpoint are read from a legacy
two-line conf file instead, so a single conf can switch between live,
record and playback sessions.`,
	Args: cobra.NoArgs,
	RunE: runDrive,
}

func init() {
	driveCmd.Flags().StringVar(&driveConf, "conf", "", "legacy session conf file")
	rootCmd.AddCommand(driveCmd)
}

func runDrive(cmd *cobra.Command, _ []string) error {
	cfg, err := fileconfig.ParseSessionConfFile(driveConf)
	if err != nil {
		return err
	}
	return runDeck(cmd, cfg)
}

// runDeck starts the TUI driving deck for the given session config and
// tears the controller down when the deck exits.
func runDeck(cmd *cobra.Command, cfg domain.SessionConfig) (err error) {
	if settingsService == nil || newController == nil {
		return errors.New("drive services not configured")
	}
	if !isTerminal(os.Stdout.Fd()) {
		return errors.New("drivedeck needs a terminal; use 'replay --headless' for scripted playback")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	controller, err := newController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer func() {
		// The record flush must not be lost even when the deck fails.
		if closeErr := controller.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	app, err := tui.NewApp(controller, settings, cfg.Endpoint)
	if err != nil {
		return err
	}
	return app.Run()
}
