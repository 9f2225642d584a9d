package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/tui"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

var recordCmd = &cobra.Command{
	Use:   "record [name]",
	Short: "Record a driving session",
	Long: `Drive interactively while every tick's control vector is captured.
The session is flushed to disk when the deck exits and registered in
the session catalog under the given name.

Without a name, a timestamped one is generated.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRecord,
}

func init() {
	rootCmd.AddCommand(recordCmd)
}

func runRecord(cmd *cobra.Command, args []string) error {
	if settingsService == nil || catalogService == nil || newController == nil {
		return errors.New("record services not configured")
	}
	if !isTerminal(os.Stdout.Fd()) {
		return errors.New("drivedeck needs a terminal; recording is interactive")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	name := ""
	if len(args) > 0 {
		name = args[0]
	}
	if name == "" {
		name = "session-" + time.Now().Format("20060102-150405")
	}
	path := filepath.Join(settings.SessionsDir, name+".json")

	cfg := domain.SessionConfig{Mode: domain.ModeRecord, Endpoint: path}
	controller, err := newController(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	app, err := tui.NewApp(controller, settings, path)
	if err != nil {
		controller.Close() //nolint:errcheck // nothing recorded yet
		return err
	}

	runErr := app.Run()
	records := controller.Ticks()
	duration := time.Since(start)

	if err := controller.Close(); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}

	info, err := catalogService.Register(cmd.Context(), name, path, records, duration)
	if err != nil {
		return fmt.Errorf("registering session: %w", err)
	}

	cmd.Printf("Recorded %d ticks to %s\n", records, path)
	cmd.Printf("Session %q registered (%s)\n", info.Name, info.ID)
	return nil
}
