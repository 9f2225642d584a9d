package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
)

var (
	replayHeadless bool
	replayJSON     bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <session>",
	Short: "Play back a recorded session",
	Long: `Replay a recorded session tick for tick. The session is resolved
through the catalog by name or ID, falling back to a file path.

With --headless the deck UI is skipped and each replayed control
vector is printed instead, paced at the configured tick rate. Combine
with --json for machine-readable output.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	replayCmd.Flags().BoolVar(&replayHeadless, "headless", false, "print vectors instead of opening the deck")
	replayCmd.Flags().BoolVar(&replayJSON, "json", false, "with --headless, print vectors as JSON lines")
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	if catalogService == nil || settingsService == nil || newController == nil {
		return errors.New("replay services not configured")
	}

	info, err := catalogService.Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving session %q: %w", args[0], err)
	}

	cfg := domain.SessionConfig{Mode: domain.ModePlayback, Endpoint: info.Path}
	if !replayHeadless {
		return runDeck(cmd, cfg)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	controller, err := newController(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer controller.Close() //nolint:errcheck // playback close has no side effects

	return replayHeadlessLoop(cmd.Context(), cmd, controller, settings)
}

// replayHeadlessLoop replays the whole session without a UI, one tick
// per configured interval.
func replayHeadlessLoop(ctx context.Context, cmd *cobra.Command, controller driving.Controller, settings domain.DeckSettings) error {
	tick := time.Duration(settings.TickMS) * time.Millisecond
	limiter := rate.NewLimiter(rate.Every(tick), 1)

	for {
		if err := limiter.Wait(ctx); err != nil {
			return err
		}

		result, err := controller.Tick(float64(settings.TickMS), domain.KeySet{})
		if err != nil {
			return err
		}
		if result.Exhausted {
			break
		}

		if replayJSON {
			data, err := json.Marshal(result.Control)
			if err != nil {
				return fmt.Errorf("marshalling vector: %w", err)
			}
			cmd.Println(string(data))
		} else {
			c := result.Control
			gear := "D"
			if c.Reverse {
				gear = "R"
			}
			cmd.Printf("tick %4d  steer %+.1f  throttle %.1f  brake %.1f  gear %s\n",
				controller.Ticks(), c.Steer, c.Throttle, c.Brake, gear)
		}
	}

	cmd.Printf("Replayed %d ticks\n", controller.PlaybackLen())
	return nil
}
