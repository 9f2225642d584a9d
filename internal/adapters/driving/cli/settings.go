package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage deck settings",
	Long: `View and configure the driving deck settings.

Settings:
  tick_ms         - frame interval in milliseconds
  key_hold_ms     - how long a key press counts as held
  strict_playback - fail on corrupt session files instead of degrading
  sessions_dir    - where recorded sessions are stored`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	cmd.Println("Deck Settings")
	cmd.Println("=============")
	cmd.Printf("  tick_ms:         %d\n", settings.TickMS)
	cmd.Printf("  key_hold_ms:     %d\n", settings.KeyHoldMS)
	cmd.Printf("  strict_playback: %t\n", settings.StrictPlayback)
	cmd.Printf("  sessions_dir:    %s\n", settings.SessionsDir)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	key, value := args[0], args[1]
	switch key {
	case "tick_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("tick_ms must be an integer: %w", err)
		}
		settings.TickMS = v

	case "key_hold_ms":
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("key_hold_ms must be an integer: %w", err)
		}
		settings.KeyHoldMS = v

	case "strict_playback":
		v, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("strict_playback must be a boolean: %w", err)
		}
		settings.StrictPlayback = v

	case "sessions_dir":
		settings.SessionsDir = value

	default:
		return fmt.Errorf("unknown setting %q", key)
	}

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}

	cmd.Printf("Set %s to %s\n", key, value)
	return nil
}
