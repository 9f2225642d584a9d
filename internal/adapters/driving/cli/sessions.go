package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
)

var sessionsWatch bool

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage recorded sessions",
	RunE:  runSessionsList,
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded sessions",
	Long: `List the sessions registered in the catalog, most recent first.

With --watch, the sessions directory is watched and changes to session
files are reported until interrupted.`,
	RunE: runSessionsList,
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session>",
	Short: "Show details for a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

var sessionsRmCmd = &cobra.Command{
	Use:   "rm <session>",
	Short: "Remove a session and its file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsRm,
}

func init() {
	sessionsListCmd.Flags().BoolVar(&sessionsWatch, "watch", false, "watch the sessions directory for changes")
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
	sessionsCmd.AddCommand(sessionsRmCmd)
	rootCmd.AddCommand(sessionsCmd)
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	sessions, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("listing sessions: %w", err)
	}

	if len(sessions) == 0 {
		cmd.Println("No sessions recorded.")
	} else {
		cmd.Printf("%-20s %-8s %-10s %s\n", "NAME", "TICKS", "DURATION", "RECORDED")
		for _, s := range sessions {
			cmd.Printf("%-20s %-8d %-10s %s\n",
				s.Name, s.Records,
				s.Duration.Truncate(100*time.Millisecond),
				s.RecordedAt.Format(time.DateTime))
		}
	}

	if sessionsWatch {
		return watchSessions(cmd)
	}
	return nil
}

// watchSessions reports session file changes until interrupted.
func watchSessions(cmd *cobra.Command) error {
	if settingsService == nil || newWatcher == nil {
		return errors.New("watch services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}

	watcher, err := newWatcher(settings.SessionsDir)
	if err != nil {
		return fmt.Errorf("watching %s: %w", settings.SessionsDir, err)
	}
	defer watcher.Close()

	cmd.Printf("Watching %s (ctrl+c to stop)\n", settings.SessionsDir)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	for {
		select {
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			verb := "changed"
			if event.Removed {
				verb = "removed"
			}
			cmd.Printf("%s %s\n", verb, event.Path)

		case <-interrupt:
			return nil

		case <-cmd.Context().Done():
			return nil
		}
	}
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	info, err := catalogService.Resolve(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("resolving session %q: %w", args[0], err)
	}

	printSessionInfo(cmd, info)

	if sessionStore != nil && info.Path != "" {
		log, err := sessionStore.Load(cmd.Context(), info.Path)
		if err != nil {
			cmd.Printf("Log:      unreadable (%v)\n", err)
			return nil
		}
		cmd.Printf("Log:      %d records on disk\n", log.Len())
	}
	return nil
}

func printSessionInfo(cmd *cobra.Command, info *domain.SessionInfo) {
	if info.ID != "" {
		cmd.Printf("ID:       %s\n", info.ID)
	}
	if info.Name != "" {
		cmd.Printf("Name:     %s\n", info.Name)
	}
	cmd.Printf("Path:     %s\n", info.Path)
	if info.ID != "" {
		cmd.Printf("Ticks:    %d\n", info.Records)
		cmd.Printf("Duration: %s\n", info.Duration.Truncate(time.Millisecond))
		cmd.Printf("Recorded: %s\n", info.RecordedAt.Format(time.DateTime))
	}
}

func runSessionsRm(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	if err := catalogService.Remove(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("removing session %q: %w", args[0], err)
	}

	cmd.Printf("Removed session %q\n", args[0])
	return nil
}
