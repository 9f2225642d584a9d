// Package cli provides the cobra command tree for drivedeck.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
	"github.com/drivedeck-labs/drivedeck-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services wired in by main via SetDeps.
var (
	catalogService  driving.CatalogService
	settingsService driving.SettingsService
	sessionStore    driven.SessionStore

	// newWatcher creates a watcher for a sessions directory. Injected
	// so tests can substitute a fake.
	newWatcher func(dir string) (driven.SessionWatcher, error)
)

// Deps bundles the services the commands depend on.
type Deps struct {
	Catalog    driving.CatalogService
	Settings   driving.SettingsService
	Store      driven.SessionStore
	NewWatcher func(dir string) (driven.SessionWatcher, error)
}

// SetDeps wires the service dependencies into the command tree.
func SetDeps(deps Deps) {
	catalogService = deps.Catalog
	settingsService = deps.Settings
	sessionStore = deps.Store
	newWatcher = deps.NewWatcher
}

var (
	verbose   bool
	configDir string
)

// initDeps builds the services once flags are parsed. Set by main so
// --config-dir can influence where the adapters live; nil in tests,
// which wire mocks through SetDeps directly.
var initDeps func(configDir string) error

// SetInitializer registers the deferred dependency builder.
func SetInitializer(f func(configDir string) error) {
	initDeps = f
}

var rootCmd = &cobra.Command{
	Use:   "drivedeck",
	Short: "Keyboard driving deck for simulated vehicles",
	Long: `drivedeck turns keyboard input into smoothed vehicle control
vectors. Sessions can be driven live, recorded to disk, and played
back tick for tick.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if initDeps != nil {
			return initDeps(configDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.drivedeck)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
