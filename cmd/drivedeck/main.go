// Command drivedeck is a keyboard driving deck for simulated vehicles.
// It wires the storage, config and catalog adapters into the core
// services and hands them to the CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	fileconfig "github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driven/config/file"
	filestorage "github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driven/storage/file"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driven/storage/sqlite"
	"github.com/drivedeck-labs/drivedeck-cli/internal/adapters/driving/cli"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/domain"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driven"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/ports/driving"
	"github.com/drivedeck-labs/drivedeck-cli/internal/core/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "drivedeck: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var closeCatalog func() error

	// Deps are built after flag parsing so --config-dir takes effect.
	cli.SetInitializer(func(configDir string) error {
		baseDir := configDir
		if baseDir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("resolving home directory: %w", err)
			}
			baseDir = filepath.Join(home, ".drivedeck")
		}

		configStore, err := fileconfig.NewConfigStore(baseDir)
		if err != nil {
			return fmt.Errorf("opening config: %w", err)
		}

		catalogDB, err := sqlite.NewStore(filepath.Join(baseDir, "data"))
		if err != nil {
			return fmt.Errorf("opening catalog: %w", err)
		}
		closeCatalog = catalogDB.Close

		settingsService := services.NewSettingsService(configStore, baseDir)
		sessionStore := filestorage.NewStore()

		cli.SetDeps(cli.Deps{
			Catalog:  services.NewCatalogService(catalogDB.SessionIndex()),
			Settings: settingsService,
			Store:    sessionStore,
			NewWatcher: func(dir string) (driven.SessionWatcher, error) {
				return filestorage.NewWatcher(dir)
			},
		})
		cli.SetControllerFactory(func(ctx context.Context, cfg domain.SessionConfig) (driving.Controller, error) {
			settings, err := settingsService.Get()
			if err != nil {
				return nil, err
			}
			return services.NewController(ctx, cfg, services.ControllerOptions{
				Store:          sessionStore,
				StrictPlayback: settings.StrictPlayback,
			})
		})
		return nil
	})

	err := cli.Execute()
	if closeCatalog != nil {
		closeCatalog() //nolint:errcheck // best-effort close on exit
	}
	return err
}
