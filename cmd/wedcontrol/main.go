// Command wedcontrol serves the Wed.Control workspace and manages it from the
// command line.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmynk/wedcontrol/internal/config"
	"github.com/mmynk/wedcontrol/internal/models"
	"github.com/mmynk/wedcontrol/internal/storage"
	"github.com/mmynk/wedcontrol/internal/storage/sqlite"
	"github.com/mmynk/wedcontrol/pkg/logging"
)

// options are the persistent flags shared by every command.
type options struct {
	configFile string
	envFile    string
	dbPath     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "wedcontrol",
		Short: "Wed.Control - wedding planning workspace",
		Long: `Wed.Control keeps wedding projects with their checklist, budget,
guest list and day schedule, and shares them with couples by link.

Examples:
  # Start the server
  wedcontrol serve --config wedcontrol.yaml

  # List archived projects
  wedcontrol projects list --archived

  # Export a budget as a spreadsheet
  wedcontrol export <project-id> budget --format xlsx --out budget.xlsx`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "config file path (optional)")
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with WEDCONTROL_* variables (optional)")
	root.PersistentFlags().StringVar(&opts.dbPath, "db", "", "database path (overrides config)")

	root.AddCommand(
		newServeCmd(opts),
		newProjectsCmd(opts),
		newExportCmd(opts),
		newTeamCmd(opts),
	)
	return root
}

// loadConfig resolves the configuration and sets up logging from it.
func (o *options) loadConfig() (*config.Config, error) {
	if err := config.LoadEnvFile(o.envFile); err != nil {
		return nil, err
	}
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))
	return cfg, nil
}

// openStore opens the database and loads the workspace. The returned close
// function releases the database.
func (o *options) openStore(ctx context.Context, cfg *config.Config) (*storage.ProjectStore, func() error, error) {
	kv, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	store := storage.NewProjectStore(kv)
	store.Load(ctx)

	if cfg.OwnerName != "" && store.Profile() == models.DefaultProfile() {
		profile := models.DefaultProfile()
		profile.Name = cfg.OwnerName
		store.SetProfile(ctx, profile)
	}
	return store, kv.Close, nil
}
