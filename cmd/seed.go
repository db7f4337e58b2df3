package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"civicpulse/config"
	"civicpulse/fixtures"
	"civicpulse/logger"
	"civicpulse/store"
)

func newSeedCommand() *cobra.Command {
	var (
		dir    string
		dryRun bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the fixture records into MongoDB",
		Long:  `Validate the fixture records (embedded, or from --fixtures) and replace the complaints, workers and projects collections with them.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger.Init(cfg.LogLevel, cfg.LogFormat)
			if dir == "" {
				dir = cfg.FixturesDir
			}

			ds, err := fixtures.LoadFrom(dir)
			if err != nil {
				return err
			}
			slog.Info("fixtures valid", "complaints", len(ds.Complaints), "workers", len(ds.Workers), "projects", len(ds.Projects))
			if dryRun {
				return nil
			}

			ctx := cmd.Context()
			db, err := config.ConnectDB(ctx, cfg)
			if err != nil {
				return fmt.Errorf("failed to connect to MongoDB: %w", err)
			}
			defer config.DisconnectDB(db)

			return store.Seed(ctx, db, ds)
		},
	}
	cmd.Flags().StringVarP(&dir, "fixtures", "f", "", "Directory holding complaints.yaml, workers.yaml and projects.yaml (default: embedded)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Validate the fixtures without touching MongoDB")
	return cmd
}
