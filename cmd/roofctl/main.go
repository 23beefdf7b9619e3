// cmd/roofctl/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/dangerclosesec/roofdesk/internal/config"
	"github.com/dangerclosesec/roofdesk/internal/fixtures"
	"github.com/dangerclosesec/roofdesk/internal/logging"
	"github.com/dangerclosesec/roofdesk/internal/repository"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:           "roofctl",
		Short:         "roofctl manages roofdesk data",
		Long:          `roofctl loads the demo dataset into the configured database and prints it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	var timeout time.Duration
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the demo dataset into the database",
		Long:  `Migrate the configured database and import the demo dataset when it holds no organizations or users yet.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			level := cfg.Log.Level
			if verbose {
				level = "debug"
			}
			logger := logging.New(cmd.ErrOrStderr(), level, cfg.Log.Format)

			db, err := repository.Open(cfg)
			if err != nil {
				return fmt.Errorf("setting up database: %w", err)
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			store := repository.NewGormStore(db, repository.NewClock(repository.Precision(cfg.Database.Driver)))
			if err := store.Migrate(ctx); err != nil {
				return err
			}

			seeded, err := repository.Seed(ctx, store, fixtures.Dataset())
			if err != nil {
				return fmt.Errorf("seeding database: %w", err)
			}
			if !seeded {
				logger.Info("Database already contains data, nothing imported")
				fmt.Fprintln(cmd.OutOrStdout(), "Database already contains data")
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Demo data imported")
			return nil
		},
	}
	seedCmd.Flags().DurationVar(&timeout, "timeout", 2*time.Minute, "Maximum time to spend seeding")

	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the demo dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return fixtures.Summarize(cmd.OutOrStdout(), fixtures.Dataset())
		},
	}

	rootCmd.AddCommand(seedCmd, printCmd)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
