package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"drift/internal/config"
	"drift/internal/store"
)

func initCmd() *cobra.Command {
	var driver string
	var dsn string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default drift.yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(configPath, driver, dsn)
		},
	}
	cmd.Flags().StringVar(&driver, "driver", store.DriverSQLite, "Storage driver: memory, sqlite or postgres")
	cmd.Flags().StringVar(&dsn, "dsn", "", "Storage DSN (defaults to sqlite://./drift.db for sqlite)")
	return cmd
}

func runInit(path, driver, dsn string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}

	cfg := config.Default()
	cfg.Storage.Driver = driver
	if dsn != "" || driver != store.DriverSQLite {
		cfg.Storage.DSN = dsn
	}

	contents, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, contents, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	if _, err := config.LoadConfig(path); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}
