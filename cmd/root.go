package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yuchen/eyebright/internal/config"
	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
)

var rootCmd = &cobra.Command{
	Use:   "eyebright",
	Short: "Daily vision-care training for kids",
	Long:  "Eyebright — a terminal trainer that walks kids through their morning and evening eye-care routine: math drills, reading, and outdoor rest timers.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: XDG config dir)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides EYEBRIGHT_DB env var)")
	rootCmd.PersistentFlags().String("manifest", "", "Path to the task manifest JSON")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(parentCmd)
	rootCmd.AddCommand(pinCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the config file named by --config, or the default
// location when the flag is unset.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return config.DefaultConfig(), err
		}
	}
	return config.Load(path)
}

// resolveDBPath returns the database path: --db flag first, then the
// config file, then EYEBRIGHT_DB / the XDG default.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, progress.EnsureDir(p)
	}
	if cfg.Data.DB != "" {
		return cfg.Data.DB, progress.EnsureDir(cfg.Data.DB)
	}
	return progress.DefaultDBPath()
}

// openStore resolves the DB path and opens the progress store.
func openStore(cmd *cobra.Command) (*progress.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return openStoreWith(cmd, cfg)
}

func openStoreWith(cmd *cobra.Command, cfg config.Config) (*progress.Store, error) {
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := progress.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open progress store: %w", err)
	}
	return st, nil
}

// loadManifest resolves the manifest path (--manifest flag, config file,
// XDG default) and loads it. When no manifest file exists at all, the
// built-in task set is used so a fresh install works immediately.
func loadManifest(cmd *cobra.Command, cfg config.Config) (*manifest.Manifest, error) {
	path, _ := cmd.Flags().GetString("manifest")
	if path == "" {
		path = cfg.Data.Manifest
	}
	if path == "" {
		var err error
		path, err = config.DefaultManifestPath()
		if err != nil {
			return nil, err
		}
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return manifest.Default()
		}
	}
	return manifest.Load(path)
}
