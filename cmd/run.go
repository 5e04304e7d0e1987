package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuchen/eyebright/internal/app"
	"github.com/yuchen/eyebright/internal/manifest"
	"github.com/yuchen/eyebright/internal/progress"
	"github.com/yuchen/eyebright/internal/tracker"
)

// runApp opens the store, loads the manifest, and launches the TUI at the
// home screen.
func runApp(cmd *cobra.Command) error {
	m, st, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return app.Run(m, st, tracker.New(st))
}

// runSession drops straight into a training session. period "" plays the
// full-day deck (morning then evening) without session tracking.
func runSession(cmd *cobra.Command, period progress.Period) error {
	m, st, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer st.Close()
	return app.RunSession(m, period, st, tracker.New(st))
}

func buildDeps(cmd *cobra.Command) (*manifest.Manifest, *progress.Store, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}

	m, err := loadManifest(cmd, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("load manifest: %w", err)
	}

	st, err := openStoreWith(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return m, st, nil
}
