package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yuchen/eyebright/internal/progress"
)

var playCmd = &cobra.Command{
	Use:       "play [morning|evening|all]",
	Short:     "Start a training session",
	Long:      "Start a training session for the given period, skipping the home menu. \"all\" plays the morning and evening decks back to back without session tracking.",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"morning", "evening", "all"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "morning", "evening":
			return runSession(cmd, progress.Period(args[0]))
		case "all":
			return runSession(cmd, "")
		}
		return fmt.Errorf("unknown period %q (want morning, evening, or all)", args[0])
	},
}
