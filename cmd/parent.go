package cmd

import (
	"github.com/spf13/cobra"

	"github.com/yuchen/eyebright/internal/app"
	"github.com/yuchen/eyebright/internal/screens/parent"
)

var parentCmd = &cobra.Command{
	Use:   "parent",
	Short: "Open the parent dashboard",
	Long:  "Open the PIN-gated parent dashboard directly, without going through the home menu.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		return app.RunScreen(st, parent.New(st))
	},
}
