package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var pinCmd = &cobra.Command{
	Use:   "pin <current> <new>",
	Short: "Change the parent PIN",
	Long:  "Change the parent dashboard PIN. The current PIN is required; a fresh install uses 1234.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		if args[0] != st.PIN() {
			return errors.New("current PIN is wrong")
		}
		if err := st.SetPIN(args[1]); err != nil {
			return err
		}
		fmt.Println("PIN updated.")
		return nil
	},
}
