package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yuchen/eyebright/internal/progress"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show training statistics",
	Long:  "Print streak, today's stars, and the last week of training to stdout.",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		now := time.Now()
		day := progress.DayKey(now)

		fmt.Printf("Streak:       %d day(s)\n", st.ComputeStreak(now, progress.DefaultStreakLookback))
		fmt.Printf("Stars today:  %d\n", st.StarsForDate(day))
		for _, p := range progress.Periods {
			mark := "–"
			if st.IsSessionDone(day, p) {
				mark = "done"
			}
			fmt.Printf("%-13s %s\n", string(p)+":", mark)
		}

		fmt.Println("\nLast 7 days:")
		for _, hd := range st.History(now, 7) {
			stars := 0
			if hd.Record != nil {
				stars = hd.Record.Stars()
			}
			bar := strings.Repeat("*", stars)
			if bar == "" {
				bar = "."
			}
			fmt.Printf("  %s  %s\n", hd.Day, bar)
		}
		return nil
	},
}
