package cmd

import (
	"fmt"
	"time"

	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent drills",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		adapter := progress.NewAdapter(st, nil, appLogger())
		entries := adapter.LoadHistory(cmd.Context())
		if len(entries) == 0 {
			fmt.Println("No drills yet.")
			return nil
		}
		if historyLimit > 0 && len(entries) > historyLimit {
			entries = entries[:historyLimit]
		}

		for _, e := range entries {
			dateStr := e.Date
			if t, err := time.Parse(time.RFC3339, e.Date); err == nil {
				dateStr = t.Format("Jan 02, 2006 15:04")
			}
			fmt.Printf("%s  %-9s %d:%02d  %d/%d correct  +%d XP\n",
				dateStr, e.Mode,
				e.TimeSeconds/60, e.TimeSeconds%60,
				e.CorrectAnswers, e.TotalAnswers, e.XPEarned)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Maximum number of drills to show")
}
