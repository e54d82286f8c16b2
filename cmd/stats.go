package cmd

import (
	"fmt"

	"github.com/abhisek/sworddrill/internal/progress"
	"github.com/abhisek/sworddrill/internal/scoring"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		adapter := progress.NewAdapter(st, nil, appLogger())
		p := adapter.LoadProgress(cmd.Context())

		accuracy := 0
		if p.TotalAnswers > 0 {
			accuracy = p.CorrectAnswers * 100 / p.TotalAnswers
		}

		fmt.Printf("Level:        %d (%d/%d XP)\n", p.Level, p.XP%scoring.XPPerLevel, scoring.XPPerLevel)
		fmt.Printf("Streak:       %d day(s)\n", p.Streak)
		fmt.Printf("Drills:       %d\n", p.TotalDrills)
		fmt.Printf("Accuracy:     %d%% (%d/%d)\n", accuracy, p.CorrectAnswers, p.TotalAnswers)
		if p.FastestTime > 0 {
			fmt.Printf("Fastest:      %d:%02d\n", p.FastestTime/60, p.FastestTime%60)
			fmt.Printf("Average:      %d:%02d\n", p.AverageTime/60, p.AverageTime%60)
		}
		fmt.Printf("Achievements: %d/%d\n", len(p.Achievements), len(scoring.Achievements))
		return nil
	},
}
