package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregate quiz statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServices(cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		stats, err := s.attempts.Stats(cmd.Context())
		if err != nil {
			return err
		}
		if stats.Count == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		fmt.Printf("Attempts:      %d\n", stats.Count)
		fmt.Printf("Average score: %.1f%%\n", stats.AverageScore)
		fmt.Printf("Latest score:  %d%%\n", stats.LatestScore)
		fmt.Printf("Last attempt:  %s\n", stats.LatestAt.Local().Format("2006-01-02 15:04"))
		return nil
	},
}
