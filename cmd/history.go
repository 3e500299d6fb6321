package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past quiz attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Flags().GetBool("verbose")

		s, err := buildServices(cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		list, err := s.attempts.ListAttempts(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			fmt.Println("No attempts yet.")
			return nil
		}

		fmt.Printf("%-19s  %-10s  %-6s  %s\n", "Date", "Category", "Score", "Correct")
		fmt.Println(strings.Repeat("-", 52))
		for _, a := range list {
			correct := 0
			for _, r := range a.Results {
				if r.IsCorrect {
					correct++
				}
			}
			fmt.Printf("%-19s  %-10s  %5d%%  %d/%d\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.Category, a.QuizScore, correct, len(a.Results))

			if verbose {
				for i, r := range a.Results {
					mark := "+"
					if !r.IsCorrect {
						mark = "x"
					}
					fmt.Printf("    %s Q%d: %s\n", mark, i+1, r.Question)
					if !r.IsCorrect {
						fmt.Printf("       answered %q, correct %q\n", r.UserAnswer, r.Answer)
					}
				}
				if a.ImprovementTip != "" {
					fmt.Printf("    tip: %s\n", a.ImprovementTip)
				}
				fmt.Println()
			}
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolP("verbose", "v", false, "Show per-question results and tips")
}
