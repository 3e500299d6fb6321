package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var insightsCmd = &cobra.Command{
	Use:   "insights",
	Short: "Show AI market insights for your industry",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServices(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		report, err := s.insights.Get(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Industry: %s\n", report.Industry)
		fmt.Printf("Updated:  %s (next refresh %s)\n",
			report.LastUpdated.Local().Format("2006-01-02"),
			report.NextUpdate.Local().Format("2006-01-02"))
		if report.Stale {
			fmt.Println("Note: refresh failed, showing cached data.")
		}
		fmt.Println()

		in := report.Insight
		fmt.Printf("Outlook:  %s   Demand: %s   Growth: %.1f%%\n\n",
			in.MarketOutlook, in.DemandLevel, in.GrowthRate)

		fmt.Println("Salary ranges (USD)")
		fmt.Println(strings.Repeat("-", 64))
		for _, sr := range in.SalaryRanges {
			fmt.Printf("%-28s  %8.0f - %8.0f  median %8.0f  %s\n",
				sr.Role, sr.Min, sr.Max, sr.Median, sr.Location)
		}
		fmt.Println()

		fmt.Println("Top skills:        " + strings.Join(in.TopSkills, ", "))
		fmt.Println("Recommended:       " + strings.Join(in.RecommendedSkills, ", "))
		fmt.Println()
		fmt.Println("Key trends")
		for _, t := range in.KeyTrends {
			fmt.Println("  - " + t)
		}
		return nil
	},
}
