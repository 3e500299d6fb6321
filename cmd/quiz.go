package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/app"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Jump straight into a new quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		count, _ := cmd.Flags().GetInt("questions")

		s, err := buildServices(cmd, false)
		if err != nil {
			return err
		}
		defer s.Close()

		if !s.aiReady {
			return fmt.Errorf("no LLM provider configured")
		}

		return app.Run(app.Options{
			Profiles:      s.profiles,
			Attempts:      s.attempts,
			Insights:      s.insights,
			Resumes:       s.resumes,
			AIReady:       true,
			StartQuiz:     true,
			QuizQuestions: count,
		})
	},
}

func init() {
	quizCmd.Flags().IntP("questions", "n", 0, "Number of questions (default from config)")
}
