package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the current career profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := buildServices(cmd, true)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := s.profiles.Current(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Industry:    %s\n", user.Industry)
		fmt.Printf("Experience:  %d years\n", user.Experience)
		fmt.Printf("Skills:      %s\n", strings.Join(user.Skills, ", "))
		if user.Bio != "" {
			fmt.Printf("Bio:         %s\n", user.Bio)
		}
		return nil
	},
}
