package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is stamped by the release build via -ldflags.
var version = "(devel)"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the prepdeck version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("prepdeck %s\n", version)
	},
}
