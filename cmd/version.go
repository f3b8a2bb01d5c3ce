package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/baguage/qualtrics-go/internal/version"
)

//nolint:gochecknoglobals // Cobra commands are package-level by convention.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, _ []string) {
		if short, _ := cmd.Flags().GetBool("short"); short {
			fmt.Println(version.Short())
			return
		}

		fmt.Println(version.Full())
	},
}

//nolint:gochecknoinits // Cobra requires the init function to set up commands.
func init() {
	versionCmd.Flags().Bool("short", false, "print the bare version number only.")

	rootCmd.AddCommand(versionCmd)
}
