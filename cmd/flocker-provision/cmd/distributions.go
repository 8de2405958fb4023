package cmd

import (
	"github.com/spf13/cobra"

	"github.com/isabella232/flocker/internal/repository"
)

var distributionsCmd = &cobra.Command{
	Use:   "distributions",
	Short: "List supported distribution identifiers",
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range repository.Supported() {
			info("%s  (%s)", name, repository.FamilyOf(name))
		}
	},
}

func init() {
	rootCmd.AddCommand(distributionsCmd)
}
