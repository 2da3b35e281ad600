package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/contactsync/internal/pipeline"
)

// cleanupCmd removes the snapshot working directory.
var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Remove all intermediate snapshot artifacts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _, store, err := dependencies()
		if err != nil {
			return err
		}
		return pipeline.NewStages(&pipeline.Cleanup{Store: store}).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
}
