package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/contactsync/internal/pipeline"
)

// guessCmd runs the name-guessing stage against existing snapshots.
var guessCmd = &cobra.Command{
	Use:   "guess",
	Short: "Guess configuration owners from login names",
	Long: `Guess derives a candidate owner name from each snapshotted
configuration's last login name and checks it against the snapshotted
contact directory.

Both fetch snapshots must already exist; run 'contactsync fetch' first.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, _, store, err := dependencies()
		if err != nil {
			return err
		}
		return pipeline.NewStages(&pipeline.GuessOwners{Store: store}).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(guessCmd)
}
