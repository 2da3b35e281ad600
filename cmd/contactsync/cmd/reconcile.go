package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/contactsync/internal/pipeline"
)

// reconcileCmd runs the write-back stage against existing snapshots.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Push corrected contact associations to the PSA",
	Long: `Reconcile selects every snapshotted configuration whose guessed owner
is a real directory contact differing from the recorded one, re-checks the
record's liveness against the API, and resubmits it with the corrected
contact association.

The guess snapshot must already exist; run 'contactsync guess' first.
Snapshots are left in place; run 'contactsync cleanup' to remove them.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, client, store, err := dependencies()
		if err != nil {
			return err
		}
		return pipeline.NewStages(&pipeline.Reconcile{Client: client, Store: store}).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}
