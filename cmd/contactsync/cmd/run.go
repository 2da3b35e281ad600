package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/contactsync/internal/pipeline"
)

var keepSnapshots bool

// runCmd executes the full five-stage reconciliation pipeline.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the full reconciliation pipeline",
	Long: `Run executes all five pipeline stages in order: fetch configurations,
fetch contacts, guess owners, reconcile, and cleanup.

With --keep-snapshots the cleanup stage is skipped, leaving the
intermediate snapshot files in the working directory for inspection or
stage-wise reruns.`,
	Example: `  contactsync run
  contactsync run --keep-snapshots`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, store, err := dependencies()
		if err != nil {
			return err
		}

		if keepSnapshots {
			p := pipeline.NewStages(
				&pipeline.FetchConfigurations{Client: client, Store: store, Company: cfg.Company},
				&pipeline.FetchContacts{Client: client, Store: store, Company: cfg.Company},
				&pipeline.GuessOwners{Store: store},
				&pipeline.Reconcile{Client: client, Store: store},
			)
			return p.Run(cmd.Context())
		}

		return pipeline.New(client, store, cfg.Company).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVar(&keepSnapshots, "keep-snapshots", false, "skip the cleanup stage")
}
