package cmd

import (
	"github.com/spf13/cobra"

	"github.com/agentstation/contactsync/internal/pipeline"
)

// fetchCmd represents the parent fetch command.
var fetchCmd = &cobra.Command{
	Use:   "fetch [resource]",
	Short: "Fetch records from the PSA API into snapshots",
	Long: `Fetch retrieves records from the PSA API and writes them to the
snapshot working directory, one stage at a time.

Running the stages individually is useful after an interrupted run: later
stages resume from the snapshots already on disk.`,
	Example: `  contactsync fetch configurations
  contactsync fetch contacts`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// fetchConfigurationsCmd runs the configuration fetch stage only.
var fetchConfigurationsCmd = &cobra.Command{
	Use:     "configurations",
	Aliases: []string{"configs"},
	Short:   "Fetch configuration items and their detail records",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, store, err := dependencies()
		if err != nil {
			return err
		}
		stage := &pipeline.FetchConfigurations{Client: client, Store: store, Company: cfg.Company}
		return pipeline.NewStages(stage).Run(cmd.Context())
	},
}

// fetchContactsCmd runs the contact fetch stage only.
var fetchContactsCmd = &cobra.Command{
	Use:   "contacts",
	Short: "Fetch the company's contact directory",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, client, store, err := dependencies()
		if err != nil {
			return err
		}
		stage := &pipeline.FetchContacts{Client: client, Store: store, Company: cfg.Company}
		return pipeline.NewStages(stage).Run(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	fetchCmd.AddCommand(fetchConfigurationsCmd)
	fetchCmd.AddCommand(fetchContactsCmd)
}
