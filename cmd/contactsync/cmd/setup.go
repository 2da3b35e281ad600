package cmd

import (
	"github.com/agentstation/contactsync/internal/config"
	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
)

// dependencies builds the validated run configuration, the API client, and
// the snapshot store shared by the pipeline commands. Configuration
// validation happens here, before any network activity.
func dependencies() (*config.Config, *psa.Client, *snapshot.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	cfg.WarnUnknownRegion()

	return cfg, psa.NewClient(cfg), snapshot.New(cfg.WorkDir), nil
}
