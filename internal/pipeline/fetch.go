package pipeline

import (
	"context"
	"fmt"

	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
	"github.com/agentstation/contactsync/pkg/logging"
)

// FetchConfigurations pages through the company's configuration items,
// fetches the full detail of each, and snapshots the result. A page
// failure aborts the stage after persisting whatever was gathered; a
// detail failure only skips that record.
type FetchConfigurations struct {
	Client  *psa.Client
	Store   *snapshot.Store
	Company string
}

// Name implements Stage.
func (s *FetchConfigurations) Name() string { return "fetch-configurations" }

// Run implements Stage.
func (s *FetchConfigurations) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	summaries, listErr := s.Client.ListConfigurations(ctx, s.Company)
	log.Info().Int("count", len(summaries)).Msg("Listed configurations")

	details := make([]*psa.Configuration, 0, len(summaries))
	for i := range summaries {
		id := summaries[i].ID

		detail, err := s.Client.GetConfiguration(ctx, id)
		if err != nil {
			log.Warn().Err(err).Int("configuration_id", id).Msg("Skipping configuration: detail fetch failed")
			continue
		}

		if err := s.Store.WriteJSON(detailFile(id), detail); err != nil {
			return err
		}
		details = append(details, detail)
	}

	rows := make([][]string, 0, len(details))
	for _, detail := range details {
		rows = append(rows, configurationToRow(detail).fields())
	}
	if err := s.Store.WriteTable(snapshot.ConfigurationsFile, configurationsHeader, rows); err != nil {
		return err
	}

	// Surface the page failure only after persisting partial progress.
	return listErr
}

// FetchContacts pages through the company's contact directory and
// snapshots the normalized projection.
type FetchContacts struct {
	Client  *psa.Client
	Store   *snapshot.Store
	Company string
}

// Name implements Stage.
func (s *FetchContacts) Name() string { return "fetch-contacts" }

// Run implements Stage.
func (s *FetchContacts) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	contacts, listErr := s.Client.ListContacts(ctx, s.Company)
	log.Info().Int("count", len(contacts)).Msg("Listed contacts")

	rows := make([][]string, 0, len(contacts))
	for i := range contacts {
		rows = append(rows, contactFields(contacts[i].Record()))
	}
	if err := s.Store.WriteTable(snapshot.ContactsFile, contactsHeader, rows); err != nil {
		return err
	}

	return listErr
}

// detailFile names the per-record JSON detail artifact.
func detailFile(id int) string {
	return fmt.Sprintf("configuration_%d.json", id)
}
