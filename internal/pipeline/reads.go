package pipeline

import (
	"github.com/rs/zerolog"

	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
)

// The read helpers load a prerequisite snapshot. A missing file surfaces
// as a stage-sequencing error (errors.ErrNotFound) and aborts the stage;
// an unparseable row is reported and skipped.

func readConfigurations(store *snapshot.Store, log *zerolog.Logger) ([]ConfigurationRow, error) {
	records, err := store.ReadTable(snapshot.ConfigurationsFile)
	if err != nil {
		return nil, err
	}

	rows := make([]ConfigurationRow, 0, len(records))
	for _, record := range records {
		row, err := configurationFromRecord(record)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping unparseable configuration row")
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func readContacts(store *snapshot.Store, log *zerolog.Logger) ([]psa.ContactRecord, error) {
	records, err := store.ReadTable(snapshot.ContactsFile)
	if err != nil {
		return nil, err
	}

	contacts := make([]psa.ContactRecord, 0, len(records))
	for _, record := range records {
		contact, err := contactFromRecord(record)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping unparseable contact row")
			continue
		}
		contacts = append(contacts, contact)
	}
	return contacts, nil
}

func readGuesses(store *snapshot.Store, log *zerolog.Logger) (map[int]GuessRow, error) {
	records, err := store.ReadTable(snapshot.GuessesFile)
	if err != nil {
		return nil, err
	}

	guesses := make(map[int]GuessRow, len(records))
	for _, record := range records {
		row, err := guessFromRecord(record)
		if err != nil {
			log.Warn().Err(err).Msg("Skipping unparseable guess row")
			continue
		}
		guesses[row.ConfigurationID] = row
	}
	return guesses, nil
}
