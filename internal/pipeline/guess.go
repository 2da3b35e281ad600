package pipeline

import (
	"context"
	"strconv"

	"github.com/agentstation/contactsync/internal/guess"
	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
	"github.com/agentstation/contactsync/pkg/logging"
)

// GuessOwners derives a name guess for every snapshotted configuration and
// writes the enriched and simplified projections plus the guess results.
// It requires both fetch snapshots to exist.
type GuessOwners struct {
	Store *snapshot.Store
}

// Name implements Stage.
func (s *GuessOwners) Name() string { return "guess-owners" }

// Run implements Stage.
func (s *GuessOwners) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	configurations, err := readConfigurations(s.Store, log)
	if err != nil {
		return err
	}
	contacts, err := readContacts(s.Store, log)
	if err != nil {
		return err
	}

	dir := guess.NewDirectory(contacts)
	log.Debug().Int("contacts", dir.Len()).Msg("Indexed contact directory")

	enriched := make([][]string, 0, len(configurations))
	simplified := make([][]string, 0, len(configurations))
	guesses := make([][]string, 0, len(configurations))
	guessed := 0

	for _, conf := range configurations {
		g := guess.For(conf.LastLoginName, conf.ContactName, dir)
		if g.FullName != "" {
			guessed++
		}
		guesses = append(guesses, guessFields(conf.ID, g))
		enriched = append(enriched, enrichedFields(conf, dir))
		simplified = append(simplified, []string{
			strconv.Itoa(conf.ID),
			conf.Name,
			conf.LastLoginName,
			strconv.FormatBool(conf.Active),
			conf.ContactName,
		})
	}

	if err := s.Store.WriteTable(snapshot.EnrichedFile, enrichedHeader, enriched); err != nil {
		return err
	}
	if err := s.Store.WriteTable(snapshot.SimplifiedFile, simplifiedHeader, simplified); err != nil {
		return err
	}
	if err := s.Store.WriteTable(snapshot.GuessesFile, guessesHeader, guesses); err != nil {
		return err
	}

	log.Info().
		Int("configurations", len(configurations)).
		Int("guessed", guessed).
		Msg("Name guessing complete")
	return nil
}

// enrichedFields joins a configuration with its recorded contact's
// directory fields, when that contact resolves.
func enrichedFields(conf ConfigurationRow, dir *guess.Directory) []string {
	var recorded psa.ContactRecord
	if conf.ContactName != "" {
		recorded, _ = dir.Resolve(conf.ContactName)
	}
	return []string{
		strconv.Itoa(conf.ID),
		conf.Name,
		conf.LastLoginName,
		strconv.FormatBool(conf.Active),
		conf.ContactName,
		recorded.Title,
		recorded.DefaultEmail,
		recorded.DefaultPhone,
	}
}
