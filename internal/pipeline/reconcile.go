package pipeline

import (
	"context"
	"fmt"

	"github.com/agentstation/contactsync/internal/guess"
	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
	"github.com/agentstation/contactsync/pkg/logging"
)

// Outcome is the terminal state of one configuration's reconciliation
// attempt. There are no retries and no rollback.
type Outcome string

// Terminal states of the per-record state machine
// Selected → LiveChecked → {Skipped | ContactResolved → Updated | ContactResolved → Failed}.
const (
	OutcomeSkipped Outcome = "skipped"
	OutcomeUpdated Outcome = "updated"
	OutcomeFailed  Outcome = "failed"
)

// Result records the terminal state of one reconciliation attempt.
type Result struct {
	ConfigurationID int
	Outcome         Outcome
	Reason          string
}

// Reconcile overwrites the contact association of every selected
// configuration: guess exists in the directory, differs from the recorded
// contact, and the record is active. Liveness is re-checked against a
// fresh copy immediately before writing, since the driving snapshot may be
// stale. Per-record failures are reported and never abort the stage.
type Reconcile struct {
	Client *psa.Client
	Store  *snapshot.Store

	// Results of the last run, in selection order.
	Results []Result
}

// Name implements Stage.
func (s *Reconcile) Name() string { return "reconcile" }

// Run implements Stage.
func (s *Reconcile) Run(ctx context.Context) error {
	log := logging.Ctx(ctx)

	configurations, err := readConfigurations(s.Store, log)
	if err != nil {
		return err
	}
	contacts, err := readContacts(s.Store, log)
	if err != nil {
		return err
	}
	guesses, err := readGuesses(s.Store, log)
	if err != nil {
		return err
	}

	dir := guess.NewDirectory(contacts)

	s.Results = s.Results[:0]
	counts := map[Outcome]int{}

	for _, conf := range configurations {
		g, ok := guesses[conf.ID]
		if !ok {
			continue
		}

		// Selection invariant: only update when the guess is a verifiably
		// real contact, differs from the recorded one, and the record is
		// active in the snapshot that drives selection.
		if !g.ExistsInDirectory || g.MatchesRecordedContact || !conf.Active {
			continue
		}

		result := s.reconcileOne(ctx, conf, g, dir)
		s.Results = append(s.Results, result)
		counts[result.Outcome]++

		event := log.Info()
		if result.Outcome == OutcomeFailed {
			event = log.Warn()
		}
		event.
			Int("configuration_id", result.ConfigurationID).
			Str("outcome", string(result.Outcome)).
			Str("reason", result.Reason).
			Msg("Reconciled configuration")
	}

	log.Info().
		Int("selected", len(s.Results)).
		Int("updated", counts[OutcomeUpdated]).
		Int("skipped", counts[OutcomeSkipped]).
		Int("failed", counts[OutcomeFailed]).
		Msg("Reconciliation complete")
	return nil
}

// auditFile names a pre/post-update audit artifact.
func auditFile(id int, phase string) string {
	return fmt.Sprintf("configuration_%d_%s.json", id, phase)
}

// reconcileOne drives a single selected configuration to a terminal state.
func (s *Reconcile) reconcileOne(ctx context.Context, conf ConfigurationRow, g GuessRow, dir *guess.Directory) Result {
	// The directory may have changed between stages; a miss here is
	// reported but non-fatal.
	contact, ok := dir.Resolve(g.FullName)
	if !ok {
		return Result{conf.ID, OutcomeSkipped, "guessed contact no longer in directory"}
	}

	// Re-check liveness against a fresh copy: the snapshot that selected
	// this record may be stale.
	live, err := s.Client.GetConfiguration(ctx, conf.ID)
	if err != nil {
		return Result{conf.ID, OutcomeFailed, "live fetch failed: " + err.Error()}
	}
	if !live.ActiveFlag {
		return Result{conf.ID, OutcomeSkipped, "inactive on live copy"}
	}

	// Audit artifacts bracket the write for forensic replay.
	if err := s.Store.WriteJSON(auditFile(conf.ID, "before"), live); err != nil {
		return Result{conf.ID, OutcomeFailed, "audit write failed: " + err.Error()}
	}

	ref := psa.ContactRef{
		ID:   contact.ID,
		Name: contact.FullName(),
		Href: s.Client.ContactHref(contact.ID),
	}
	if err := live.SetContact(ref); err != nil {
		return Result{conf.ID, OutcomeFailed, "contact replacement failed: " + err.Error()}
	}

	updated, err := s.Client.UpdateConfiguration(ctx, live)
	if err != nil {
		return Result{conf.ID, OutcomeFailed, "update failed: " + err.Error()}
	}

	if err := s.Store.WriteJSON(auditFile(conf.ID, "after"), updated); err != nil {
		return Result{conf.ID, OutcomeFailed, "audit write failed: " + err.Error()}
	}

	return Result{conf.ID, OutcomeUpdated, "contact set to " + ref.Name}
}
