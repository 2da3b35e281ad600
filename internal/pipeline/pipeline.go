// Package pipeline implements the five-stage reconciliation run: fetch
// configurations, fetch contacts, guess owners, reconcile, cleanup. Stages
// run strictly in order; each stage reads its input from the snapshot
// store written by the previous one, which makes the snapshots the
// crash-recovery boundary between stages.
package pipeline

import (
	"context"

	"github.com/agentstation/contactsync/internal/psa"
	"github.com/agentstation/contactsync/internal/snapshot"
	"github.com/agentstation/contactsync/pkg/logging"
)

// Stage is one ordered step of the pipeline. A stage returning an error
// aborts the run; per-record problems inside a stage are reported and
// skipped instead.
type Stage interface {
	Name() string
	Run(ctx context.Context) error
}

// Pipeline runs stages sequentially.
type Pipeline struct {
	stages []Stage
}

// New assembles the full five-stage pipeline for one company.
func New(client *psa.Client, store *snapshot.Store, company string) *Pipeline {
	return &Pipeline{stages: []Stage{
		&FetchConfigurations{Client: client, Store: store, Company: company},
		&FetchContacts{Client: client, Store: store, Company: company},
		&GuessOwners{Store: store},
		&Reconcile{Client: client, Store: store},
		&Cleanup{Store: store},
	}}
}

// NewStages builds a pipeline from an explicit stage list, for stage-wise
// CLI entry points.
func NewStages(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages}
}

// Run executes the stages in order, aborting on the first stage error.
func (p *Pipeline) Run(ctx context.Context) error {
	for _, stage := range p.stages {
		stageCtx := logging.WithStage(ctx, stage.Name())
		logging.Ctx(stageCtx).Info().Msg("Stage starting")

		if err := stage.Run(stageCtx); err != nil {
			logging.Ctx(stageCtx).Error().Err(err).Msg("Stage failed")
			return err
		}

		logging.Ctx(stageCtx).Info().Msg("Stage complete")
	}
	return nil
}
