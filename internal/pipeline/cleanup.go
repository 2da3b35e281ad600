package pipeline

import (
	"context"

	"github.com/agentstation/contactsync/internal/snapshot"
	"github.com/agentstation/contactsync/pkg/logging"
)

// Cleanup removes all intermediate artifacts. Snapshots are ephemeral
// working storage, not a durable output.
type Cleanup struct {
	Store *snapshot.Store
}

// Name implements Stage.
func (s *Cleanup) Name() string { return "cleanup" }

// Run implements Stage.
func (s *Cleanup) Run(ctx context.Context) error {
	logging.Ctx(ctx).Debug().Str("dir", s.Store.Dir()).Msg("Removing intermediate artifacts")
	return s.Store.Clean()
}
