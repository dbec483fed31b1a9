// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/piggybank/backend/internal/domain/entity"
)

// LedgerRepository defines the persistence contract for ledger snapshots.
// The store writes a full snapshot after every committed mutation; loading
// is only done once, at session start.
type LedgerRepository interface {
	// Load retrieves the persisted ledger snapshot. Implementations return
	// an error for infrastructure failures; an absent snapshot yields an
	// empty ledger, not an error.
	Load(ctx context.Context) (*entity.Ledger, error)

	// Save stores the full ledger snapshot, replacing the previous one.
	Save(ctx context.Context, ledger *entity.Ledger) error
}
