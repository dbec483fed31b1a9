package persistence

import (
	"context"
	"sync"

	"github.com/piggybank/backend/internal/application/adapter"
	"github.com/piggybank/backend/internal/domain/entity"
)

// memoryLedgerRepository keeps the snapshot in process memory. Used when no
// durable backend is configured and by tests.
type memoryLedgerRepository struct {
	mu       sync.Mutex
	snapshot *entity.Ledger
}

// NewMemoryLedgerRepository creates an in-memory ledger repository.
func NewMemoryLedgerRepository() adapter.LedgerRepository {
	return &memoryLedgerRepository{}
}

func (r *memoryLedgerRepository) Load(_ context.Context) (*entity.Ledger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.snapshot == nil {
		return entity.NewLedger(), nil
	}
	return r.snapshot.Clone(), nil
}

func (r *memoryLedgerRepository) Save(_ context.Context, ledger *entity.Ledger) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = ledger.Clone()
	return nil
}
