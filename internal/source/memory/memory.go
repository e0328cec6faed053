// Package memory is an in-process record source used by tests and as a
// zero-configuration fallback.
package memory

import (
	"context"
	"sync"

	"finview/internal/core"
)

type Store struct {
	mu  sync.Mutex
	txs []core.Transaction
}

func New(txs ...core.Transaction) *Store {
	s := &Store{}
	s.txs = append(s.txs, txs...)
	return s
}

// ReadAll implements source.Reader. The returned slice is a copy.
func (s *Store) ReadAll(_ context.Context) ([]core.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]core.Transaction, len(s.txs))
	copy(out, s.txs)
	return out, nil
}

// Append adds records to the store.
func (s *Store) Append(txs ...core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, txs...)
}
