package account

import (
	"context"
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
)

type memoryStore struct {
	mu       sync.RWMutex
	accounts map[string]Account
	order    []string
}

// NewMemoryStore constructs the session account store from seed accounts.
// Listing preserves seed order.
func NewMemoryStore(accounts []Account) (Store, error) {
	s := &memoryStore{
		accounts: make(map[string]Account, len(accounts)),
		order:    make([]string, 0, len(accounts)),
	}
	for _, acc := range accounts {
		if _, exists := s.accounts[acc.ID]; exists {
			return nil, fmt.Errorf("duplicate account id %q", acc.ID)
		}
		if acc.Balance.IsNegative() {
			return nil, fmt.Errorf("account %q: negative opening balance %s", acc.ID, acc.Balance)
		}
		s.accounts[acc.ID] = acc
		s.order = append(s.order, acc.ID)
	}
	return s, nil
}

func (s *memoryStore) Get(_ context.Context, id string) (Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	acc, ok := s.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, id)
	}
	return acc, nil
}

func (s *memoryStore) List(_ context.Context) ([]Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Account, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.accounts[id])
	}
	return out, nil
}

// ApplyTransfer debits the source and credits the destination as one atomic
// step. The balance check runs under the write lock, so a validation read that
// went stale while the request was in flight cannot overdraw the source.
func (s *memoryStore) ApplyTransfer(_ context.Context, fromID, toID string, debit, credit decimal.Decimal) error {
	if fromID == toID {
		return ErrSameAccount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	from, ok := s.accounts[fromID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, fromID)
	}
	to, ok := s.accounts[toID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrAccountNotFound, toID)
	}

	if from.Balance.LessThan(debit) {
		return ErrInsufficientBalance
	}

	from.Balance = from.Balance.Sub(debit)
	to.Balance = to.Balance.Add(credit)

	s.accounts[fromID] = from
	s.accounts[toID] = to
	return nil
}
