package txlog

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/harambee-pay/treasury/internal/fx"
)

// Transaction is an immutable record of a processed transfer. FromAccount and
// ToAccount hold the account display names frozen at transfer time, not ids.
type Transaction struct {
	ID          string
	FromAccount string
	ToAccount   string
	Amount      decimal.Decimal
	Currency    fx.Currency
	FxRate      decimal.Decimal
	Note        string
	Timestamp   time.Time
	IsFuture    bool
}

// Filter narrows a log query. Zero values mean "no constraint" except
// IncludeFuture, which must be set to see scheduled transfers.
type Filter struct {
	Account       string
	Currency      fx.Currency
	IncludeFuture bool
}

func (f Filter) matches(tx Transaction) bool {
	if f.Account != "" && tx.FromAccount != f.Account && tx.ToAccount != f.Account {
		return false
	}
	if f.Currency != "" && tx.Currency != f.Currency {
		return false
	}
	if !f.IncludeFuture && tx.IsFuture {
		return false
	}
	return true
}

// Log is the session's append-only transfer history, newest first.
type Log struct {
	mu      sync.RWMutex
	entries []Transaction
}

// NewLog builds a log pre-populated with seed transactions, given newest first.
func NewLog(seed []Transaction) *Log {
	entries := make([]Transaction, len(seed))
	copy(entries, seed)
	return &Log{entries: entries}
}

// Append prepends a transaction to the log.
func (l *Log) Append(_ context.Context, tx Transaction) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append([]Transaction{tx}, l.entries...)
}

// Query returns the matching transactions ordered by timestamp descending.
// Equal timestamps keep their relative log order. The result is a copy; the
// log itself is never exposed.
func (l *Log) Query(_ context.Context, filter Filter) []Transaction {
	l.mu.RLock()
	matched := make([]Transaction, 0, len(l.entries))
	for _, tx := range l.entries {
		if filter.matches(tx) {
			matched = append(matched, tx)
		}
	}
	l.mu.RUnlock()

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	return matched
}

// Len reports the number of logged transactions.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
