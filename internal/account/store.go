package account

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound occurs when a referenced account id does not exist.
	ErrAccountNotFound = errors.New("account not found")

	// ErrSameAccount occurs when a transfer names the same account on both sides.
	ErrSameAccount = errors.New("source and destination are the same account")

	// ErrInsufficientBalance occurs when the source account cannot cover the
	// requested debit.
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// Store holds the session's accounts. Balances are mutated only through
// ApplyTransfer.
type Store interface {
	Get(ctx context.Context, id string) (Account, error)
	List(ctx context.Context) ([]Account, error)
	ApplyTransfer(ctx context.Context, fromID, toID string, debit, credit decimal.Decimal) error
}
