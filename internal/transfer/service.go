package transfer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/harambee-pay/treasury/internal/account"
	"github.com/harambee-pay/treasury/internal/fx"
	"github.com/harambee-pay/treasury/internal/notification"
	"github.com/harambee-pay/treasury/internal/txlog"
)

var (
	// ErrInvalidAmount occurs when the requested amount is missing, not a
	// number, zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInternal stands in for any unexpected fault inside the processor. The
	// stores are never left partially mutated when it is returned.
	ErrInternal = errors.New("transfer processing failed")
)

// Request is a transfer submission. Amount arrives as raw caller input.
// A nil FutureTime means immediate execution.
type Request struct {
	SourceAccountID      string
	DestinationAccountID string
	Amount               string
	Note                 string
	FutureTime           *time.Time
}

// Service validates transfer requests, resolves FX, settles balances and
// records the resulting transaction.
type Service struct {
	store       account.Store
	log         *txlog.Log
	rates       *fx.Table
	notifier    notification.Notifier
	settleDelay time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithNotifier attaches a notifier invoked after each successful transfer.
func WithNotifier(n notification.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithSettleDelay inserts a simulated latency between validation and
// settlement. Cancelling the request context during the delay leaves all
// state untouched.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Service) { s.settleDelay = d }
}

// NewService constructs a transfer processor over the given stores.
func NewService(store account.Store, log *txlog.Log, rates *fx.Table, opts ...Option) *Service {
	s := &Service{store: store, log: log, rates: rates}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Process runs the full transfer pipeline: resolve accounts, validate,
// resolve the FX rate, settle (immediate transfers only) and record the
// transaction. Validation failures are typed; the first failing rule wins.
// State mutates only on success, and only for immediate transfers.
func (s *Service) Process(ctx context.Context, req Request) (tx txlog.Transaction, err error) {
	defer func() {
		if r := recover(); r != nil {
			tx, err = txlog.Transaction{}, fmt.Errorf("%w: %v", ErrInternal, r)
		}
	}()

	src, err := s.store.Get(ctx, req.SourceAccountID)
	if err != nil {
		return txlog.Transaction{}, err
	}
	dst, err := s.store.Get(ctx, req.DestinationAccountID)
	if err != nil {
		return txlog.Transaction{}, err
	}
	if src.ID == dst.ID {
		return txlog.Transaction{}, account.ErrSameAccount
	}

	amount, err := parseAmount(req.Amount)
	if err != nil {
		return txlog.Transaction{}, err
	}

	// Advisory check against the balance read above; the authoritative check
	// re-runs under the store lock at settlement. The debit is always in the
	// source currency, so the raw amount is compared, not the converted one.
	if src.Balance.LessThan(amount) {
		return txlog.Transaction{}, account.ErrInsufficientBalance
	}

	rate, err := s.rates.Rate(src.Currency, dst.Currency)
	if err != nil {
		return txlog.Transaction{}, err
	}
	converted := amount.Mul(rate)

	if s.settleDelay > 0 {
		select {
		case <-ctx.Done():
			return txlog.Transaction{}, ctx.Err()
		case <-time.After(s.settleDelay):
		}
	}

	future := req.FutureTime != nil
	timestamp := time.Now().UTC()
	if future {
		timestamp = req.FutureTime.UTC()
	} else {
		if err := s.store.ApplyTransfer(ctx, src.ID, dst.ID, amount, converted); err != nil {
			return txlog.Transaction{}, err
		}
	}

	tx = txlog.Transaction{
		ID:          uuid.NewString(),
		FromAccount: src.Name,
		ToAccount:   dst.Name,
		Amount:      amount,
		Currency:    src.Currency,
		FxRate:      rate,
		Note:        req.Note,
		Timestamp:   timestamp,
		IsFuture:    future,
	}
	s.log.Append(ctx, tx)

	if s.notifier != nil {
		kind := notification.KindTransferSettled
		if future {
			kind = notification.KindTransferScheduled
		}
		_ = s.notifier.Send(ctx, notification.Message{
			Kind:        kind,
			Destination: dst.Name,
			Body:        fmt.Sprintf("%s %s from %s", amount, src.Currency, src.Name),
		})
	}

	return tx, nil
}

// Submit collapses Process into the success/failure shape the dashboard
// consumes: ok plus a human-readable message when the transfer was rejected.
func (s *Service) Submit(ctx context.Context, req Request) (bool, string) {
	if _, err := s.Process(ctx, req); err != nil {
		return false, userMessage(err)
	}
	return true, ""
}

func parseAmount(raw string) (decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: amount is required", ErrInvalidAmount)
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", ErrInvalidAmount, raw)
	}
	if !amount.IsPositive() {
		return decimal.Decimal{}, fmt.Errorf("%w: amount must be positive", ErrInvalidAmount)
	}
	return amount, nil
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return "account not found"
	case errors.Is(err, account.ErrSameAccount):
		return "source and destination accounts must be different"
	case errors.Is(err, ErrInvalidAmount):
		return "please enter a valid amount"
	case errors.Is(err, account.ErrInsufficientBalance):
		return "insufficient balance in source account"
	case errors.Is(err, fx.ErrUnknownRatePair):
		return "no exchange rate available for this currency pair"
	default:
		return "transfer failed, please try again"
	}
}
