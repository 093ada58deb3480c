package fx

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedCurrency indicates a currency code outside the treasury's
	// supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")

	// ErrUnknownRatePair indicates no quote exists for the requested pair. Only
	// returned when the table runs in strict mode.
	ErrUnknownRatePair = errors.New("unknown rate pair")
)

// Currency is a supported treasury currency code.
type Currency string

const (
	KES Currency = "KES"
	USD Currency = "USD"
	NGN Currency = "NGN"
)

// Currencies lists the supported codes in display order.
func Currencies() []Currency {
	return []Currency{KES, USD, NGN}
}

// Parse validates a raw currency code.
func Parse(code string) (Currency, error) {
	switch Currency(strings.ToUpper(strings.TrimSpace(code))) {
	case KES:
		return KES, nil
	case USD:
		return USD, nil
	case NGN:
		return NGN, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedCurrency, code)
	}
}

// String returns the three-letter code.
func (c Currency) String() string {
	return string(c)
}

// Pair is an ordered currency pair used as the rate lookup key.
type Pair struct {
	From Currency
	To   Currency
}

// Quote binds a conversion factor to an ordered pair.
type Quote struct {
	Pair Pair
	Rate decimal.Decimal
}

// Table resolves conversion factors between currencies. Quotes are fixed for
// the lifetime of the session.
type Table struct {
	rates  map[Pair]decimal.Decimal
	strict bool
}

// Option configures a Table.
type Option func(*Table)

// Strict makes an unquoted pair a hard error instead of falling back to parity.
func Strict() Option {
	return func(t *Table) { t.strict = true }
}

// NewTable builds a rate table from the provided quotes.
func NewTable(quotes []Quote, opts ...Option) (*Table, error) {
	t := &Table{rates: make(map[Pair]decimal.Decimal, len(quotes))}
	for _, opt := range opts {
		opt(t)
	}
	for _, q := range quotes {
		if q.Pair.From == q.Pair.To {
			return nil, fmt.Errorf("quote %s/%s: pair must span two currencies", q.Pair.From, q.Pair.To)
		}
		if !q.Rate.IsPositive() {
			return nil, fmt.Errorf("quote %s/%s: rate must be positive, got %s", q.Pair.From, q.Pair.To, q.Rate)
		}
		t.rates[q.Pair] = q.Rate
	}
	return t, nil
}

// Rate returns the factor converting an amount in from-currency to to-currency.
// Same-currency conversion is always exactly 1. An unquoted cross-currency pair
// resolves to parity unless the table is strict.
func (t *Table) Rate(from, to Currency) (decimal.Decimal, error) {
	if from == to {
		return decimal.NewFromInt(1), nil
	}
	if rate, ok := t.rates[Pair{From: from, To: to}]; ok {
		return rate, nil
	}
	if t.strict {
		return decimal.Decimal{}, fmt.Errorf("%w: %s/%s", ErrUnknownRatePair, from, to)
	}
	return decimal.NewFromInt(1), nil
}

// Quotes returns all quotes in the table, ordered by pair for stable output.
func (t *Table) Quotes() []Quote {
	quotes := make([]Quote, 0, len(t.rates))
	for _, from := range Currencies() {
		for _, to := range Currencies() {
			if rate, ok := t.rates[Pair{From: from, To: to}]; ok {
				quotes = append(quotes, Quote{Pair: Pair{From: from, To: to}, Rate: rate})
			}
		}
	}
	return quotes
}
