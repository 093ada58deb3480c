package account

import (
	"github.com/shopspring/decimal"

	"github.com/harambee-pay/treasury/internal/fx"
)

// Account is a treasury account holding a balance in a single currency.
type Account struct {
	ID       string
	Name     string
	Currency fx.Currency
	Balance  decimal.Decimal
}
