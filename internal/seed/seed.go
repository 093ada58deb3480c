// Package seed holds the fixed dataset loaded into the stores at startup.
// Balances and quotes are session constants; there is no live feed behind them.
package seed

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/harambee-pay/treasury/internal/account"
	"github.com/harambee-pay/treasury/internal/fx"
	"github.com/harambee-pay/treasury/internal/txlog"
)

// Accounts returns the opening account set in display order.
func Accounts() []account.Account {
	return []account.Account{
		{ID: "1", Name: "Mpesa_KES_1", Currency: fx.KES, Balance: decimal.NewFromInt(2_450_000)},
		{ID: "2", Name: "Mpesa_KES_2", Currency: fx.KES, Balance: decimal.NewFromInt(1_890_000)},
		{ID: "3", Name: "Bank_USD_1", Currency: fx.USD, Balance: decimal.NewFromInt(125_000)},
		{ID: "4", Name: "Bank_USD_2", Currency: fx.USD, Balance: decimal.NewFromInt(89_500)},
		{ID: "5", Name: "Bank_USD_3", Currency: fx.USD, Balance: decimal.NewFromInt(234_000)},
		{ID: "6", Name: "Wallet_NGN_1", Currency: fx.NGN, Balance: decimal.NewFromInt(15_600_000)},
		{ID: "7", Name: "Wallet_NGN_2", Currency: fx.NGN, Balance: decimal.NewFromInt(8_450_000)},
		{ID: "8", Name: "Reserve_KES_1", Currency: fx.KES, Balance: decimal.NewFromInt(5_670_000)},
		{ID: "9", Name: "Reserve_USD_1", Currency: fx.USD, Balance: decimal.NewFromInt(456_000)},
		{ID: "10", Name: "Reserve_NGN_1", Currency: fx.NGN, Balance: decimal.NewFromInt(23_400_000)},
	}
}

// Transactions returns the opening transfer history, newest first.
func Transactions() []txlog.Transaction {
	return []txlog.Transaction{
		{
			ID:          "1",
			FromAccount: "Bank_USD_1",
			ToAccount:   "Mpesa_KES_1",
			Amount:      decimal.NewFromInt(1000),
			Currency:    fx.USD,
			FxRate:      decimal.RequireFromString("150.5"),
			Note:        "Monthly settlement",
			Timestamp:   time.Date(2024, time.December, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			FromAccount: "Wallet_NGN_1",
			ToAccount:   "Bank_USD_2",
			Amount:      decimal.NewFromInt(500_000),
			Currency:    fx.NGN,
			FxRate:      decimal.RequireFromString("0.0012"),
			Note:        "FX conversion",
			Timestamp:   time.Date(2024, time.December, 14, 14, 20, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			FromAccount: "Reserve_KES_1",
			ToAccount:   "Mpesa_KES_2",
			Amount:      decimal.NewFromInt(750_000),
			Currency:    fx.KES,
			FxRate:      decimal.NewFromInt(1),
			Note:        "Liquidity provision",
			Timestamp:   time.Date(2024, time.December, 13, 9, 15, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			FromAccount: "Bank_USD_3",
			ToAccount:   "Wallet_NGN_2",
			Amount:      decimal.NewFromInt(2500),
			Currency:    fx.USD,
			FxRate:      decimal.RequireFromString("825.0"),
			Note:        "Cross-border transfer",
			Timestamp:   time.Date(2024, time.December, 20, 16, 0, 0, 0, time.UTC),
			IsFuture:    true,
		},
		{
			ID:          "5",
			FromAccount: "Reserve_USD_1",
			ToAccount:   "Bank_USD_1",
			Amount:      decimal.NewFromInt(15_000),
			Currency:    fx.USD,
			FxRate:      decimal.NewFromInt(1),
			Note:        "Reserve allocation",
			Timestamp:   time.Date(2024, time.December, 25, 12, 0, 0, 0, time.UTC),
			IsFuture:    true,
		},
	}
}

// Quotes returns the static FX quotes.
func Quotes() []fx.Quote {
	return []fx.Quote{
		{Pair: fx.Pair{From: fx.KES, To: fx.USD}, Rate: decimal.RequireFromString("0.0067")},
		{Pair: fx.Pair{From: fx.USD, To: fx.KES}, Rate: decimal.RequireFromString("150.5")},
		{Pair: fx.Pair{From: fx.NGN, To: fx.USD}, Rate: decimal.RequireFromString("0.0012")},
		{Pair: fx.Pair{From: fx.USD, To: fx.NGN}, Rate: decimal.RequireFromString("825.0")},
		{Pair: fx.Pair{From: fx.KES, To: fx.NGN}, Rate: decimal.RequireFromString("5.48")},
		{Pair: fx.Pair{From: fx.NGN, To: fx.KES}, Rate: decimal.RequireFromString("0.18")},
	}
}
