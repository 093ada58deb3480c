package account

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/harambee-pay/treasury/internal/fx"
)

func testAccounts() []Account {
	return []Account{
		{ID: "1", Name: "Bank_USD_1", Currency: fx.USD, Balance: decimal.NewFromInt(10_000)},
		{ID: "2", Name: "Mpesa_KES_1", Currency: fx.KES, Balance: decimal.NewFromInt(50_000)},
	}
}

func TestMemoryStoreListPreservesSeedOrder(t *testing.T) {
	store, err := NewMemoryStore(testAccounts())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	accounts, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(accounts) != 2 {
		t.Fatalf("expected 2 accounts, got %d", len(accounts))
	}
	if accounts[0].ID != "1" || accounts[1].ID != "2" {
		t.Fatalf("unexpected order: %v", accounts)
	}
}

func TestMemoryStoreGetUnknown(t *testing.T) {
	store, err := NewMemoryStore(testAccounts())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if _, err := store.Get(context.Background(), "99"); !errors.Is(err, ErrAccountNotFound) {
		t.Fatalf("expected account not found, got %v", err)
	}
}

func TestMemoryStoreRejectsBadSeed(t *testing.T) {
	dup := testAccounts()
	dup[1].ID = dup[0].ID
	if _, err := NewMemoryStore(dup); err == nil {
		t.Fatal("expected duplicate id error")
	}

	negative := testAccounts()
	negative[0].Balance = decimal.NewFromInt(-1)
	if _, err := NewMemoryStore(negative); err == nil {
		t.Fatal("expected negative balance error")
	}
}

func TestApplyTransferMovesBothBalances(t *testing.T) {
	store, err := NewMemoryStore(testAccounts())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	debit := decimal.NewFromInt(1000)
	credit := decimal.RequireFromString("150500") // 1000 at 150.5
	if err := store.ApplyTransfer(ctx, "1", "2", debit, credit); err != nil {
		t.Fatalf("apply transfer: %v", err)
	}

	from, _ := store.Get(ctx, "1")
	to, _ := store.Get(ctx, "2")
	if !from.Balance.Equal(decimal.NewFromInt(9_000)) {
		t.Fatalf("expected source balance 9000, got %s", from.Balance)
	}
	if !to.Balance.Equal(decimal.NewFromInt(200_500)) {
		t.Fatalf("expected destination balance 200500, got %s", to.Balance)
	}
}

func TestApplyTransferInsufficientLeavesStateUnchanged(t *testing.T) {
	store, err := NewMemoryStore(testAccounts())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	over := decimal.NewFromInt(10_001)
	if err := store.ApplyTransfer(ctx, "1", "2", over, over); !errors.Is(err, ErrInsufficientBalance) {
		t.Fatalf("expected insufficient balance, got %v", err)
	}

	from, _ := store.Get(ctx, "1")
	to, _ := store.Get(ctx, "2")
	if !from.Balance.Equal(decimal.NewFromInt(10_000)) || !to.Balance.Equal(decimal.NewFromInt(50_000)) {
		t.Fatalf("balances changed on failed transfer: %s / %s", from.Balance, to.Balance)
	}
}

func TestApplyTransferSameAccount(t *testing.T) {
	store, err := NewMemoryStore(testAccounts())
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	amount := decimal.NewFromInt(1)
	if err := store.ApplyTransfer(context.Background(), "1", "1", amount, amount); !errors.Is(err, ErrSameAccount) {
		t.Fatalf("expected same account error, got %v", err)
	}
}

func TestApplyTransferConcurrentNoDoubleSpend(t *testing.T) {
	store, err := NewMemoryStore([]Account{
		{ID: "a", Name: "Reserve_USD_1", Currency: fx.USD, Balance: decimal.NewFromInt(1_000)},
		{ID: "b", Name: "Bank_USD_1", Currency: fx.USD, Balance: decimal.Zero},
	})
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	// 40 workers each try to move 100 out of a 1000 balance; only 10 can win.
	const workers = 40
	amount := decimal.NewFromInt(100)
	var failures int64
	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := store.ApplyTransfer(ctx, "a", "b", amount, amount); err != nil {
				if !errors.Is(err, ErrInsufficientBalance) {
					t.Errorf("unexpected error: %v", err)
				}
				mu.Lock()
				failures++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if failures != workers-10 {
		t.Fatalf("expected %d rejected transfers, got %d", workers-10, failures)
	}

	from, _ := store.Get(ctx, "a")
	to, _ := store.Get(ctx, "b")
	if !from.Balance.Equal(decimal.Zero) {
		t.Fatalf("expected source drained to 0, got %s", from.Balance)
	}
	if !to.Balance.Equal(decimal.NewFromInt(1_000)) {
		t.Fatalf("expected destination 1000, got %s", to.Balance)
	}
	if total := from.Balance.Add(to.Balance); !total.Equal(decimal.NewFromInt(1_000)) {
		t.Fatalf("value not conserved, total=%s", total)
	}
}
