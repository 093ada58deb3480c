package account

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Handler exposes account read endpoints.
type Handler struct {
	store Store
}

// NewHandler builds an account HTTP handler.
func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

type accountResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
	Balance  string `json:"balance"`
}

// List returns the account snapshot in seed order.
func (h *Handler) List(c *fiber.Ctx) error {
	accounts, err := h.store.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}
	out := make([]accountResponse, 0, len(accounts))
	for _, acc := range accounts {
		out = append(out, accountResponse{
			ID:       acc.ID,
			Name:     acc.Name,
			Currency: acc.Currency.String(),
			Balance:  acc.Balance.String(),
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}

type currencySummary struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
	Accounts int    `json:"accounts"`
}

// Summary returns per-currency balance totals and account counts.
func (h *Handler) Summary(c *fiber.Ctx) error {
	accounts, err := h.store.List(c.UserContext())
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, err.Error())
	}

	totals := make(map[string]decimal.Decimal)
	counts := make(map[string]int)
	var order []string
	for _, acc := range accounts {
		code := acc.Currency.String()
		if _, seen := totals[code]; !seen {
			order = append(order, code)
		}
		totals[code] = totals[code].Add(acc.Balance)
		counts[code]++
	}

	out := make([]currencySummary, 0, len(order))
	for _, code := range order {
		out = append(out, currencySummary{Currency: code, Total: totals[code].String(), Accounts: counts[code]})
	}
	return c.Status(http.StatusOK).JSON(out)
}
