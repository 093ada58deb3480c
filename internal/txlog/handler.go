package txlog

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/fx"
)

// Handler exposes transaction history endpoints.
type Handler struct {
	log *Log
}

// NewHandler builds a transaction log HTTP handler.
func NewHandler(log *Log) *Handler {
	return &Handler{log: log}
}

type entryResponse struct {
	ID          string    `json:"id"`
	FromAccount string    `json:"from_account"`
	ToAccount   string    `json:"to_account"`
	Amount      string    `json:"amount"`
	Currency    string    `json:"currency"`
	FxRate      string    `json:"fx_rate"`
	Note        string    `json:"note"`
	Timestamp   time.Time `json:"timestamp"`
	IsFuture    bool      `json:"is_future"`
}

// List returns the filtered transfer history, most recent first.
func (h *Handler) List(c *fiber.Ctx) error {
	filter := Filter{
		Account:       c.Query("account"),
		IncludeFuture: c.QueryBool("include_future"),
	}
	if raw := c.Query("currency"); raw != "" {
		currency, err := fx.Parse(raw)
		if err != nil {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		filter.Currency = currency
	}

	matches := h.log.Query(c.UserContext(), filter)
	out := make([]entryResponse, 0, len(matches))
	for _, tx := range matches {
		out = append(out, entryResponse{
			ID:          tx.ID,
			FromAccount: tx.FromAccount,
			ToAccount:   tx.ToAccount,
			Amount:      tx.Amount.String(),
			Currency:    tx.Currency.String(),
			FxRate:      tx.FxRate.String(),
			Note:        tx.Note,
			Timestamp:   tx.Timestamp,
			IsFuture:    tx.IsFuture,
		})
	}
	return c.Status(http.StatusOK).JSON(out)
}
