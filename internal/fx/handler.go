package fx

import (
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the session rate table.
type Handler struct {
	table *Table
}

// NewHandler builds an FX HTTP handler.
func NewHandler(table *Table) *Handler {
	return &Handler{table: table}
}

type quoteResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
	Rate string `json:"rate"`
}

// List returns every quote in the table.
func (h *Handler) List(c *fiber.Ctx) error {
	quotes := h.table.Quotes()
	out := make([]quoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, quoteResponse{From: q.Pair.From.String(), To: q.Pair.To.String(), Rate: q.Rate.String()})
	}
	return c.Status(http.StatusOK).JSON(out)
}
