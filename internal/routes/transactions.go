package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/txlog"
)

// RegisterTransactionRoutes wires transaction history endpoints.
func RegisterTransactionRoutes(r fiber.Router, h *txlog.Handler) {
	r.Get("/transactions", h.List)
}
