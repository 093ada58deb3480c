package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/account"
)

// RegisterAccountRoutes wires account read endpoints.
func RegisterAccountRoutes(r fiber.Router, h *account.Handler) {
	r.Get("/accounts", h.List)
	r.Get("/summary", h.Summary)
}
