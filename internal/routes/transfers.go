package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/transfer"
)

// RegisterTransferRoutes wires the transfer submission endpoint.
func RegisterTransferRoutes(r fiber.Router, h *transfer.Handler) {
	r.Post("/transfers", h.Create)
}
