package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/harambee-pay/treasury/internal/fx"
)

// RegisterRateRoutes wires the FX rate table endpoint.
func RegisterRateRoutes(r fiber.Router, h *fx.Handler) {
	r.Get("/rates", h.List)
}
