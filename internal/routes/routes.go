package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/harambee-pay/treasury/internal/account"
	"github.com/harambee-pay/treasury/internal/config"
	"github.com/harambee-pay/treasury/internal/fx"
	"github.com/harambee-pay/treasury/internal/middleware"
	"github.com/harambee-pay/treasury/internal/notification"
	"github.com/harambee-pay/treasury/internal/seed"
	"github.com/harambee-pay/treasury/internal/transfer"
	"github.com/harambee-pay/treasury/internal/txlog"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup seeds the session state, configures middlewares and wires all routes.
func Setup(app *fiber.App, d Deps) error {
	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	app.Use(middleware.Audit(d.Logger))

	// Health
	RegisterHealthRoutes(app, d)

	// Session state from seed data
	var fxOpts []fx.Option
	if d.Cfg.StrictRates {
		fxOpts = append(fxOpts, fx.Strict())
	}
	rates, err := fx.NewTable(seed.Quotes(), fxOpts...)
	if err != nil {
		return err
	}
	store, err := account.NewMemoryStore(seed.Accounts())
	if err != nil {
		return err
	}
	log := txlog.NewLog(seed.Transactions())

	notifier := notification.NewLoggerNotifier(d.Logger)
	transferSvc := transfer.NewService(store, log, rates,
		transfer.WithNotifier(notifier),
		transfer.WithSettleDelay(d.Cfg.SettleDelay),
	)

	accountHandler := account.NewHandler(store)
	txHandler := txlog.NewHandler(log)
	transferHandler := transfer.NewHandler(transferSvc)
	ratesHandler := fx.NewHandler(rates)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	RegisterAccountRoutes(api, accountHandler)
	RegisterTransactionRoutes(api, txHandler)
	RegisterRateRoutes(api, ratesHandler)

	// Transfers mutate balances, so they sit behind the idempotency layer
	// when Redis is available.
	transfers := api.Group("")
	if d.Cache != nil {
		transfers = api.Group("", middleware.Idempotency(d.Cache, d.Cfg.IdempotencyTTL, d.Logger))
	}
	RegisterTransferRoutes(transfers, transferHandler)

	return nil
}
