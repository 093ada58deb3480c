package middleware

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/harambee-pay/treasury/internal/logging"
)

// setupTestApp stands up a fake transfer endpoint behind the idempotency
// layer. Each handler invocation mints a fresh transaction id, so a replayed
// response is distinguishable from a re-executed one.
func setupTestApp(t *testing.T) (*fiber.App, *atomic.Int64, func()) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}

	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	app := fiber.New()
	logger := logging.Discard()
	app.Use(Idempotency(cache, time.Minute, logger))

	var invocations atomic.Int64
	app.Post("/transfers", func(c *fiber.Ctx) error {
		invocations.Add(1)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{"id": uuid.NewString()})
	})

	cleanup := func() {
		cache.Close()
		mr.Close()
	}

	return app, &invocations, cleanup
}

func TestIdempotencyRequiresHeader(t *testing.T) {
	app, _, cleanup := setupTestApp(t)
	defer cleanup()

	req := httptest.NewRequest(fiber.MethodPost, "/transfers", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}

	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected %d got %d", fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestIdempotencyReplaysWithoutReprocessing(t *testing.T) {
	app, invocations, cleanup := setupTestApp(t)
	defer cleanup()

	req := httptest.NewRequest(fiber.MethodPost, "/transfers", strings.NewReader("{}"))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(idempotencyKeyHeader, "transfer-abc123")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("first request: %v", err)
	}

	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected status %d got %d", fiber.StatusCreated, resp.StatusCode)
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	resp.Body.Close()

	// Second request with the same key must replay the stored response, not
	// run the transfer again.
	req2 := httptest.NewRequest(fiber.MethodPost, "/transfers", strings.NewReader("{}"))
	req2.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req2.Header.Set(idempotencyKeyHeader, "transfer-abc123")

	resp2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("second request: %v", err)
	}

	if resp2.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected cached status %d got %d", fiber.StatusCreated, resp2.StatusCode)
	}

	cachedPayload, err := io.ReadAll(resp2.Body)
	if err != nil {
		t.Fatalf("read cached body: %v", err)
	}
	resp2.Body.Close()

	if string(cachedPayload) != string(payload) {
		t.Fatalf("expected cached payload %s got %s", string(payload), string(cachedPayload))
	}
	if n := invocations.Load(); n != 1 {
		t.Fatalf("expected handler to run once, ran %d times", n)
	}

	var decoded map[string]any
	if err := json.Unmarshal(cachedPayload, &decoded); err != nil {
		t.Fatalf("cached payload invalid json: %v", err)
	}
}

func TestIdempotencyDistinctKeysProcessSeparately(t *testing.T) {
	app, invocations, cleanup := setupTestApp(t)
	defer cleanup()

	for _, key := range []string{"transfer-1", "transfer-2"} {
		req := httptest.NewRequest(fiber.MethodPost, "/transfers", strings.NewReader("{}"))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		req.Header.Set(idempotencyKeyHeader, key)

		resp, err := app.Test(req)
		if err != nil {
			t.Fatalf("request %s: %v", key, err)
		}
		if resp.StatusCode != fiber.StatusCreated {
			t.Fatalf("request %s: expected %d got %d", key, fiber.StatusCreated, resp.StatusCode)
		}
		resp.Body.Close()
	}

	if n := invocations.Load(); n != 2 {
		t.Fatalf("expected two handler runs, got %d", n)
	}
}
