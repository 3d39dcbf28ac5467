// Package gateway implements the validating facade in front of the
// business tier. It checks request shape and rate limits, then
// forwards to the server and relays the response verbatim.
package gateway

import (
	"log/slog"
	"time"

	"lendhub/internal/cache"
	"lendhub/internal/config"
	"lendhub/internal/middleware"
	"lendhub/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
)

const userHeader = "X-Sharer-User-Id"

// Gateway validates and forwards client requests.
type Gateway struct {
	config      *config.Config
	redis       *redis.Client
	writeLimit  fiber.Handler
	searchLimit fiber.Handler
}

// NewGateway creates a gateway instance.
func NewGateway(cfg *config.Config) *Gateway {
	cache.InitRedis(cfg.RedisURL)
	return NewGatewayWithRedis(cfg, cache.GetClient())
}

// NewGatewayWithRedis wires the gateway over an existing Redis client.
func NewGatewayWithRedis(cfg *config.Config, redisClient *redis.Client) *Gateway {
	return &Gateway{
		config:      cfg,
		redis:       redisClient,
		writeLimit:  middleware.RateLimit(redisClient, 30, time.Minute, "write"),
		searchLimit: middleware.RateLimit(redisClient, 60, time.Minute, "search"),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (g *Gateway) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())
}

// SetupRoutes mirrors the server's routes, each behind its
// validation.
func (g *Gateway) SetupRoutes(app *fiber.App) {
	users := app.Group("/users")
	users.Post("/", g.writeLimit, g.CreateUser)
	users.Get("/", g.forward)
	users.Patch("/:id", g.writeLimit, g.PatchUser)
	users.Delete("/:id", g.writeLimit, g.DeleteUser)
	users.Get("/:id", g.GetByPathID)

	items := app.Group("/items")
	items.Post("/", g.writeLimit, g.CreateItem)
	items.Get("/", g.ListWithPaging)
	items.Get("/search", g.searchLimit, g.SearchItems)
	items.Post("/:id/comment", g.writeLimit, g.CreateComment)
	items.Patch("/:id", g.writeLimit, g.PatchItem)
	items.Get("/:id", g.GetWithUserAndPathID)

	requests := app.Group("/requests")
	requests.Post("/", g.writeLimit, g.CreateRequest)
	requests.Get("/", g.ListForUser)
	requests.Get("/all", g.ListWithPaging)
	requests.Get("/:id", g.GetWithUserAndPathID)

	bookings := app.Group("/bookings")
	bookings.Post("/", g.writeLimit, g.CreateBooking)
	bookings.Get("/owner", g.ListBookings)
	bookings.Patch("/:id", g.writeLimit, g.ApproveBooking)
	bookings.Get("/:id", g.GetWithUserAndPathID)
	bookings.Get("/", g.ListBookings)
}

// forward relays the request to the business tier and the response
// back to the client unchanged.
func (g *Gateway) forward(c *fiber.Ctx) error {
	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(c.Method())
	req.SetRequestURI(g.config.ServerURL + c.OriginalURL())
	req.Header.SetContentType(fiber.MIMEApplicationJSON)
	if v := c.Get(userHeader); v != "" {
		req.Header.Set(userHeader, v)
	}
	if body := c.Body(); len(body) > 0 {
		req.SetBody(body)
	}

	if err := agent.Parse(); err != nil {
		slog.Error("gateway request build failed", slog.String("error", err.Error()))
		return models.RespondWithError(c, models.NewInternalError(err))
	}

	status, body, errs := agent.Bytes()
	if len(errs) > 0 {
		slog.Error("upstream request failed",
			slog.String("path", c.OriginalURL()),
			slog.String("error", errs[0].Error()))
		return models.RespondWithError(c, models.NewInternalError(errs[0]))
	}

	// The agent's buffers go back to the pool on release; the relayed
	// body must outlive it.
	out := make([]byte, len(body))
	copy(out, body)

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Status(status).Send(out)
}

// NewApp builds the Fiber app with the marketplace error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName: "Lendhub Gateway",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})
}
