// Package server contains the HTTP handlers of the business tier.
package server

import (
	"context"
	"log/slog"
	"time"

	"lendhub/internal/cache"
	"lendhub/internal/config"
	"lendhub/internal/database"
	"lendhub/internal/middleware"
	"lendhub/internal/models"
	"lendhub/internal/repository"
	"lendhub/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config   *config.Config
	db       *gorm.DB
	redis    *redis.Client
	users    *service.UserService
	items    *service.ItemService
	requests *service.RequestService
	bookings *service.BookingService
}

// NewServer creates a server instance with all dependencies.
func NewServer(cfg *config.Config) (*Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}

	cache.InitRedis(cfg.RedisURL)

	return NewServerWithDB(cfg, db, cache.GetClient()), nil
}

// NewServerWithDB wires repositories and services over an existing
// database connection.
func NewServerWithDB(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	return &Server{
		config:   cfg,
		db:       db,
		redis:    redisClient,
		users:    service.NewUserService(userRepo),
		items:    service.NewItemService(itemRepo, userRepo, requestRepo, bookingRepo, commentRepo),
		requests: service.NewRequestService(requestRepo, userRepo, itemRepo),
		bookings: service.NewBookingService(bookingRepo, userRepo, itemRepo),
	}
}

// SetupMiddleware configures middleware for the Fiber app.
func (s *Server) SetupMiddleware(app *fiber.App) {
	app.Use(requestid.New())
	app.Use(helmet.New())
	app.Use(middleware.StructuredLogger())

	if s.config.AllowedOrigins != "" {
		app.Use(cors.New(cors.Config{
			AllowOrigins: s.config.AllowedOrigins,
			AllowHeaders: "Origin, Content-Type, Accept, X-Sharer-User-Id",
		}))
	}
}

// SetupRoutes configures all routes for the application.
func (s *Server) SetupRoutes(app *fiber.App) {
	app.Get("/health", s.HealthCheck)
	app.Get("/metrics", monitor.New(monitor.Config{Title: "Lendhub Server Metrics"}))

	users := app.Group("/users")
	users.Post("/", s.CreateUser)
	users.Get("/", s.GetUsers)
	users.Patch("/:id", s.PatchUser)
	users.Delete("/:id", s.DeleteUser)
	users.Get("/:id", s.GetUser)

	items := app.Group("/items")
	items.Post("/", s.CreateItem)
	items.Get("/", s.GetItems)
	items.Get("/search", s.SearchItems)
	items.Post("/:id/comment", s.CreateComment)
	items.Patch("/:id", s.PatchItem)
	items.Get("/:id", s.GetItem)

	requests := app.Group("/requests")
	requests.Post("/", s.CreateRequest)
	requests.Get("/", s.GetOwnRequests)
	requests.Get("/all", s.GetOthersRequests)
	requests.Get("/:id", s.GetRequest)

	bookings := app.Group("/bookings")
	bookings.Post("/", s.CreateBooking)
	bookings.Get("/owner", s.GetOwnersBookings)
	bookings.Patch("/:id", s.ApproveBooking)
	bookings.Get("/:id", s.GetBooking)
	bookings.Get("/", s.GetBookersBookings)
}

// HealthCheck handles health check requests.
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	dbStatus := "healthy"
	sqlDB, err := s.db.DB()
	if err != nil {
		dbStatus = "unhealthy"
	} else if err := sqlDB.PingContext(ctx); err != nil {
		dbStatus = "unhealthy"
	}

	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(ctx).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	status := fiber.StatusOK
	if dbStatus == "unhealthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"status": "ok",
		"checks": fiber.Map{
			"database": dbStatus,
			"redis":    redisStatus,
		},
		"time": time.Now(),
	})
}

// NewApp builds the Fiber app with the marketplace error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName: "Lendhub Server",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondWithError(c, err)
		},
	})
}

// Shutdown releases the server's connections.
func (s *Server) Shutdown(ctx context.Context) error {
	if sqlDB, err := s.db.DB(); err == nil {
		if cerr := sqlDB.Close(); cerr != nil {
			slog.Error("error closing sql DB", slog.String("error", cerr.Error()))
		}
	}

	if s.redis != nil {
		if rerr := s.redis.Close(); rerr != nil {
			slog.Error("error closing redis", slog.String("error", rerr.Error()))
		}
	}

	slog.Info("server shutdown complete")
	return nil
}
