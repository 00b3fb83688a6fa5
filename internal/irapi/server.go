package irapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/websocket/v2"

	"github.com/edgeflow/irdecode/internal/irbridge"
)

// Server is the HTTP API surface over a decoded-command History and live
// Hub, mirroring the teacher's NewHandler(service)-over-fiber.New()
// construction in cmd/edgeflow/main.go.
type Server struct {
	app     *fiber.App
	history *irbridge.History
	hub     *irbridge.Hub
}

// Config configures the server's JWT protection. JWT.SecretKey == ""
// leaves /api/* unauthenticated, for local development.
type Config struct {
	JWT JWTConfig
}

// NewServer builds the Fiber app and registers every route; it does not
// call Listen.
func NewServer(history *irbridge.History, hub *irbridge.Hub, cfg Config) *Server {
	app := fiber.New(fiber.Config{AppName: "irdecode"})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
	}))

	cfg.JWT.SkipPaths = append(cfg.JWT.SkipPaths, "/healthz")
	if cfg.JWT.SecretKey != "" {
		app.Use(JWTMiddleware(cfg.JWT))
	}

	s := &Server{app: app, history: history, hub: hub}
	s.registerRoutes()

	return s
}

func (s *Server) registerRoutes() {
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	s.app.Get("/api/commands", s.handleCommands)

	s.app.Use("/api/stream", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	s.app.Get("/api/stream", websocket.New(s.hub.HandleWebSocket))
}

func (s *Server) handleCommands(c *fiber.Ctx) error {
	if s.history == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "command history is not configured",
		})
	}

	limit := c.QueryInt("limit", 50)
	if limit <= 0 || limit > 500 {
		limit = 50
	}

	commands, err := s.history.Recent(limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{"commands": commands})
}

// Listen starts the HTTP server on addr, blocking until it stops.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
