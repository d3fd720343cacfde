// Package httpapi exposes the JSON HTTP surface of the games API: user
// registration and login, and the authenticated per-user game catalog.
package httpapi

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
	"github.com/sergiomezzz/mi-api-juegos2/internal/logging"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/users"
)

const shutdownTimeout = 5 * time.Second

type HTTPServer struct {
	app       *fiber.App
	address   string
	users     *users.Service
	games     *games.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewHTTPServer(a string, l logging.Logger, us *users.Service, gs *games.Service, secretKey string) (*HTTPServer, error) {
	s := &HTTPServer{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		games:     gs,
		jwtSecret: []byte(secretKey),
	}

	s.app = fiber.New(fiber.Config{
		ErrorHandler: s.errorHandler,
	})
	s.registerRoutes()

	return s, nil
}

func (s *HTTPServer) registerRoutes() {
	s.app.Use(s.requestLogger())
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	s.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	s.app.Post("/users/register", s.registerUser)
	s.app.Post("/users/login", s.login)

	authMW := s.requireAuth()
	s.app.Get("/games", authMW, s.listGames)
	s.app.Post("/games", authMW, s.createGame)
	s.app.Put("/games/:id", authMW, s.updateGame)
	s.app.Delete("/games/:id", authMW, s.deleteGame)
}

// errorHandler translates taxonomy errors into status codes and a uniform
// JSON error body. Internal details are logged, never sent to the client.
func (s *HTTPServer) errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, common.ErrorValidation):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, common.ErrorAlreadyExists):
		code = fiber.StatusBadRequest
		message = "registration failed"
	case errors.Is(err, common.ErrInvalidCredentials):
		code = fiber.StatusBadRequest
		message = "invalid credentials"
	case errors.Is(err, common.ErrorUnauthorized):
		code = fiber.StatusUnauthorized
		message = "authentication required"
	case errors.Is(err, common.ErrorForbidden):
		code = fiber.StatusForbidden
		message = "access denied"
	case errors.Is(err, common.ErrorNotFound):
		code = fiber.StatusNotFound
		message = "game not found"
	default:
		s.logger.Error(c.UserContext(), "unexpected error", "error", err.Error())
		return c.Status(code).JSON(fiber.Map{"error": message})
	}

	s.logger.Debug(c.UserContext(), "request rejected", "status", code, "error", err.Error())
	return c.Status(code).JSON(fiber.Map{"error": message})
}

func (s *HTTPServer) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		s.logger.Info(c.UserContext(), "request",
			"method", c.Method(), "path", c.Path(),
			"status", c.Response().StatusCode(), "duration", time.Since(start).String())
		return err
	}
}

// Run starts the HTTP server and shuts it down gracefully when ctx is
// cancelled.
func (s *HTTPServer) Run(ctx context.Context) error {

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.app.Listen(s.address); err != nil {
		return err
	}

	return nil
}
