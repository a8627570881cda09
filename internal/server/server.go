package server

import (
	"errors"
	"log"

	"golexai-be/internal/bootstrap"
	"golexai-be/internal/config"
	"golexai-be/internal/pkg/serverutils"
	"golexai-be/internal/service"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit:    25 * 1024 * 1024, // room for document uploads
		ErrorHandler: errorHandler,
	})

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.App.CorsAllowedOrigins,
		AllowCredentials: true,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.AuthController.RegisterRoutes(api)
	c.UserController.RegisterRoutes(api)
	c.DocumentController.RegisterRoutes(api)
	c.CaseController.RegisterRoutes(api)
	c.AiController.RegisterRoutes(api)
	c.AnalyticsController.RegisterRoutes(api)
}

// errorHandler maps service errors onto HTTP statuses. Unrecognized
// errors become 500 without leaking internals.
func errorHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "internal server error"

	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
		message = fiberErr.Message
	case errors.Is(err, service.ErrValidation):
		code = fiber.StatusBadRequest
		message = err.Error()
	case errors.Is(err, service.ErrUnauthorized):
		code = fiber.StatusUnauthorized
		message = err.Error()
	case errors.Is(err, service.ErrForbidden):
		code = fiber.StatusForbidden
		message = err.Error()
	case errors.Is(err, service.ErrNotFound):
		code = fiber.StatusNotFound
		message = err.Error()
	case errors.Is(err, service.ErrConflict):
		code = fiber.StatusConflict
		message = err.Error()
	case errors.Is(err, service.ErrUpstream):
		code = fiber.StatusBadGateway
		message = err.Error()
	case errors.Is(err, service.ErrServiceUnavailable):
		code = fiber.StatusServiceUnavailable
		message = err.Error()
	}

	return ctx.Status(code).JSON(serverutils.ErrorResponse(code, message))
}
