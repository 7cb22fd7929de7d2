// Package server assembles the fiber application: middleware, error handling
// and routes.
package server

import (
	"github.com/arzan03/aircnc-server/internal/config"
	"github.com/arzan03/aircnc-server/internal/handlers"
	"github.com/arzan03/aircnc-server/internal/logger"
	"github.com/arzan03/aircnc-server/internal/middleware"
	"github.com/arzan03/aircnc-server/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Services are the dependencies of the routes. Images may be nil, in which
// case the upload route is not mounted.
type Services struct {
	Users    services.UserService
	Rooms    services.RoomService
	Bookings services.BookingService
	Auth     services.AuthService
	Images   services.ImageService
}

// New returns the configured application. It does not start listening.
func New(cfg *config.Config, log *logger.Logger, svc Services) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "aircnc",
		ErrorHandler:          handlers.ErrorHandler,
		UnescapePath:          true,
		Immutable:             true,
		DisableStartupMessage: true,
	})

	app.Use(middleware.NewRequestLogger(log))
	app.Use(recover.New())
	app.Use(cors.New(corsConfig(cfg.CORSAllowOrigins)))

	h := handlers.New(svc.Users, svc.Rooms, svc.Bookings, svc.Auth, svc.Images)
	registerRoutes(app, h, middleware.NewAuthMiddleware(svc.Auth), svc.Images != nil)

	return app
}

func registerRoutes(app *fiber.App, h *handlers.Handler, requireAuth fiber.Handler, withImages bool) {
	app.Get("/", h.Health)

	app.Post("/jwt", h.IssueToken)

	// Users
	app.Put("/users/:email", h.UpsertUser)
	app.Get("/users/:email", h.GetUser)

	// Rooms
	app.Post("/rooms", h.CreateRoom)
	app.Get("/room/:id", h.GetRoom)
	app.Get("/rooms/:email", requireAuth, h.ListHostRooms)
	app.Get("/rooms", h.ListRooms)
	app.Delete("/rooms/:id", h.DeleteRoom)
	app.Patch("/rooms/status/:id", h.SetRoomStatus)

	// Bookings
	app.Post("/bookings", h.CreateBooking)
	app.Get("/bookings", h.ListGuestBookings)
	app.Get("/bookings/host", h.ListHostBookings)
	app.Delete("/bookings/:id", h.DeleteBooking)

	if withImages {
		app.Post("/images", h.UploadImage)
	}
}

// corsConfig allows any origin with credentials for "*", otherwise only the
// listed origins. fiber refuses a literal "*" together with credentials, so
// the wildcard is expressed as an origin func that reflects the caller.
func corsConfig(allowOrigins string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowCredentials: true,
	}
	if allowOrigins == "*" {
		cfg.AllowOriginsFunc = func(string) bool { return true }
	} else {
		cfg.AllowOrigins = allowOrigins
	}
	return cfg
}
