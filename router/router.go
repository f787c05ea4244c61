package router

import (
	"ticketing-webapp/handlers"
	"ticketing-webapp/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Config struct {
	JWTSecret      string
	AllowedOrigins string
	StaticDir      string
}

func SetupRoutes(app *fiber.App, h *handlers.Handler, cfg Config) {
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	app.Static("/static", cfg.StaticDir)

	// The JWT gate is attached per route, not on the group: reads stay
	// public while writes require the admin token.
	authorize := middleware.Authorize(cfg.JWTSecret)

	//Login
	login := app.Group("/login")
	login.Post("/", h.Login)

	api := app.Group("/api")

	//Events
	events := api.Group("/events")
	events.Post("/add", authorize, h.CreateEvent)
	events.Get("/", h.GetEvents)
	events.Get("/:id", h.GetEvent)
	events.Put("/:id", authorize, h.UpdateEvent)
	events.Delete("/:id", authorize, h.DeleteEvent)

	//Bookings: fixed segments registered before the :id catch-all
	booking := api.Group("/booking")
	booking.Post("/create", h.CreateBooking)
	booking.Get("/", h.GetBookings)
	booking.Get("/verify/:ticketNumber", h.VerifyTicket)
	booking.Post("/send-email/:id", h.SendTicketEmail)
	booking.Post("/v2/send-email/:id", h.SendTicketEmailV2)
	booking.Put("/update-status/:id", h.UpdateBookingStatus)
	booking.Get("/:id", h.GetBooking)
	booking.Delete("/:id", authorize, h.DeleteBooking)
}
