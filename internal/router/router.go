package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gyruslabs/gyrus-api/internal/config"
	"github.com/gyruslabs/gyrus-api/internal/handler"
	"github.com/gyruslabs/gyrus-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	GroupHandler       *handler.GroupHandler
	TestHandler        *handler.TestHandler
	ReportHandler      *handler.ReportHandler
	StudentAuthHandler *handler.StudentAuthHandler
	TeacherHandler     *handler.TeacherHandler
	OTPHandler         *handler.OTPHandler
	QuestionHandler    *handler.QuestionHandler
	JWTMiddleware      fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	// Teacher registration, approval and the two-step login are public;
	// everything a signed-in teacher manages sits behind the JWT.
	if deps.TeacherHandler != nil {
		deps.TeacherHandler.Register(api.Group("/teachers"))
	}
	if deps.OTPHandler != nil {
		deps.OTPHandler.Register(api.Group("/otp"))
	}
	if deps.StudentAuthHandler != nil {
		deps.StudentAuthHandler.Register(api.Group("/student-auth"))
	}

	if deps.GroupHandler != nil {
		deps.GroupHandler.Register(api.Group("/groups", jwtMiddleware))
	}
	if deps.TestHandler != nil {
		deps.TestHandler.Register(api.Group("/tests", jwtMiddleware))
	}
	if deps.ReportHandler != nil {
		deps.ReportHandler.Register(api.Group("/reports", jwtMiddleware))
	}
	if deps.QuestionHandler != nil {
		deps.QuestionHandler.Register(api.Group("/questions", jwtMiddleware))
	}
}
