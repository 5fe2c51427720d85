package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/nolimit0410/fitlog-backend/internal/config"
	"github.com/nolimit0410/fitlog-backend/internal/handlers"
	"github.com/nolimit0410/fitlog-backend/internal/middleware"
	"github.com/nolimit0410/fitlog-backend/internal/services"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authService *services.AuthService,
	authHandler *handlers.AuthHandler,
	healthHandler *handlers.HealthHandler,
	workoutHandler *handlers.WorkoutHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/signup", authHandler.Signup)
	auth.Post("/login", authHandler.Login)
	auth.Post("/refresh", authHandler.Refresh)

	// Protected routes: valid token AND a still-existing account
	jwtGuard := middleware.JWTProtected(cfg)
	identityGuard := middleware.RequireIdentity(authService)

	api.Post("/auth/logout", jwtGuard, identityGuard, authHandler.Logout)
	api.Get("/auth/me", jwtGuard, identityGuard, authHandler.Me)

	workouts := api.Group("/workouts", jwtGuard, identityGuard)
	workouts.Get("/", workoutHandler.List)
	workouts.Post("/", workoutHandler.Create)
	workouts.Get("/:id", workoutHandler.Get)
	workouts.Put("/:id", workoutHandler.Update)
	workouts.Delete("/:id", workoutHandler.Delete)
}
