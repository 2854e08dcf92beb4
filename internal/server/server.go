// Package server contains the HTTP handlers for the application's API
// endpoints. The server is a thin shell around the in-memory store: it
// translates requests into store operations and view computations.
package server

import (
	"context"
	"strings"
	"time"

	"promptvault/internal/cache"
	"promptvault/internal/config"
	"promptvault/internal/middleware"
	"promptvault/internal/models"
	"promptvault/internal/store"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
)

// Token issuer/audience values baked into every minted JWT.
const (
	tokenIssuer   = "promptvault-api"
	tokenAudience = "promptvault-client"
)

// Server holds all dependencies and provides handlers.
type Server struct {
	config *config.Config
	store  *store.Store
	redis  *redis.Client
}

// NewServer creates a new server instance around the given store.
func NewServer(cfg *config.Config, st *store.Store) *Server {
	cache.InitRedis(cfg.RedisURL)
	return &Server{
		config: cfg,
		store:  st,
		redis:  cache.GetClient(),
	}
}

// Shutdown releases server resources.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.redis != nil {
		return s.redis.Close()
	}
	return nil
}

// SetupMiddleware configures middleware for the Fiber app
func (s *Server) SetupMiddleware(app *fiber.App) {
	// Request ID for tracing
	app.Use(requestid.New())

	// Security headers
	app.Use(helmet.New())

	// Attach request/user IDs to the logging context
	app.Use(middleware.ContextMiddleware())

	// Structured Logging middleware
	app.Use(middleware.StructuredLogger())

	// Prometheus HTTP metrics
	prom := fiberprometheus.New("promptvault")
	prom.RegisterAt(app, "/metrics")
	app.Use(prom.Middleware)

	// Global rate limiting (100 requests per minute per IP)
	app.Use(limiter.New(limiter.Config{
		Max:        100,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later.",
			})
		},
	}))

	origins := s.config.AllowedOrigins
	if origins == "" {
		origins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           86400, // 24 hours
	}))
}

// SetupRoutes configures all routes for the application
func (s *Server) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Health check
	api.Get("/", s.HealthCheck)

	// Auth routes
	auth := api.Group("/auth")
	auth.Post("/signup", middleware.RateLimit(s.redis, 3, 10*time.Minute, "signup"), s.Signup)
	auth.Post("/login", middleware.RateLimit(s.redis, 10, 5*time.Minute, "login"), s.Login)

	// Public browse/discovery routes
	publicPrompts := api.Group("/prompts")
	publicPrompts.Get("/", s.ListPrompts)
	publicPrompts.Get("/:id/comments", s.GetComments)
	publicPrompts.Get("/:id", s.GetPrompt)

	api.Get("/trending", s.GetTrending)
	api.Get("/leaderboard", s.GetLeaderboard)
	api.Get("/tags", s.GetTags)
	api.Get("/users/:id/prompts", s.GetUserPrompts)

	// Protected routes
	protected := api.Group("", s.AuthRequired())

	protected.Post("/auth/logout", s.Logout)

	// Session / navigation
	session := protected.Group("/session")
	session.Get("/", s.GetSession)
	session.Post("/navigate", s.Navigate)
	session.Delete("/param", s.ClearPageParam)

	// User routes
	users := protected.Group("/users")
	users.Get("/me", s.GetMyProfile)
	users.Put("/me", s.UpdateMyProfile)
	users.Get("/me/saved", s.GetSavedPrompts)
	users.Get("/", s.GetAllUsers)
	users.Get("/:id", s.GetUserProfile)

	// Protected prompt routes
	prompts := protected.Group("/prompts")
	prompts.Post("/", middleware.RateLimit(s.redis, 5, 5*time.Minute, "create_prompt"), s.CreatePrompt)
	prompts.Post("/:id/save", s.ToggleSave)
	prompts.Post("/:id/upvote", s.ToggleUpvote)
	prompts.Post("/:id/comments", middleware.RateLimit(s.redis, 10, time.Minute, "create_comment"), s.CreateComment)
}

// HealthCheck handles health check requests
func (s *Server) HealthCheck(c *fiber.Ctx) error {
	redisStatus := "healthy"
	if s.redis != nil {
		if err := s.redis.Ping(c.Context()).Err(); err != nil {
			redisStatus = "unhealthy"
		}
	} else {
		redisStatus = "unavailable"
	}

	return c.JSON(fiber.Map{
		"message": "Promptvault",
		"status":  "healthy",
		"checks": fiber.Map{
			"store": fiber.Map{
				"users":   len(s.store.Users()),
				"prompts": len(s.store.Prompts()),
			},
			"redis": redisStatus,
		},
		"time": time.Now(),
	})
}

// AuthRequired returns the authentication middleware. A request is accepted
// when it carries a valid token whose subject matches the store's live
// session; tokens outlive logout, so the session check is what actually
// revokes access.
func (s *Server) AuthRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		tokenString := ""
		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Authorization required"))
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(s.config.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid or expired token"))
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token claims"))
		}

		if issuer, issuerOk := claims["iss"].(string); !issuerOk || issuer != tokenIssuer {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token issuer"))
		}
		if audience, audienceOk := claims["aud"].(string); !audienceOk || audience != tokenAudience {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid token audience"))
		}

		sub, ok := claims["sub"].(string)
		if !ok || sub == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Invalid subject claim"))
		}

		current := s.store.CurrentUser()
		if current == nil || current.ID != sub {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthorizedError("Session expired"))
		}

		c.Locals("userID", sub)
		return c.Next()
	}
}
