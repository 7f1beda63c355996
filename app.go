package main

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"tamrah/internal/config"
	"tamrah/internal/handlers"
	"tamrah/internal/middleware"
	"tamrah/internal/repositories"
	"tamrah/internal/services"
)

// appDeps are the stores and collaborators the HTTP app is built on.
// publisher and identity may be nil.
type appDeps struct {
	cfg       *config.Config
	dateTypes repositories.DateTypeRepository
	blobs     repositories.BlobRepository
	prefs     repositories.PreferenceRepository
	publisher services.EventPublisher
	identity  services.IdentityProvider
	// checks report dependency health on /health, keyed by name.
	checks map[string]func() error
}

// newAdminAuthenticator chains every authenticator the config enables,
// session cookie first.
func newAdminAuthenticator(cfg *config.Config, identity services.IdentityProvider) services.Authenticator {
	var chain []services.Authenticator
	if identity != nil {
		chain = append(chain, services.NewIdentitySessionAuthenticator(identity))
	}
	if cfg.JWTSecret != "" {
		chain = append(chain, services.NewJWTAuthenticator(cfg.JWTSecret))
	}
	if cfg.AdminAPIKeyHash != "" {
		chain = append(chain, services.NewAPIKeyAuthenticator(cfg.AdminAPIKeyHash))
	}
	return services.NewChainAuthenticator(chain...)
}

// newApp wires services, handlers and middleware into a Fiber app.
func newApp(deps appDeps) (*fiber.App, *services.DateTypeService) {
	cfg := deps.cfg

	// --- Initialize Services ---
	dateTypeService := services.NewDateTypeService(deps.dateTypes, deps.publisher)
	recommendationService := services.NewRecommendationService(deps.dateTypes)
	priceService := services.NewPriceService(deps.dateTypes)
	imageService := services.NewImageService(deps.blobs)
	preferenceService := services.NewPreferenceService(deps.prefs, cfg.PreferenceTTL)
	authService := services.NewAuthService(deps.identity, newAdminAuthenticator(cfg, deps.identity))

	// --- Initialize Handlers ---
	dateTypeHandler := handlers.NewDateTypeHandler(dateTypeService, preferenceService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, priceService)
	preferenceHandler := handlers.NewPreferenceHandler(preferenceService, cfg.PreferenceTTL)
	imageHandler := handlers.NewImageHandler(imageService, int64(cfg.MaxUploadBytes))
	authHandler := handlers.NewAuthHandler(authService, cfg.SessionCookie)

	// --- Initialize Fiber App ---
	app := fiber.New(fiber.Config{
		AppName:     "tamrah",
		BodyLimit:   cfg.MaxUploadBytes + 1<<20,
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	// --- Middleware ---
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(middleware.RequestLogger())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowCredentials: cfg.CORSAllowOrigins != "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, " + middleware.AdminKeyHeader,
	}))

	// --- Health and Metrics ---
	app.Get("/health", func(c *fiber.Ctx) error {
		status := fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		}
		code := fiber.StatusOK
		for name, check := range deps.checks {
			if err := check(); err != nil {
				status[name] = err.Error()
				status["status"] = "degraded"
				code = fiber.StatusServiceUnavailable
				continue
			}
			status[name] = "ok"
		}
		return c.Status(code).JSON(status)
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// --- API Routes ---
	api := app.Group("/api")
	gate := middleware.AdminRequired(authService, cfg.SessionCookie)
	adminChain := []fiber.Handler{gate}
	if cfg.RateLimitRequests > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
		limiter.StartCleanup(10 * time.Minute)
		app.Hooks().OnShutdown(func() error {
			limiter.Stop()
			return nil
		})
		limited := middleware.RateLimit(limiter)
		api.Use("/sessions", limited)
		adminChain = []fiber.Handler{limited, gate}
	}

	dateTypeHandler.RegisterRoutes(api)
	recommendationHandler.RegisterRoutes(api)
	preferenceHandler.RegisterRoutes(api)
	imageHandler.RegisterRoutes(api)
	authHandler.RegisterRoutes(api)
	authHandler.RegisterAdminRoutes(api, gate)

	// Admin routes (gate runs before any store access)
	admin := api.Group("/admin", adminChain...)
	dateTypeHandler.RegisterAdminRoutes(admin)
	imageHandler.RegisterAdminRoutes(admin)

	return app, dateTypeService
}
