package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	// Registers the OpenAPI document served under /swagger.
	_ "github.com/nightshift/gigboard/docs"
	"github.com/nightshift/gigboard/internal/api/handler"
	"github.com/nightshift/gigboard/internal/api/middleware"
	"github.com/nightshift/gigboard/internal/core/ports"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Auth         ports.AuthService
	Jobs         ports.JobService
	Queries      ports.QueryService
	Applications ports.ApplicationService
	Reviews      ports.ReviewService
	Catalog      ports.CatalogService
	// Revoker may be nil; revoked tokens are then accepted until they expire.
	Revoker ports.TokenRevoker
	// Checks are probed by /health/ready, keyed by dependency name.
	Checks       map[string]handler.Check
	JWTSecret    string
	ApplyLimiter *middleware.RateLimiter
	Log          zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Log))
	e.Use(echoprometheus.NewMiddleware("gigboard"))

	authHandler := handler.NewAuthHandler(d.Auth)
	jobHandler := handler.NewJobHandler(d.Jobs, d.Queries)
	appHandler := handler.NewApplicationHandler(d.Applications)
	reviewHandler := handler.NewReviewHandler(d.Reviews)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	requireAuth := middleware.Auth(d.JWTSecret, d.Revoker)

	applyLimit := d.ApplyLimiter
	if applyLimit == nil {
		applyLimit = middleware.NewRateLimiter(0, 0)
	}

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, requireAuth)
	e.GET("/auth/me", authHandler.Me, requireAuth)

	// --- Public lookups ---
	pub := e.Group("/v1")
	pub.GET("/filters", catalogHandler.Filters)
	pub.GET("/roles", catalogHandler.Roles)
	pub.GET("/venues", catalogHandler.Venues)
	pub.GET("/cities", catalogHandler.Cities)

	// --- Authenticated API ---
	v1 := e.Group("/v1", requireAuth)
	v1.POST("/venues", catalogHandler.CreateVenue)

	v1.GET("/jobs", jobHandler.List)
	v1.POST("/jobs", jobHandler.Create)
	v1.GET("/jobs/:id", jobHandler.Get)
	v1.PUT("/jobs/:id", jobHandler.Update)
	v1.DELETE("/jobs/:id", jobHandler.Delete)
	v1.POST("/jobs/:id/apply", appHandler.Apply, applyLimit.Limit())
	v1.GET("/jobs/:id/applicants", reviewHandler.ForJob)
	v1.PUT("/jobs/:id/applicants/:applicant_id", reviewHandler.Answer)

	v1.GET("/my-jobs", jobHandler.ListMine)
	v1.GET("/my-jobs/applicants", reviewHandler.Grouped)

	v1.GET("/applications/me", appHandler.ListMine)
	v1.GET("/applications/:id", appHandler.Get)
	v1.PUT("/applications/:id", appHandler.SetStatus)
	v1.DELETE("/applications/:id", appHandler.Withdraw)

	v1.GET("/history/posted-jobs", jobHandler.History)
	v1.DELETE("/history/posted-jobs/:id", jobHandler.Purge)
	v1.GET("/history/applications", appHandler.History)

	// --- Health probes, metrics and docs (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(d.Checks)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
