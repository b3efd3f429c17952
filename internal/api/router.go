package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/talentcast/jobposting-api/internal/api/handler"
	"github.com/talentcast/jobposting-api/internal/api/middleware"
	"github.com/talentcast/jobposting-api/internal/core/ports"

	_ "github.com/talentcast/jobposting-api/docs"
)

// Dependencies is everything the router needs to mount the API.
type Dependencies struct {
	Accounts ports.AccountService
	Jobs     ports.JobService
	Sessions ports.SessionVerifier
	Cookie   handler.SessionCookie
	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handler.Check
	// Prefix is the API root, e.g. "/api/v1".
	Prefix      string
	CORSOrigins []string
	Log         zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(deps.Log))
	origins := corsOrigins(deps.CORSOrigins)
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     origins,
		AllowCredentials: true,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodOptions},

		// Credentialed requests from "*" get the caller's origin echoed back.
		UnsafeWildcardOriginWithAllowCredentials: len(origins) == 1 && origins[0] == "*",
	}))

	// --- Probes, metrics and docs (no auth required) ---
	health := handler.NewHealthHandler(deps.Checks)
	e.GET("/health", health.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", health.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group(strings.TrimRight(deps.Prefix, "/"))

	// --- Account routes ---
	accounts := handler.NewAccountHandler(deps.Accounts, deps.Cookie)
	user := api.Group("/user")
	user.GET("/health", accounts.Health)
	user.POST("/signup", accounts.Signup)
	user.GET("/verify/:token", accounts.Verify)
	user.POST("/signin", accounts.Signin)

	// --- Job routes ---
	jobs := handler.NewJobHandler(deps.Jobs)
	gate := middleware.AuthGate(deps.Sessions)
	job := api.Group("/job")
	job.GET("/job-health", jobs.Health)
	job.POST("/post", jobs.Post, gate)
	job.GET("/:jobId/notifications", jobs.Notifications, gate)

	return e
}

// corsOrigins falls back to every origin.
func corsOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
