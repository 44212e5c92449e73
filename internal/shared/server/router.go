package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/assets"
	googleauth "portfolio-backend/internal/auth"
	"portfolio-backend/internal/content"
	"portfolio-backend/internal/services/health"
	"portfolio-backend/internal/shared/config"
	"portfolio-backend/internal/shared/metrics"
	"portfolio-backend/internal/shared/server/middleware"
	"portfolio-backend/internal/shared/server/respond"
)

// RouterDeps carries the handlers the router wires up.
type RouterDeps struct {
	Config         config.Config
	ContentHandler *content.Handler
	AssetsHandler  *assets.Handler
	GoogleAuth     *googleauth.GoogleService
	Health         *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
// Reads (content, assets) are public; every mutation sits behind admin auth
// and a rate limit.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	api := r.Group("/api/v1")

	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, deps.Health.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.GoogleAuth != nil {
		deps.GoogleAuth.RegisterRoutes(api)
	}
	if deps.ContentHandler != nil {
		deps.ContentHandler.RegisterPublicRoutes(api)
	}
	if deps.AssetsHandler != nil {
		deps.AssetsHandler.RegisterPublicRoutes(api)
	}

	admin := api.Group("")
	admin.Use(
		middleware.RequireAdmin(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"MUTATE": {Rate: 5, Burst: 10},
			},
			DefaultGroup: "MUTATE",
		}),
	)
	registerMeRoutes(admin)
	if deps.ContentHandler != nil {
		deps.ContentHandler.RegisterAdminRoutes(admin)
	}
	if deps.AssetsHandler != nil {
		deps.AssetsHandler.RegisterAdminRoutes(admin)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
