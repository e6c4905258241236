package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal-backend/internal/analyses"
	"jobportal-backend/internal/services/health"
	"jobportal-backend/internal/shared/auth"
	"jobportal-backend/internal/shared/config"
	"jobportal-backend/internal/shared/metrics"
	"jobportal-backend/internal/shared/server/middleware"
	"jobportal-backend/internal/shared/server/respond"
)

const rateGroupAnalyze = "ANALYZE"

// RouterDeps carries everything NewRouter registers.
type RouterDeps struct {
	Config          config.Config
	Verifier        *auth.Verifier
	Health          *health.Service
	AnalysisHandler *analyses.Handler
	Limiter         *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		status := deps.Health.Status(c.Request.Context())
		code := http.StatusOK
		if !status.OK {
			code = http.StatusServiceUnavailable
		}
		respond.JSON(c, code, status)
	})
	deps.AnalysisHandler.RegisterPublicRoutes(api)

	identified := api.Group("")
	identified.Use(middleware.Auth(deps.Verifier))
	registerMeRoutes(identified)

	users := identified.Group("")
	users.Use(
		middleware.RequireUser(),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: deps.Limiter,
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost {
					return rateGroupAnalyze
				}
				return ""
			},
			Rules: map[string]middleware.RateLimitRule{
				rateGroupAnalyze: {Rate: deps.Config.RateLimitRPS, Burst: deps.Config.RateLimitBurst},
			},
		}),
	)
	deps.AnalysisHandler.RegisterRoutes(users)

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
