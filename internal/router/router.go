package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/stemsi/aprec-backend/docs" // registers the swagger document
	"github.com/stemsi/aprec-backend/internal/config"
	"github.com/stemsi/aprec-backend/internal/handler"
	"github.com/stemsi/aprec-backend/internal/middleware"
	"github.com/stemsi/aprec-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	System         *handler.SystemHandler
	StudentProfile *handler.StudentProfileHandler
	APClass        *handler.APClassHandler
	Recommendation *handler.RecommendationHandler
}

// allowedMethods is every method a browser may preflight.
var allowedMethods = []string{
	http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
	http.MethodPatch, http.MethodDelete, http.MethodOptions,
}

// allowedHeaders covers the request headers browsers and fetch clients send.
var allowedHeaders = []string{
	"Origin", "Accept", "Accept-Encoding", "Accept-Language", "Authorization",
	"Cache-Control", "Content-Type", "X-Requested-With", response.HeaderRequestID,
}

// SetupRouter configures global middleware and every route. recommendLimiter
// may be nil to leave /recommend unthrottled.
func SetupRouter(
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
	recommendLimiter *middleware.RateLimiter,
) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HandleMethodNotAllowed = true

	// ─── CORS ──────────────────────────────────────────────────────────
	// Credentials require an explicit origin list.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins
	corsConfig.AllowMethods = allowedMethods
	corsConfig.AllowHeaders = allowedHeaders
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID}
	corsConfig.AllowCredentials = true
	corsConfig.MaxAge = 12 * time.Hour

	router.Use(
		response.RequestIDMiddleware(),
		middleware.RequestLogger(log),
		middleware.Recovery(log),
		cors.New(corsConfig),
		middleware.Brotli(),
	)

	router.NoRoute(handlers.System.NotFound)
	router.NoMethod(handlers.System.MethodNotAllowed)

	// Liveness. Not part of the API document.
	router.GET("/", handlers.System.Health)

	// ─── API ───────────────────────────────────────────────────────────
	api := router.Group("/")
	api.Use(middleware.NoStore())
	{
		api.GET("/student-data", handlers.StudentProfile.ListStudentProfiles)
		api.GET("/ap-classes", handlers.APClass.ListOfferedClasses)

		recommend := []gin.HandlerFunc{handlers.Recommendation.Recommend}
		if recommendLimiter != nil {
			recommend = append([]gin.HandlerFunc{recommendLimiter.Middleware()}, recommend...)
		}
		api.GET("/recommend", recommend...)
	}

	// ─── Docs ──────────────────────────────────────────────────────────
	if cfg.SwaggerEnabled {
		docs := router.Group("/swagger")
		docs.Use(middleware.CacheControl(3600))
		{
			docs.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler,
				ginSwagger.URL("/swagger/doc.json"),
				ginSwagger.DefaultModelsExpandDepth(1),
			))
		}
	}

	return router
}
