package api

import (
	"github.com/gin-gonic/gin"

	"github.com/timmy/brandkit/internal/api/handler"
	"github.com/timmy/brandkit/internal/api/middleware"
	"github.com/timmy/brandkit/internal/logger"
	"github.com/timmy/brandkit/internal/repository"
	"github.com/timmy/brandkit/internal/service"
)

// RouterConfig holds the dependencies and options for the HTTP router.
type RouterConfig struct {
	Pipeline  *service.PipelineService
	BrandRepo *repository.BrandRepository
	JobRepo   *repository.JobRepository
	Logger    *logger.Logger
	Mode      string
	CORS      middleware.CORSConfig
}

// SetupRouter configures the Gin router with all routes.
func SetupRouter(cfg *RouterConfig) *gin.Engine {
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.LoggerMiddleware(cfg.Logger))
	r.Use(middleware.CORS(cfg.CORS))

	healthHandler := handler.NewHealthHandler()
	brandKitHandler := handler.NewBrandKitHandler(cfg.Pipeline)

	r.GET("/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/brandkit", brandKitHandler.Generate)

		if cfg.BrandRepo != nil && cfg.JobRepo != nil {
			recordHandler := handler.NewRecordHandler(cfg.BrandRepo, cfg.JobRepo)
			v1.GET("/records/:id", recordHandler.GetRecord)
			v1.GET("/stats", recordHandler.GetStats)
			v1.GET("/jobs/:id", recordHandler.GetJob)
		}
	}

	return r
}
