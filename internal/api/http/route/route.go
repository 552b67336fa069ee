package route

import (
	"io"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"frame-inbox/internal/api/http/handler"
	"frame-inbox/internal/api/http/middleware"
	"frame-inbox/internal/config"
)

const defaultMaxMultipartMemory = 32 << 20

func SetupRouter(
	log *zap.Logger,
	cfg *config.Config,
	healthHdl HealthHandler,
	frameHdl FrameHandler,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	gin.DefaultWriter = io.Discard

	router := gin.New()
	router.Use(gin.Recovery())

	router.MaxMultipartMemory = cfg.HTTPServer.MaxMultipartMemory
	if router.MaxMultipartMemory <= 0 {
		router.MaxMultipartMemory = defaultMaxMultipartMemory
	}

	// middleware
	router.Use(middleware.Logger(log))
	router.Use(middleware.RequestTimeout(cfg.HTTPServer.Timeout.Request))
	router.Use(middleware.CORS(cfg.HTTPServer.CORS))
	router.Use(middleware.RateLimit(cfg.HTTPServer.RateLimit))

	router.HandleMethodNotAllowed = true
	router.NoMethod(handler.NoMethod)
	router.NoRoute(handler.NoRoute)

	basePath := router.Group(cfg.HTTPServer.BasePath)

	docsPath := basePath.Group("/docs")
	RegisterDock(docsPath)

	healthPath := basePath.Group("/health")
	RegisterHealth(healthPath, healthHdl)

	framePath := basePath.Group("/frame")
	RegisterFrameRoutes(framePath, frameHdl)

	return router
}
