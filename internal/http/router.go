package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/ondrasimku/image-catalog-go/internal/http/handler"
	"github.com/ondrasimku/image-catalog-go/internal/http/middleware"
	"github.com/ondrasimku/image-catalog-go/internal/service"
)

// NewRouter wires the HTTP surface: upload, listing, delete, static blob
// serving and health. uploadDir is served as-is under /uploads, so stored
// blob names map directly to retrievable URLs.
func NewRouter(catalog service.CatalogService, uploadDir string, maxUploadSize int64, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.MaxMultipartMemory = maxUploadSize

	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(cors.Default())

	healthHandler := handler.NewHealthHandler()
	imagesHandler := handler.NewImagesHandler(catalog, maxUploadSize, log)

	router.GET("/health", healthHandler.Health)

	router.POST("/upload", imagesHandler.Upload)
	router.GET("/images", imagesHandler.List)
	router.DELETE("/images/:id", imagesHandler.Delete)

	router.Static("/uploads", uploadDir)

	return router
}
