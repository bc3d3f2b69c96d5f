package routes

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	artworksapi "artgallery-api/internal/api/artworks"
	authapi "artgallery-api/internal/api/auth"
	galleriesapi "artgallery-api/internal/api/galleries"
	usersapi "artgallery-api/internal/api/users"
	"artgallery-api/internal/app/http/middleware"
	"artgallery-api/internal/auth"
	"artgallery-api/internal/storage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps carries everything the handlers need; nothing is reached through
// package globals.
type Deps struct {
	DB      *gorm.DB
	Tokens  *auth.Service
	Uploads *storage.Store

	// FrontendDir points at a built SPA bundle. Empty or missing means the
	// API runs headless.
	FrontendDir string
}

func RegisterRoutes(r *gin.Engine, deps Deps) {
	authHandler := authapi.NewHandler(deps.DB, deps.Tokens)
	userHandler := usersapi.NewHandler(deps.DB)
	galleryHandler := galleriesapi.NewHandler(deps.DB, deps.Uploads)
	artworkHandler := artworksapi.NewHandler(deps.DB, deps.Uploads)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	public := api.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/users/register", authHandler.Register)
	public.POST("/users/login", authHandler.Login)

	api.GET("/users", userHandler.List)
	api.GET("/users/:id", userHandler.GetByID)
	api.GET("/users/:id/galleries", userHandler.ListGalleries)
	api.GET("/users/:id/artworks", userHandler.ListArtworks)

	api.GET("/galleries", galleryHandler.List)
	api.GET("/galleries/featured", galleryHandler.ListFeatured)
	api.GET("/galleries/:id", galleryHandler.GetByID)
	api.GET("/galleries/:id/artworks", galleryHandler.ListArtworks)

	api.GET("/artworks/:id", artworkHandler.GetByID)

	// Writes require a resolved caller.
	protected := api.Group("/")
	protected.Use(middleware.RequireUser(deps.DB, deps.Tokens))
	protected.POST("/galleries", galleryHandler.Create)
	protected.POST("/artworks", artworkHandler.Create)

	r.Static("/uploads", deps.Uploads.Dir)

	registerFrontend(r, deps.FrontendDir)
}

// registerFrontend serves a built SPA bundle when one exists: its static
// assets directly, and index.html for any unmatched non-API path. Unmatched
// API paths stay 404.
func registerFrontend(r *gin.Engine, dir string) {
	index := ""
	if dir != "" {
		if _, err := os.Stat(filepath.Join(dir, "index.html")); err == nil {
			index = filepath.Join(dir, "index.html")
			r.Static("/assets", filepath.Join(dir, "assets"))
		}
	}

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"error": "API endpoint not found"})
			return
		}
		if index == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		c.File(index)
	})
}
