package main

import (
	"log"
	"time"

	"artgallery-api/config"
	"artgallery-api/database"
	routes "artgallery-api/internal/app/http"
	"artgallery-api/internal/auth"
	"artgallery-api/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer database.Close(db)

	uploads := storage.New(cfg.UploadsDir)
	if err := uploads.EnsureDir(); err != nil {
		log.Fatal("Failed to create uploads directory: ", err)
	}

	tokens := auth.NewService(cfg.JWTSecret, cfg.TokenTTL)

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg.CORSOrigin)))

	routes.RegisterRoutes(r, routes.Deps{
		DB:          db,
		Tokens:      tokens,
		Uploads:     uploads,
		FrontendDir: cfg.FrontendDir,
	})

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}

// corsConfig allows a single configured origin with credentials, or any
// origin (without credentials) when none is configured.
func corsConfig(origin string) cors.Config {
	c := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if origin != "" {
		c.AllowOrigins = []string{origin}
		c.AllowCredentials = true
	} else {
		c.AllowAllOrigins = true
	}
	return c
}
