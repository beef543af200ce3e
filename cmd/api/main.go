package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fswbarber/booking-api/internal/config"
	dbpkg "github.com/fswbarber/booking-api/internal/db"
	"github.com/fswbarber/booking-api/internal/middleware"
	"github.com/fswbarber/booking-api/internal/routes"
	"github.com/fswbarber/booking-api/internal/session"
	"github.com/fswbarber/booking-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store, err := session.NewRedisStore(context.Background(), cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}

	uploader := storage.NewS3Uploader(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, store, uploader, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
