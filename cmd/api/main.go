package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InstitutRosalie/salon-scheduler/internal/config"
	dbpkg "github.com/InstitutRosalie/salon-scheduler/internal/db"
	"github.com/InstitutRosalie/salon-scheduler/internal/lock"
	"github.com/InstitutRosalie/salon-scheduler/internal/routes"
	"github.com/InstitutRosalie/salon-scheduler/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	// Redis é opcional: sem REDIS_ADDR o lock de créneau é desativado e a
	// proteção contra corrida fica por conta do índice único do banco.
	var locker lock.Locker
	if cfg.RedisAddr != "" {
		redisLock, err := lock.NewRedisLock(cfg.RedisAddr)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisLock.Close()
		locker = redisLock
	} else {
		log.Println("REDIS_ADDR not set, slot locking disabled")
	}

	uploader := storage.NewUploader(cfg)
	if uploader == nil {
		log.Println("S3 not configured, photo uploads disabled")
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker, uploader)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
