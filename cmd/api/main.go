package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/brightsprout/childcare-api/internal/auth"
	"github.com/brightsprout/childcare-api/internal/config"
	dbpkg "github.com/brightsprout/childcare-api/internal/db"
	"github.com/brightsprout/childcare-api/internal/logger"
	"github.com/brightsprout/childcare-api/internal/middleware"
	"github.com/brightsprout/childcare-api/internal/routes"
)

func main() {

	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zlog.Sync()

	tokens, err := auth.NewTokenService(cfg)
	if err != nil {
		zlog.Fatal("failed to build token service", zap.Error(err))
	}

	db := dbpkg.NewDB(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	r.Use(middleware.RequestLogger(zlog))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, tokens)

	zlog.Info("server running", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		zlog.Fatal("failed to start server", zap.Error(err))
	}
}
