package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/config"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/middleware"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/misc"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cfg := config.Load(config.MiscellaneousService)

	accounts, err := docstore.Open[models.Account](cfg.DataDir, "accounts")
	if err != nil {
		logrus.Fatalf("Failed to open accounts collection: %v", err)
	}

	registry := connectRegistry(cfg)
	registry.Register(context.Background(), config.MiscellaneousService, "http://localhost:"+cfg.Port)

	handler := misc.NewHandler(misc.NewService(accounts), cfg.RemoteTimeout)

	router := gin.Default()
	router.Use(middleware.RequestLogging(config.MiscellaneousService))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	handler.RegisterRoutes(router)

	logrus.Infof("Miscellaneous service starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func connectRegistry(cfg *config.Config) *discovery.Registry {
	static := discovery.NewStatic(cfg.ServiceURLs)
	if cfg.RedisAddr == "" {
		return discovery.NewRegistry(nil, static)
	}
	client, err := discovery.Connect(cfg.RedisAddr)
	if err != nil {
		logrus.Warnf("Registry unavailable, using static addresses: %v", err)
		return discovery.NewRegistry(nil, static)
	}
	return discovery.NewRegistry(client, static)
}
