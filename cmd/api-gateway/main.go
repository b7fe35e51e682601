package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/config"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/gateway"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	cfg := config.Load(config.GatewayService)

	registry := connectRegistry(cfg)
	registry.Register(context.Background(), config.GatewayService, "http://localhost:"+cfg.Port)

	proxy := gateway.NewProxy(registry, cfg.RemoteTimeout)

	router := gin.Default()
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok", "service": "api-gateway"})
	})

	router.Any("/"+config.UserService+"/*path", proxy.Route(config.UserService))
	router.Any("/"+config.AccountService+"/*path", proxy.Route(config.AccountService))
	router.Any("/"+config.OperationService+"/*path", proxy.Route(config.OperationService))
	router.Any("/"+config.MiscellaneousService+"/*path", proxy.Route(config.MiscellaneousService))

	logrus.Infof("API gateway starting on port %s", cfg.Port)
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
