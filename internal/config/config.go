// Package config loads per-service configuration, environment first with
// sensible local-development defaults.
package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Logical service names used for discovery and routing.
const (
	GatewayService       = "api-gateway"
	UserService          = "user-services"
	AccountService       = "account-services"
	OperationService     = "operation-services"
	MiscellaneousService = "miscellaneous-services"
)

// Config carries everything a service binary needs at startup.
type Config struct {
	Port          string
	DataDir       string
	RedisAddr     string
	RemoteTimeout time.Duration

	// StrictCreate switches account creation from the legacy separate
	// existence-check-then-write to a single insert-if-absent, closing the
	// duplicate-create race. Off by default for compatibility.
	StrictCreate bool

	// ServiceURLs is the static fallback for discovery, keyed by logical
	// service name.
	ServiceURLs map[string]string
}

var defaultPorts = map[string]string{
	GatewayService:       "8080",
	UserService:          "8081",
	AccountService:       "8082",
	OperationService:     "8083",
	MiscellaneousService: "8084",
}

// Load reads configuration for the named service. Every value can be
// overridden through the environment (PORT, DATA_DIR, REDIS_ADDR,
// REMOTE_TIMEOUT, STRICT_CREATE, and <SERVICE>_URL per service).
func Load(service string) *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	v.SetDefault("port", defaultPorts[service])
	v.SetDefault("data_dir", "./data/"+service)
	v.SetDefault("redis_addr", "")
	v.SetDefault("remote_timeout", 5*time.Second)
	v.SetDefault("strict_create", false)

	urls := make(map[string]string, len(defaultPorts))
	for name, port := range defaultPorts {
		v.SetDefault(name+"_url", "http://localhost:"+port)
		urls[name] = v.GetString(name + "_url")
	}

	return &Config{
		Port:          v.GetString("port"),
		DataDir:       v.GetString("data_dir"),
		RedisAddr:     v.GetString("redis_addr"),
		RemoteTimeout: v.GetDuration("remote_timeout"),
		StrictCreate:  v.GetBool("strict_create"),
		ServiceURLs:   urls,
	}
}
