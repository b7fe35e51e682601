// Package discovery resolves logical service names to base URLs. Services
// register themselves in Redis at startup; resolution falls back to a static
// env-configured map when Redis is unreachable or has no entry.
package discovery

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "bank:services:"

// Resolver maps a logical service name to a base URL.
type Resolver interface {
	Resolve(ctx context.Context, service string) (string, error)
}

// Static resolves from a fixed name-to-URL map.
type Static struct {
	urls map[string]string
}

func NewStatic(urls map[string]string) *Static {
	return &Static{urls: urls}
}

func (s *Static) Resolve(_ context.Context, service string) (string, error) {
	url, ok := s.urls[service]
	if !ok || url == "" {
		return "", fmt.Errorf("no address configured for service %q", service)
	}
	return url, nil
}

// Registry is a Redis-backed resolver with a static fallback. A nil client
// degrades to pure static resolution.
type Registry struct {
	client   *redis.Client
	fallback Resolver
	log      *logrus.Entry
}

func NewRegistry(client *redis.Client, fallback Resolver) *Registry {
	return &Registry{
		client:   client,
		fallback: fallback,
		log:      logrus.WithField("component", "discovery"),
	}
}

// Register announces this instance's base URL under the service's key.
// Registration failure is logged, not fatal: static resolution still works.
func (r *Registry) Register(ctx context.Context, service, baseURL string) {
	if r.client == nil {
		return
	}
	if err := r.client.Set(ctx, keyPrefix+service, baseURL, 0).Err(); err != nil {
		r.log.WithError(err).Warnf("Could not register service %s.", service)
	}
}

func (r *Registry) Resolve(ctx context.Context, service string) (string, error) {
	if r.client != nil {
		url, err := r.client.Get(ctx, keyPrefix+service).Result()
		if err == nil && url != "" {
			return url, nil
		}
		if err != nil && err != redis.Nil {
			r.log.WithError(err).Warnf("Registry lookup failed for %s, using static address.", service)
		}
	}
	return r.fallback.Resolve(ctx, service)
}

// Connect dials Redis and verifies the connection. Callers treat a nil
// client as "no registry" and rely on static resolution.
func Connect(addr string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("connect to redis: %w", err)
	}
	return client, nil
}
