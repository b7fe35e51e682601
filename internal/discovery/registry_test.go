package discovery

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticResolve(t *testing.T) {
	r := NewStatic(map[string]string{
		"user-services": "http://localhost:8081",
	})

	url, err := r.Resolve(context.Background(), "user-services")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8081", url)
}

func TestStaticResolveUnknownService(t *testing.T) {
	r := NewStatic(map[string]string{})

	_, err := r.Resolve(context.Background(), "ghost-services")
	assert.Error(t, err)
}

func TestRegistryWithoutRedisFallsBack(t *testing.T) {
	static := NewStatic(map[string]string{
		"account-services": "http://localhost:8082",
	})
	r := NewRegistry(nil, static)

	// Register is a no-op without a client.
	r.Register(context.Background(), "account-services", "http://localhost:9999")

	url, err := r.Resolve(context.Background(), "account-services")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8082", url)
}
