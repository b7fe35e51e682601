package clients

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/config"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *UserAccountsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	resolver := discovery.NewStatic(map[string]string{
		config.GatewayService: srv.URL,
	})
	return NewUserAccountsClient(resolver, 2*time.Second)
}

func TestAddAccountReturnsRemoteStatus(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"Success"}`))
	})

	status, err := c.AddAccount(context.Background(), "u1", 12345)
	require.NoError(t, err)
	assert.Equal(t, response.StatusSuccess, status)
	assert.Equal(t, "/user-services/addAccount/u1/12345", gotPath)
}

func TestRemoveAccountPassesThroughFallbackSentinel(t *testing.T) {
	// The remote side substituted its fallback: a 200 whose payload is an
	// error message. The client reports it verbatim with no error.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"User with ID does not exist."}`))
	})

	status, err := c.RemoveAccount(context.Background(), "u1", 12345)
	require.NoError(t, err)
	assert.NotEqual(t, response.StatusSuccess, status)
}

func TestAddAccountNonOKStatusIsAnError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := c.AddAccount(context.Background(), "u1", 12345)
	assert.Error(t, err)
}

func TestAddAccountUnreachableGateway(t *testing.T) {
	resolver := discovery.NewStatic(map[string]string{
		config.GatewayService: "http://127.0.0.1:1",
	})
	c := NewUserAccountsClient(resolver, 500*time.Millisecond)

	_, err := c.AddAccount(context.Background(), "u1", 12345)
	assert.Error(t, err)
}
