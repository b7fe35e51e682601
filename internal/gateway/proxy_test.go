package gateway

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
)

func TestProxyForwardsAndStripsPrefix(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var gotPath string
	backend := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"Success"}`))
	}))
	defer backend.Close()

	resolver := discovery.NewStatic(map[string]string{
		"user-services": backend.URL,
	})
	p := NewProxy(resolver, 2*time.Second)

	r := gin.New()
	r.Any("/user-services/*path", p.Route("user-services"))

	req, _ := http.NewRequest(http.MethodPost, "/user-services/addAccount/u1/100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotPath != "/addAccount/u1/100" {
		t.Fatalf("expected stripped path, got %q", gotPath)
	}
	if w.Body.String() != `{"status":"Success"}` {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestProxyUnreachableServiceReturnsFixedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := discovery.NewStatic(map[string]string{
		"user-services": "http://127.0.0.1:1",
	})
	p := NewProxy(resolver, 500*time.Millisecond)

	r := gin.New()
	r.Any("/user-services/*path", p.Route("user-services"))

	req, _ := http.NewRequest(http.MethodPost, "/user-services/addAccount/u1/100", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != proxyErrorBody {
		t.Fatalf("expected fixed error body, got %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected plain-text error body, got content type %q", ct)
	}
}

func TestProxyUnknownServiceReturnsFixedBody(t *testing.T) {
	gin.SetMode(gin.TestMode)

	p := NewProxy(discovery.NewStatic(map[string]string{}), time.Second)
	r := gin.New()
	r.Any("/ghost-services/*path", p.Route("ghost-services"))

	req, _ := http.NewRequest(http.MethodGet, "/ghost-services/anything", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
}
