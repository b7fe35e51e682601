package account

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/docstore"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/models"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

func newTestRouter(t *testing.T, users UserAccounts) (*gin.Engine, *docstore.Collection[models.Account]) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	accounts, err := docstore.Open[models.Account](t.TempDir(), "accounts")
	require.NoError(t, err)

	h := NewHandler(NewService(accounts, users, false), time.Second)
	r := gin.New()
	h.RegisterRoutes(r)
	return r, accounts
}

func doRequest(router *gin.Engine, method, url, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req, _ = http.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

const validAccountBody = `{"userID":"u1","accountNO":100,"branch":"Main","isActive":true}`

func TestCreateNewAccountEndpoint(t *testing.T) {
	router, accounts := newTestRouter(t, &mockUserAccounts{})

	w := doRequest(router, http.MethodPost, "/createNewAccount", validAccountBody)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	_, ok := accounts.FindByID("100")
	if !ok {
		t.Fatal("account not persisted")
	}
}

// Create is the one endpoint without a fallback wrapper: its failures come
// back as raw HTTP errors rather than a 200 with a sentinel payload.
func TestCreateNewAccountErrorsPropagateRaw(t *testing.T) {
	mock := &mockUserAccounts{
		addFn: func(context.Context, string, int64) (string, error) {
			return response.StatusError, nil
		},
	}
	router, accounts := newTestRouter(t, mock)

	w := doRequest(router, http.MethodPost, "/createNewAccount", validAccountBody)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if _, ok := accounts.FindByID("100"); ok {
		t.Fatal("account must not be persisted on peer failure")
	}
}

func TestCloseAccountWrappedFailureIsSentinel(t *testing.T) {
	router, _ := newTestRouter(t, &mockUserAccounts{})

	// Closing a missing account: a wrapped operation, so the not-found
	// error is swallowed and the sentinel comes back under a 200.
	w := doRequest(router, http.MethodPost, "/closeAccount/999", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var s response.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	if s.Status != response.StatusError {
		t.Fatalf("expected Error sentinel, got %q", s.Status)
	}
}

func TestCloseAccountEndpoint(t *testing.T) {
	router, accounts := newTestRouter(t, &mockUserAccounts{})
	doRequest(router, http.MethodPost, "/createNewAccount", validAccountBody)

	w := doRequest(router, http.MethodPost, "/closeAccount/100", "")
	var s response.Status
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &s))
	if s.Status != response.StatusSuccess {
		t.Fatalf("expected Success, got %q", s.Status)
	}

	stored, _ := accounts.FindByID("100")
	if stored.IsActive {
		t.Fatal("account should be inactive after close")
	}
}

func TestGetTransactionSummaryFallbackIsNull(t *testing.T) {
	router, _ := newTestRouter(t, &mockUserAccounts{})

	w := doRequest(router, http.MethodGet, "/getTransactionSummary/999", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body := strings.TrimSpace(w.Body.String()); body != "null" {
		t.Fatalf("expected null fallback body, got %s", body)
	}
}
