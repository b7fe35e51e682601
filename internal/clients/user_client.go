// Package clients holds the synchronous HTTP clients one service uses to
// call another. Calls are addressed by logical name, resolved via discovery,
// and routed through the edge gateway like every other inbound request.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/config"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/discovery"
	"github.com/vinod-godara/MicroServicesNAGPAssignment/internal/response"
)

// UserAccountsClient mutates the account list owned by the user service. The
// returned string is the status payload of the remote response: the remote
// side substitutes fallback sentinels for its own failures, so a non-Success
// status can arrive on a perfectly healthy HTTP 200.
type UserAccountsClient struct {
	resolver discovery.Resolver
	http     *http.Client
	log      *logrus.Entry
}

func NewUserAccountsClient(resolver discovery.Resolver, timeout time.Duration) *UserAccountsClient {
	return &UserAccountsClient{
		resolver: resolver,
		http:     &http.Client{Timeout: timeout},
		log:      logrus.WithField("client", "user-accounts"),
	}
}

// AddAccount asks the user service to append accountNO to the user's account
// list. Returns the remote status payload.
func (c *UserAccountsClient) AddAccount(ctx context.Context, userID string, accountNO int64) (string, error) {
	return c.post(ctx, "addAccount", userID, accountNO)
}

// RemoveAccount asks the user service to drop accountNO from the user's
// account list.
func (c *UserAccountsClient) RemoveAccount(ctx context.Context, userID string, accountNO int64) (string, error) {
	return c.post(ctx, "removeAccount", userID, accountNO)
}

func (c *UserAccountsClient) post(ctx context.Context, operation, userID string, accountNO int64) (string, error) {
	base, err := c.resolver.Resolve(ctx, config.GatewayService)
	if err != nil {
		return "", fmt.Errorf("resolve gateway: %w", err)
	}

	url := fmt.Sprintf("%s/%s/%s/%s/%s",
		base, config.UserService, operation, userID, strconv.FormatInt(accountNO, 10))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.WithError(err).Errorf("Remote call %s failed.", operation)
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s returned status %d", operation, resp.StatusCode)
	}

	var status response.Status
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return "", fmt.Errorf("decode %s response: %w", operation, err)
	}
	return status.Status, nil
}
