// Package identity resolves bearer tokens against the marketplace identity
// service over HTTP.
package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"artmarket/internal/core/domain/services"
	"artmarket/internal/pkg/errs"
)

const verifyTimeout = 5 * time.Second

// verifyResponse is the identity service's token verification payload.
type verifyResponse struct {
	UserID int64  `json:"userId"`
	Role   string `json:"role"`
}

// Client verifies bearer tokens by calling the identity service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates an identity client for the service at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: verifyTimeout},
		logger:     logger.With("component", "IdentityClient"),
	}
}

// Verify resolves token into an authenticated actor.
// An expired or unknown token yields a ForbiddenError; transport failures and
// unexpected statuses are returned as plain errors so callers can distinguish
// "denied" from "identity service unavailable".
func (c *Client) Verify(ctx context.Context, token string) (services.Actor, error) {
	if token == "" {
		return services.Actor{}, errs.NewForbiddenError("verify identity")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/auth/verify", nil)
	if err != nil {
		return services.Actor{}, fmt.Errorf("build verify request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return services.Actor{}, fmt.Errorf("call identity service: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized, http.StatusForbidden:
		return services.Actor{}, errs.NewForbiddenError("verify identity")
	default:
		return services.Actor{}, fmt.Errorf("identity service returned status %d", resp.StatusCode)
	}

	var payload verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return services.Actor{}, fmt.Errorf("decode verify response: %w", err)
	}

	role, err := services.ParseRole(payload.Role)
	if err != nil {
		return services.Actor{}, fmt.Errorf("identity service returned unknown role %q", payload.Role)
	}
	if payload.UserID <= 0 {
		return services.Actor{}, fmt.Errorf("identity service returned invalid user id %d", payload.UserID)
	}

	return services.Actor{ID: payload.UserID, Role: role}, nil
}
