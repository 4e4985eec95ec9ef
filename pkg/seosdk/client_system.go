package seosdk

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service and its dependencies are ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// DevToken mints an access token from the development signer. Only
// available when the service runs with AUTH_DEV_TOKENS enabled.
func (c *Client) DevToken(ctx context.Context, req DevTokenRequest) (*TokenResponse, error) {
	var out TokenResponse
	if err := c.call(ctx, http.MethodPost, "/v1/dev/token", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetJWKS retrieves the development signer's public keys.
func (c *Client) GetJWKS(ctx context.Context) (*jwtx.JWKS, error) {
	var jwks jwtx.JWKS
	if err := c.call(ctx, http.MethodGet, "/.well-known/jwks.json", nil, &jwks, http.StatusOK); err != nil {
		return nil, err
	}
	return &jwks, nil
}
