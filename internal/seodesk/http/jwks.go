package http

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/jwtx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// JWKSHandler exposes the keys of the local dev signer.
//
//	@Summary		Get JWKS
//	@Description	Returns the JSON Web Key Set of the development signer. Only mounted outside production.
//	@Tags			well-known
//	@Produce		json
//	@Success		200	{object}	jwtx.JWKS	"The JSON Web Key Set"
//	@Router			/.well-known/jwks.json [get].
func JWKSHandler(keys *jwtx.KeySet) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, keys.PublicJWKS())
	}
}

// DevTokenHandler mints access tokens for local development.
type DevTokenHandler struct {
	Dev *DevTokens
}

// ServeHTTP godoc
//
//	@Summary		Mint Dev Token
//	@Description	Sign an access token for the given identity with the development key. Only mounted outside production.
//	@Description	Scopes default to every API scope.
//	@Tags			Development
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.DevTokenRequest	true	"Identity"
//	@Success		200		{object}	seosdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	seosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/dev/token [post].
func (h *DevTokenHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req seosdk.DevTokenRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Subject) == "" {
		writeBadRequest(w, "sub is required")
		return
	}

	scopes := req.Scopes
	if len(scopes) == 0 {
		scopes = []string{ScopeSEORead, ScopeSEOWrite, ScopeMembersRead, ScopeMembersWrite}
	}
	ttl := h.Dev.TTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(jwtx.Identity{
		Subject:    req.Subject,
		Email:      domain.NormalizeEmail(req.Email),
		GivenName:  req.GivenName,
		FamilyName: req.FamilyName,
	}, scopes, ttl, h.Dev.Issuer, h.Dev.Audience, time.Now())

	token, err := h.Dev.Signer.Sign(claims)
	if err != nil {
		slogx.FromContext(r.Context()).Error("failed to sign dev token", slog.Any("error", err))
		httpx.WriteError(w, http.StatusInternalServerError, seosdk.ErrorCodeServerError, "Internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(ttl.Seconds()),
	})
}
