package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// syncUser upserts the authenticated caller into the user directory so
// invites addressed to their e-mail can be resolved. It must run after
// httpx.AuthnMiddleware.
func (r *Router) syncUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		claims, ok := httpx.ClaimsFromContext(ctx)
		if !ok {
			httpx.WriteError(w, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken, "Authentication required")
			return
		}

		id := claims.Identity()
		_, err := r.UserService.SyncUser(ctx, domain.User{
			ID:        id.Subject,
			Email:     domain.NormalizeEmail(id.Email),
			FirstName: id.GivenName,
			LastName:  id.FamilyName,
		})
		if err != nil {
			switch {
			case errors.Is(err, service.ErrProfileIncomplete):
				httpx.WriteError(w, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken, err.Error())
			case errors.Is(err, service.ErrEmailTaken):
				httpx.WriteError(w, http.StatusConflict, seosdk.ErrorCodeConflict, err.Error())
			default:
				slogx.FromContext(ctx).Error("failed to sync user", slog.Any("error", err))
				httpx.WriteError(w, http.StatusInternalServerError, seosdk.ErrorCodeServerError, "Internal server error")
			}
			return
		}

		next.ServeHTTP(w, req)
	})
}
