package httpx

import (
	"net/http"
	"slices"
	"strings"

	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

// RequireAnyScope lets the request through when the token carries at least
// one of required. With no scopes listed any authenticated caller passes.
func RequireAnyScope(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		if len(required) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			granted := scopesFromCtx(r.Context())
			if slices.ContainsFunc(granted, func(s string) bool { return slices.Contains(required, s) }) {
				next.ServeHTTP(w, r)
				return
			}

			slogx.FromContext(r.Context()).Debug("insufficient scope",
				"required", required,
				"granted", granted,
			)
			w.Header().Set("WWW-Authenticate",
				`Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
			WriteError(w, http.StatusForbidden, "insufficient_scope", "missing scope: "+strings.Join(required, " or "))
		})
	}
}
