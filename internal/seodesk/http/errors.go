package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/llm"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

type errorMapping struct {
	err    error
	status int
	code   string
}

// serviceErrors maps service sentinels to responses. The sentinel text is
// the user-visible description.
var serviceErrors = []errorMapping{
	// 404
	{service.ErrWebsiteNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrInviteNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrInviteNotFoundOrExpired, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrNoAccount, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrMemberNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrUserNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrKeywordNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrPrimaryKeywordNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrArticleNotFound, http.StatusNotFound, seosdk.ErrorCodeNotFound},
	{service.ErrScrapingIncomplete, http.StatusNotFound, seosdk.ErrorCodeNotFound},

	// 409
	{service.ErrPendingInviteExists, http.StatusConflict, seosdk.ErrorCodeConflict},
	{service.ErrEmailAlreadyMember, http.StatusConflict, seosdk.ErrorCodeConflict},
	{service.ErrAlreadyMember, http.StatusConflict, seosdk.ErrorCodeConflict},
	{service.ErrInviteAlreadyProcessed, http.StatusConflict, seosdk.ErrorCodeConflict},
	{service.ErrEmailTaken, http.StatusConflict, seosdk.ErrorCodeConflict},

	// 400
	{service.ErrInviteNotPending, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInviteExpired, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvitationNotValid, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvitationExpired, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrOnlyPendingRevocable, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrOnlyPendingResend, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidEmail, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidStatus, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidURL, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrArticleExists, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidRequest, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},
	{service.ErrInvalidArticleStatus, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest},

	// 401 / 403
	{service.ErrProfileIncomplete, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken},
	{service.ErrForbidden, http.StatusForbidden, seosdk.ErrorCodeForbidden},
}

// errorStatus resolves err to a status, code and description. Unknown
// errors are 500 with a generic description.
func errorStatus(err error) (int, string, string) {
	// The state error renders the actual status ("... been accepted").
	var stateErr *service.InviteStateError
	if errors.As(err, &stateErr) {
		return http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest, stateErr.Error()
	}

	for _, m := range serviceErrors {
		if errors.Is(err, m.err) {
			return m.status, m.code, m.err.Error()
		}
	}

	if errors.Is(err, llm.ErrNotConfigured) {
		return http.StatusServiceUnavailable, seosdk.ErrorCodeServerError, "AI provider is not configured"
	}
	return http.StatusInternalServerError, seosdk.ErrorCodeServerError, "Internal server error"
}

// writeServiceError writes the response for a service error. Unexpected
// errors are logged with msg.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	status, code, desc := errorStatus(err)
	if status >= http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error(msg, slog.Any("error", err))
	}
	httpx.WriteError(w, status, code, desc)
}

// writeBadRequest reports a malformed request.
func writeBadRequest(w http.ResponseWriter, desc string) {
	httpx.WriteError(w, http.StatusBadRequest, seosdk.ErrorCodeInvalidRequest, desc)
}

// callerID returns the authenticated user, writing a 401 when absent.
func callerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := httpx.UserID(r.Context())
	if userID == "" {
		httpx.WriteError(w, http.StatusUnauthorized, seosdk.ErrorCodeInvalidToken, "Authentication required")
		return "", false
	}
	return userID, true
}

// pageRequest reads page and limit query parameters. Missing or malformed
// values fall back to the defaults.
func pageRequest(r *http.Request) domain.PageRequest {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	return domain.NewPageRequest(page, limit)
}
