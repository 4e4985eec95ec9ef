package http

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
	"github.com/aussiebroadwan/seodesk/pkg/slogx"
)

const (
	msgInviteAccepted = "Successfully accepted the invitation"
	msgInviteRejected = "Invitation rejected successfully"
	msgInviteRevoked  = "Invitation revoked successfully"
)

type InviteHandler struct {
	InviteService *service.InviteService
	FrontendURL   string
}

// HandleCreate godoc
//
//	@Summary		Invite Member
//	@Description	Invite an e-mail address to a website. The invite stays PENDING for 7 days and an e-mail with the accept link is sent.
//	@Description	Fails with 409 while a pending invite exists or when the address already belongs to a member.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			websiteId	path		string						true	"Website ID"
//	@Param			request		body		seosdk.CreateInviteRequest	true	"Invite request"
//	@Success		201			{object}	seosdk.Invite				"Created invite including its token"
//	@Failure		400			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		409			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/invite/websites/{websiteId} [post].
func (h *InviteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.CreateInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeBadRequest(w, "email is required")
		return
	}

	inv, err := h.InviteService.Issue(r.Context(), r.PathValue("websiteId"), req.Email, userID, req.Message)
	if err != nil {
		writeServiceError(w, r, err, "failed to create invite")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvite(inv))
}

// HandleBulk godoc
//
//	@Summary		Bulk Invite Member
//	@Description	Invite one e-mail address to several websites. Websites that fail (no access, pending invite, already a member) are skipped.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.BulkInviteRequest	true	"Bulk invite request"
//	@Success		201		{array}		seosdk.Invite				"Created invites"
//	@Failure		400		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/invite/bulk [post].
func (h *InviteHandler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.BulkInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeBadRequest(w, "email is required")
		return
	}
	if len(req.WebsiteIDs) == 0 {
		writeBadRequest(w, "websiteIds is required")
		return
	}

	invites, err := h.InviteService.BulkIssue(r.Context(), req.Email, req.WebsiteIDs, userID, req.Message)
	if err != nil {
		writeServiceError(w, r, err, "failed to bulk invite")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toInvites(invites))
}

// HandleList godoc
//
//	@Summary		List Website Invites
//	@Description	List a website's invites, newest first. status filters case-insensitively.
//	@Tags			Invitations
//	@Produce		json
//	@Param			websiteId	path		string								true	"Website ID"
//	@Param			page		query		int									false	"Page (default 1)"
//	@Param			limit		query		int									false	"Page size (default 10, max 100)"
//	@Param			status		query		string								false	"PENDING, ACCEPTED, REJECTED, EXPIRED or REVOKED"
//	@Success		200			{object}	seosdk.Page[seosdk.Invite]	"Page of invites"
//	@Failure		400			{object}	seosdk.ErrorResponse				"error, error_description"
//	@Failure		403			{object}	seosdk.ErrorResponse				"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse				"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/invites/website/{websiteId} [get].
func (h *InviteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := h.InviteService.List(r.Context(), r.PathValue("websiteId"), userID,
		pageRequest(r), r.URL.Query().Get("status"))
	if err != nil {
		writeServiceError(w, r, err, "failed to list invites")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.Page[seosdk.Invite]{
		Items:      toInvites(page.Items),
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// HandleGetByToken godoc
//
//	@Summary		Get Invite By Token
//	@Description	Public lookup used by the accept page. Only PENDING, unexpired invites are returned.
//	@Tags			Invitations
//	@Produce		json
//	@Param			token	path		string					true	"Invite token"
//	@Success		200		{object}	seosdk.Invite			"Invite"
//	@Failure		400		{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404		{object}	seosdk.ErrorResponse	"error, error_description"
//	@Router			/v1/members/invite/{token} [get].
func (h *InviteHandler) HandleGetByToken(w http.ResponseWriter, r *http.Request) {
	inv, err := h.InviteService.GetByToken(r.Context(), r.PathValue("token"))
	if err != nil {
		writeServiceError(w, r, err, "failed to look up invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}

// HandleAcceptLink godoc
//
//	@Summary		Accept Invite Link
//	@Description	Accepts the invite and redirects to the dashboard with inviteAccepted=true, or with inviteError=<message> on failure.
//	@Tags			Invitations
//	@Param			token	path	string	true	"Invite token"
//	@Success		302		"Redirect to the frontend"
//	@Router			/v1/members/invite/accept/{token} [get].
func (h *InviteHandler) HandleAcceptLink(w http.ResponseWriter, r *http.Request) {
	target := strings.TrimRight(h.FrontendURL, "/") + "/dashboard"

	if _, err := h.InviteService.Accept(r.Context(), r.PathValue("token")); err != nil {
		status, _, desc := errorStatus(err)
		if status >= http.StatusInternalServerError {
			slogx.FromContext(r.Context()).Error("failed to accept invite link", slog.Any("error", err))
		}
		http.Redirect(w, r, target+"?inviteError="+url.QueryEscape(desc), http.StatusFound)
		return
	}

	http.Redirect(w, r, target+"?inviteAccepted=true", http.StatusFound)
}

// HandleAccept godoc
//
//	@Summary		Accept Invite
//	@Description	Redeem an invite token. The invitee must have signed in once so their account can be found by e-mail.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.AcceptInviteRequest	true	"Invite token"
//	@Success		200		{object}	seosdk.AcceptInviteResponse	"member, message"
//	@Failure		400		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		409		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members/invite/accept [post].
func (h *InviteHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	var req seosdk.AcceptInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.Token == "" {
		writeBadRequest(w, "token is required")
		return
	}

	m, err := h.InviteService.Accept(r.Context(), req.Token)
	if err != nil {
		writeServiceError(w, r, err, "failed to accept invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.AcceptInviteResponse{
		Member:  toMember(m),
		Message: msgInviteAccepted,
	})
}

// HandleReject godoc
//
//	@Summary		Reject Invite
//	@Description	Decline an invite with an optional reason.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			token	path		string						true	"Invite token"
//	@Param			request	body		seosdk.RejectInviteRequest	false	"Optional reason"
//	@Success		200		{object}	seosdk.MessageResponse		"message"
//	@Failure		400		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Router			/v1/members/invite/{token}/reject [post].
func (h *InviteHandler) HandleReject(w http.ResponseWriter, r *http.Request) {
	var req seosdk.RejectInviteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	if err := h.InviteService.Reject(r.Context(), r.PathValue("token"), req.Reason); err != nil {
		writeServiceError(w, r, err, "failed to reject invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.MessageResponse{Message: msgInviteRejected})
}

// HandleRevoke godoc
//
//	@Summary		Revoke Invite
//	@Description	Withdraw a PENDING invite.
//	@Tags			Invitations
//	@Produce		json
//	@Param			inviteId	path		string					true	"Invite ID"
//	@Success		200			{object}	seosdk.MessageResponse	"message"
//	@Failure		400			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/invite/{inviteId}/revoke [delete].
func (h *InviteHandler) HandleRevoke(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.InviteService.Revoke(r.Context(), r.PathValue("inviteId"), userID); err != nil {
		writeServiceError(w, r, err, "failed to revoke invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.MessageResponse{Message: msgInviteRevoked})
}

// HandleResend godoc
//
//	@Summary		Resend Invite
//	@Description	Rotate the token of a PENDING invite, extend its expiry by 7 days and e-mail it again.
//	@Tags			Invitations
//	@Produce		json
//	@Param			inviteId	path		string					true	"Invite ID"
//	@Success		200			{object}	seosdk.Invite			"Invite with its new token"
//	@Failure		400			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		403			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/invite/{inviteId}/resend [post].
func (h *InviteHandler) HandleResend(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	inv, err := h.InviteService.Resend(r.Context(), r.PathValue("inviteId"), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to resend invite")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toInvite(inv))
}
