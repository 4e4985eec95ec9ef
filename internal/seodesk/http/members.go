package http

import (
	"net/http"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

const msgMemberRemoved = "Member removed successfully"

type MemberHandler struct {
	MemberService *service.MemberService
}

// HandleList godoc
//
//	@Summary		List Website Members
//	@Description	List a website's members with user details, newest first. Inactive members are included.
//	@Tags			Members
//	@Produce		json
//	@Param			websiteId	path		string						true	"Website ID"
//	@Param			page		query		int							false	"Page (default 1)"
//	@Param			limit		query		int							false	"Page size (default 10, max 100)"
//	@Success		200			{object}	seosdk.Page[seosdk.Member]	"Page of members"
//	@Failure		403			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/website/{websiteId} [get].
func (h *MemberHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	page, err := h.MemberService.List(r.Context(), r.PathValue("websiteId"), userID, pageRequest(r))
	if err != nil {
		writeServiceError(w, r, err, "failed to list members")
		return
	}

	items := make([]seosdk.Member, 0, len(page.Items))
	for _, m := range page.Items {
		items = append(items, toMember(m))
	}
	httpx.WriteJSON(w, http.StatusOK, seosdk.Page[seosdk.Member]{
		Items:      items,
		Total:      page.Total,
		Page:       page.Page,
		Limit:      page.Limit,
		TotalPages: page.TotalPages,
	})
}

// HandleCount godoc
//
//	@Summary		Count Active Members
//	@Tags			Members
//	@Produce		json
//	@Param			websiteId	path		string					true	"Website ID"
//	@Success		200			{object}	seosdk.CountResponse	"count"
//	@Failure		403			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/count/website/{websiteId} [get].
func (h *MemberHandler) HandleCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	n, err := h.MemberService.CountActive(r.Context(), r.PathValue("websiteId"), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to count members")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.CountResponse{Count: n})
}

// HandleGet godoc
//
//	@Summary		Get Member
//	@Tags			Members
//	@Produce		json
//	@Param			memberId	path		string					true	"Member ID"
//	@Success		200			{object}	seosdk.Member			"Member"
//	@Failure		403			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{memberId} [get].
func (h *MemberHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	m, err := h.MemberService.Get(r.Context(), r.PathValue("memberId"), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to get member")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMember(m))
}

// HandleUpdate godoc
//
//	@Summary		Update Member
//	@Description	Activate or deactivate a member.
//	@Tags			Members
//	@Accept			json
//	@Produce		json
//	@Param			memberId	path		string						true	"Member ID"
//	@Param			request		body		seosdk.UpdateMemberRequest	true	"Fields to change"
//	@Success		200			{object}	seosdk.Member				"Updated member"
//	@Failure		400			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{memberId} [patch].
func (h *MemberHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.UpdateMemberRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	m, err := h.MemberService.Update(r.Context(), r.PathValue("memberId"), userID, req.IsActive)
	if err != nil {
		writeServiceError(w, r, err, "failed to update member")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toMember(m))
}

// HandleRemove godoc
//
//	@Summary		Remove Member
//	@Description	Deactivate a member. The membership row is kept with isActive=false.
//	@Tags			Members
//	@Produce		json
//	@Param			memberId	path		string					true	"Member ID"
//	@Success		200			{object}	seosdk.MessageResponse	"message"
//	@Failure		403			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/members/{memberId} [delete].
func (h *MemberHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.MemberService.Remove(r.Context(), r.PathValue("memberId"), userID); err != nil {
		writeServiceError(w, r, err, "failed to remove member")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.MessageResponse{Message: msgMemberRemoved})
}
