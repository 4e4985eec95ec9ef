package http

import (
	"net/http"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

type KeywordHandler struct {
	KeywordService *service.KeywordService
}

// HandleCreate godoc
//
//	@Summary		Create Keywords
//	@Description	Store keywords for the caller. Keywords are trimmed and lower-cased; ones the caller already has are skipped.
//	@Description	Keywords without both competition and volume are queued for AI analysis.
//	@Tags			Keywords
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.CreateKeywordsRequest	true	"Keywords"
//	@Success		201		{array}		seosdk.Keyword					"Created keywords"
//	@Failure		400		{object}	seosdk.ErrorResponse			"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/keywords [post].
func (h *KeywordHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.CreateKeywordsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if len(req.Keywords) == 0 {
		writeBadRequest(w, "keywords is required")
		return
	}

	items := make([]service.KeywordInput, 0, len(req.Keywords))
	for _, k := range req.Keywords {
		items = append(items, service.KeywordInput{
			Keyword:     k.Keyword,
			Competition: k.Competition,
			Volume:      k.Volume,
		})
	}

	created, err := h.KeywordService.Create(r.Context(), userID, req.WebsiteID, items)
	if err != nil {
		writeServiceError(w, r, err, "failed to create keywords")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toKeywords(created))
}

// HandleList godoc
//
//	@Summary	List Keywords
//	@Tags		Keywords
//	@Produce	json
//	@Success	200	{array}		seosdk.Keyword			"Keywords, newest first"
//	@Failure	401	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/keywords [get].
func (h *KeywordHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	list, err := h.KeywordService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list keywords")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toKeywords(list))
}

// HandleGet godoc
//
//	@Summary	Get Keyword
//	@Tags		Keywords
//	@Produce	json
//	@Param		keywordId	path		string					true	"Keyword ID"
//	@Success	200			{object}	seosdk.Keyword			"Keyword"
//	@Failure	404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/keywords/{keywordId} [get].
func (h *KeywordHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	k, err := h.KeywordService.Get(r.Context(), userID, r.PathValue("keywordId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get keyword")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toKeyword(k))
}

// HandleReanalyze godoc
//
//	@Summary		Reanalyze Keyword
//	@Description	Run the AI analysis now and return the updated keyword.
//	@Tags			Keywords
//	@Produce		json
//	@Param			keywordId	path		string					true	"Keyword ID"
//	@Success		200			{object}	seosdk.Keyword			"Keyword"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		503			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/keywords/{keywordId}/reanalyze [put].
func (h *KeywordHandler) HandleReanalyze(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	k, err := h.KeywordService.Reanalyze(r.Context(), userID, r.PathValue("keywordId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to reanalyze keyword")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toKeyword(k))
}

// HandleDelete godoc
//
//	@Summary	Delete Keyword
//	@Tags		Keywords
//	@Param		keywordId	path	string	true	"Keyword ID"
//	@Success	204
//	@Failure	404	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/keywords/{keywordId} [delete].
func (h *KeywordHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.KeywordService.Delete(r.Context(), userID, r.PathValue("keywordId")); err != nil {
		writeServiceError(w, r, err, "failed to delete keyword")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDeleteMany godoc
//
//	@Summary		Delete Keywords
//	@Description	Delete keywords in order, stopping at the first one that fails.
//	@Tags			Keywords
//	@Accept			json
//	@Param			request	body	seosdk.DeleteKeywordsRequest	true	"Keyword IDs"
//	@Success		204
//	@Failure		400	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Failure		404	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/keywords/delete-multiple [post].
func (h *KeywordHandler) HandleDeleteMany(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.DeleteKeywordsRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if len(req.KeywordIDs) == 0 {
		writeBadRequest(w, "keywordIds is required")
		return
	}

	if err := h.KeywordService.DeleteMany(r.Context(), userID, req.KeywordIDs); err != nil {
		writeServiceError(w, r, err, "failed to delete keywords")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
