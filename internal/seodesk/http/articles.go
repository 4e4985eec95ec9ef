package http

import (
	"net/http"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

type ArticleHandler struct {
	ArticleService *service.ArticleService
}

// HandleCreate godoc
//
//	@Summary		Create Article
//	@Description	Create an article in GENERATING state and queue its generation. One article per primary keyword.
//	@Tags			Articles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.CreateArticleRequest	true	"Article"
//	@Success		201		{object}	seosdk.Article				"Created article"
//	@Failure		400		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/articles [post].
func (h *ArticleHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.CreateArticleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	a, err := h.ArticleService.Create(r.Context(), userID, service.ArticleInput{
		Title:               req.Title,
		PrimaryKeywordID:    req.PrimaryKeywordID,
		SecondaryKeywordIDs: req.SecondaryKeywordIDs,
		ContentBriefing:     req.ContentBriefing,
		ReferenceContent:    req.ReferenceContent,
		WebsiteID:           req.WebsiteID,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to create article")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toArticle(a))
}

// HandleRegenerateTitle godoc
//
//	@Summary	Regenerate Title
//	@Tags		Articles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		seosdk.RegenerateTitleRequest	true	"Keyword and optional context"
//	@Success	200		{object}	seosdk.TitleResponse			"title"
//	@Failure	400		{object}	seosdk.ErrorResponse			"error, error_description"
//	@Failure	404		{object}	seosdk.ErrorResponse			"error, error_description"
//	@Failure	503		{object}	seosdk.ErrorResponse			"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/articles/regenerate-title [post].
func (h *ArticleHandler) HandleRegenerateTitle(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.RegenerateTitleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if req.PrimaryKeywordID == "" {
		writeBadRequest(w, "primaryKeywordId is required")
		return
	}

	title, err := h.ArticleService.RegenerateTitle(r.Context(), userID, req.PrimaryKeywordID, req.Context)
	if err != nil {
		writeServiceError(w, r, err, "failed to regenerate title")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, seosdk.TitleResponse{Title: title})
}

// HandleList godoc
//
//	@Summary	List Articles
//	@Tags		Articles
//	@Produce	json
//	@Success	200	{array}		seosdk.Article			"Articles, newest first"
//	@Failure	401	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/articles [get].
func (h *ArticleHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	list, err := h.ArticleService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list articles")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticles(list))
}

// HandleGet godoc
//
//	@Summary	Get Article
//	@Tags		Articles
//	@Produce	json
//	@Param		articleId	path		string					true	"Article ID"
//	@Success	200			{object}	seosdk.Article			"Article"
//	@Failure	404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/articles/{articleId} [get].
func (h *ArticleHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	a, err := h.ArticleService.Get(r.Context(), userID, r.PathValue("articleId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get article")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticle(a))
}

// HandleGetByKeyword godoc
//
//	@Summary		Get Article By Keyword
//	@Description	The article whose primary keyword is keywordId, or null.
//	@Tags			Articles
//	@Produce		json
//	@Param			keywordId	path		string					true	"Keyword ID"
//	@Success		200			{object}	seosdk.Article			"Article or null"
//	@Failure		401			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/articles/keyword/{keywordId} [get].
func (h *ArticleHandler) HandleGetByKeyword(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	a, err := h.ArticleService.GetByKeyword(r.Context(), userID, r.PathValue("keywordId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get article")
		return
	}
	if a == nil {
		httpx.WriteJSON(w, http.StatusOK, nil)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticle(*a))
}

// HandleUpdate godoc
//
//	@Summary		Update Article
//	@Description	Apply the provided fields. Status may only be set to DRAFT or PUBLISHED.
//	@Tags			Articles
//	@Accept			json
//	@Produce		json
//	@Param			articleId	path		string						true	"Article ID"
//	@Param			request		body		seosdk.UpdateArticleRequest	true	"Fields to change"
//	@Success		200			{object}	seosdk.Article				"Updated article"
//	@Failure		400			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/articles/{articleId} [patch].
func (h *ArticleHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.UpdateArticleRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}

	a, err := h.ArticleService.Update(r.Context(), userID, r.PathValue("articleId"), service.ArticleUpdate{
		Title:       req.Title,
		Content:     req.Content,
		ContentJSON: req.ContentJSON,
		Status:      req.Status,
	})
	if err != nil {
		writeServiceError(w, r, err, "failed to update article")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toArticle(a))
}

// HandleDelete godoc
//
//	@Summary	Delete Article
//	@Tags		Articles
//	@Param		articleId	path	string	true	"Article ID"
//	@Success	204
//	@Failure	404	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security	BearerAuth
//	@Router		/v1/articles/{articleId} [delete].
func (h *ArticleHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	if err := h.ArticleService.Delete(r.Context(), userID, r.PathValue("articleId")); err != nil {
		writeServiceError(w, r, err, "failed to delete article")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
