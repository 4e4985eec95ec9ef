package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/service"
	"github.com/aussiebroadwan/seodesk/pkg/httpx"
	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

type OnboardingHandler struct {
	WebsiteService *service.WebsiteService
}

// HandleStatus godoc
//
//	@Summary		Onboarding Status
//	@Description	Reports whether the caller finished onboarding and the state of their primary website.
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{object}	seosdk.OnboardingStatus	"Onboarding status"
//	@Failure		401	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/status [get].
func (h *OnboardingHandler) HandleStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	st, err := h.WebsiteService.GetOnboardingStatus(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to get onboarding status")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toOnboardingStatus(st))
}

// HandleSubmit godoc
//
//	@Summary		Submit Website
//	@Description	Register a website. The scheme defaults to https; the caller's first website becomes primary.
//	@Tags			Onboarding
//	@Accept			json
//	@Produce		json
//	@Param			request	body		seosdk.SubmitWebsiteRequest	true	"Website URL"
//	@Success		201		{object}	seosdk.Website				"Created website"
//	@Failure		400		{object}	seosdk.ErrorResponse		"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/website [post].
func (h *OnboardingHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	var req seosdk.SubmitWebsiteRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, "Invalid JSON body")
		return
	}
	if strings.TrimSpace(req.WebsiteURL) == "" {
		writeBadRequest(w, "websiteUrl is required")
		return
	}

	site, err := h.WebsiteService.Submit(r.Context(), userID, req.WebsiteURL)
	if err != nil {
		writeServiceError(w, r, err, "failed to submit website")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, toWebsite(site))
}

// HandleScrape godoc
//
//	@Summary		Scrape Website
//	@Description	Fetch and parse the website now. A failed scrape is recorded on the website (scrapingStatus=failed) rather than returned as an error.
//	@Tags			Onboarding
//	@Produce		json
//	@Param			websiteId	path		string					true	"Website ID"
//	@Success		200			{object}	seosdk.Website			"Website with scrape outcome"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/website/{websiteId}/scrape [post].
func (h *OnboardingHandler) HandleScrape(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	site, err := h.WebsiteService.StartScraping(r.Context(), userID, r.PathValue("websiteId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to scrape website")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWebsite(site))
}

// HandleScrapingStatus godoc
//
//	@Summary		Scraping Status
//	@Tags			Onboarding
//	@Produce		json
//	@Param			websiteId	path		string					true	"Website ID"
//	@Success		200			{object}	seosdk.Website			"Website"
//	@Failure		404			{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/website/{websiteId}/status [get].
func (h *OnboardingHandler) HandleScrapingStatus(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	site, err := h.WebsiteService.GetScrapingStatus(r.Context(), userID, r.PathValue("websiteId"))
	if err != nil {
		writeServiceError(w, r, err, "failed to get scraping status")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWebsite(site))
}

// HandleList godoc
//
//	@Summary		List Websites
//	@Description	The caller's websites, primary first, then newest.
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{array}		seosdk.Website			"Websites"
//	@Failure		401	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/websites [get].
func (h *OnboardingHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	sites, err := h.WebsiteService.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to list websites")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toWebsites(sites))
}

// HandleComplete godoc
//
//	@Summary		Complete Onboarding
//	@Description	Mark the caller as onboarded. Requires at least one successfully scraped website.
//	@Tags			Onboarding
//	@Produce		json
//	@Success		200	{object}	seosdk.User				"Updated user"
//	@Failure		404	{object}	seosdk.ErrorResponse	"error, error_description"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/complete [post].
func (h *OnboardingHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(w, r)
	if !ok {
		return
	}

	u, err := h.WebsiteService.CompleteOnboarding(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err, "failed to complete onboarding")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toUser(u))
}

func toWebsites(in []domain.Website) []seosdk.Website {
	out := make([]seosdk.Website, 0, len(in))
	for _, w := range in {
		out = append(out, toWebsite(w))
	}
	return out
}
