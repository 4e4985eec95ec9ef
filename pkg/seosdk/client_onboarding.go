package seosdk

import (
	"context"
	"net/http"
	"net/url"
)

// GetOnboardingStatus reports the caller's onboarding progress.
// Requires: seo:read scope
func (c *Client) GetOnboardingStatus(ctx context.Context) (*OnboardingStatus, error) {
	var out OnboardingStatus
	if err := c.call(ctx, http.MethodGet, "/v1/onboarding/status", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// SubmitWebsite registers a website for the caller.
// Requires: seo:write scope
func (c *Client) SubmitWebsite(ctx context.Context, websiteURL string) (*Website, error) {
	var out Website
	err := c.call(ctx, http.MethodPost, "/v1/onboarding/website",
		SubmitWebsiteRequest{WebsiteURL: websiteURL}, &out, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ScrapeWebsite scrapes a website and returns it with the outcome recorded.
// Requires: seo:write scope
func (c *Client) ScrapeWebsite(ctx context.Context, websiteID string) (*Website, error) {
	var out Website
	err := c.call(ctx, http.MethodPost,
		"/v1/onboarding/website/"+url.PathEscape(websiteID)+"/scrape", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetScrapingStatus fetches a website to inspect its scraping status.
// Requires: seo:read scope
func (c *Client) GetScrapingStatus(ctx context.Context, websiteID string) (*Website, error) {
	var out Website
	err := c.call(ctx, http.MethodGet,
		"/v1/onboarding/website/"+url.PathEscape(websiteID)+"/status", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ListWebsites returns the caller's websites, primary first.
// Requires: seo:read scope
func (c *Client) ListWebsites(ctx context.Context) ([]Website, error) {
	var out []Website
	if err := c.call(ctx, http.MethodGet, "/v1/onboarding/websites", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CompleteOnboarding marks the caller as onboarded.
// Requires: seo:write scope
func (c *Client) CompleteOnboarding(ctx context.Context) (*User, error) {
	var out User
	if err := c.call(ctx, http.MethodPost, "/v1/onboarding/complete", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
