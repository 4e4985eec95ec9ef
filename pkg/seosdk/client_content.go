package seosdk

import (
	"context"
	"net/http"
	"net/url"
)

// CreateKeywords adds keywords; analysis of the ones without prefilled data
// continues in the background.
// Requires: seo:write scope
func (c *Client) CreateKeywords(ctx context.Context, req CreateKeywordsRequest) ([]Keyword, error) {
	var out []Keyword
	if err := c.call(ctx, http.MethodPost, "/v1/keywords", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

// ListKeywords returns the caller's keywords, newest first.
// Requires: seo:read scope
func (c *Client) ListKeywords(ctx context.Context) ([]Keyword, error) {
	var out []Keyword
	if err := c.call(ctx, http.MethodGet, "/v1/keywords", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetKeyword fetches one keyword.
// Requires: seo:read scope
func (c *Client) GetKeyword(ctx context.Context, keywordID string) (*Keyword, error) {
	var out Keyword
	if err := c.call(ctx, http.MethodGet, "/v1/keywords/"+url.PathEscape(keywordID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ReanalyzeKeyword runs the analysis again and waits for it.
// Requires: seo:write scope
func (c *Client) ReanalyzeKeyword(ctx context.Context, keywordID string) (*Keyword, error) {
	var out Keyword
	err := c.call(ctx, http.MethodPut, "/v1/keywords/"+url.PathEscape(keywordID)+"/reanalyze", nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteKeyword removes one keyword.
// Requires: seo:write scope
func (c *Client) DeleteKeyword(ctx context.Context, keywordID string) error {
	return c.call(ctx, http.MethodDelete, "/v1/keywords/"+url.PathEscape(keywordID), nil, nil, http.StatusNoContent)
}

// DeleteKeywords removes several keywords, stopping at the first unknown id.
// Requires: seo:write scope
func (c *Client) DeleteKeywords(ctx context.Context, keywordIDs []string) error {
	return c.call(ctx, http.MethodPost, "/v1/keywords/delete-multiple",
		DeleteKeywordsRequest{KeywordIDs: keywordIDs}, nil, http.StatusNoContent)
}

// CreateArticle starts generating an article. The returned article is in
// GENERATING until the background task finishes.
// Requires: seo:write scope
func (c *Client) CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	var out Article
	if err := c.call(ctx, http.MethodPost, "/v1/articles", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// RegenerateTitle asks the model for a new title.
// Requires: seo:write scope
func (c *Client) RegenerateTitle(ctx context.Context, req RegenerateTitleRequest) (string, error) {
	var out TitleResponse
	if err := c.call(ctx, http.MethodPost, "/v1/articles/regenerate-title", req, &out, http.StatusOK); err != nil {
		return "", err
	}
	return out.Title, nil
}

// ListArticles returns the caller's articles, newest first.
// Requires: seo:read scope
func (c *Client) ListArticles(ctx context.Context) ([]Article, error) {
	var out []Article
	if err := c.call(ctx, http.MethodGet, "/v1/articles", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// GetArticle fetches one article.
// Requires: seo:read scope
func (c *Client) GetArticle(ctx context.Context, articleID string) (*Article, error) {
	var out Article
	if err := c.call(ctx, http.MethodGet, "/v1/articles/"+url.PathEscape(articleID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetArticleByKeyword returns the article for a primary keyword, or nil.
// Requires: seo:read scope
func (c *Client) GetArticleByKeyword(ctx context.Context, keywordID string) (*Article, error) {
	var out *Article
	err := c.call(ctx, http.MethodGet, "/v1/articles/keyword/"+url.PathEscape(keywordID), nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateArticle edits an article.
// Requires: seo:write scope
func (c *Client) UpdateArticle(ctx context.Context, articleID string, req UpdateArticleRequest) (*Article, error) {
	var out Article
	if err := c.call(ctx, http.MethodPatch, "/v1/articles/"+url.PathEscape(articleID), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteArticle removes an article.
// Requires: seo:write scope
func (c *Client) DeleteArticle(ctx context.Context, articleID string) error {
	return c.call(ctx, http.MethodDelete, "/v1/articles/"+url.PathEscape(articleID), nil, nil, http.StatusNoContent)
}
