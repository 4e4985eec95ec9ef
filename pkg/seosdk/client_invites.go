package seosdk

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// CreateInvite invites email to a website.
// Requires: members:write scope
func (c *Client) CreateInvite(ctx context.Context, websiteID string, req CreateInviteRequest) (*Invite, error) {
	var inv Invite
	err := c.call(ctx, http.MethodPost,
		"/v1/members/invite/websites/"+url.PathEscape(websiteID), req, &inv, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

// BulkInvite invites one e-mail to several websites. Websites that fail are
// skipped by the server; only created invites are returned.
// Requires: members:write scope
func (c *Client) BulkInvite(ctx context.Context, req BulkInviteRequest) ([]Invite, error) {
	var out []Invite
	if err := c.call(ctx, http.MethodPost, "/v1/members/invite/bulk", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return out, nil
}

// ListInvites returns one page of a website's invites. status may be empty.
// Requires: members:read scope
func (c *Client) ListInvites(ctx context.Context, websiteID string, page, limit int, status string) (*Page[Invite], error) {
	var extra []string
	if status != "" {
		extra = append(extra, "status="+url.QueryEscape(status))
	}

	var out Page[Invite]
	err := c.call(ctx, http.MethodGet,
		"/v1/members/invites/website/"+url.PathEscape(websiteID)+pageQuery(page, limit, extra...),
		nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// GetInvite looks up a pending invite by its bearer token.
func (c *Client) GetInvite(ctx context.Context, token string) (*Invite, error) {
	var inv Invite
	if err := c.call(ctx, http.MethodGet, "/v1/members/invite/"+url.PathEscape(token), nil, &inv, http.StatusOK); err != nil {
		return nil, err
	}
	return &inv, nil
}

// AcceptInvite redeems token.
func (c *Client) AcceptInvite(ctx context.Context, token string) (*AcceptInviteResponse, error) {
	var out AcceptInviteResponse
	err := c.call(ctx, http.MethodPost, "/v1/members/invite/accept",
		AcceptInviteRequest{Token: token}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// FollowAcceptLink opens the e-mail accept link and returns the frontend
// location the service redirected to.
func (c *Client) FollowAcceptLink(ctx context.Context, token string) (string, error) {
	noFollow := *c
	noFollow.FollowRedirects = false

	resp, err := noFollow.do(ctx, http.MethodGet, "/v1/members/invite/accept/"+url.PathEscape(token), nil)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusFound {
		return "", &APIError{StatusCode: resp.StatusCode, Code: ErrorCodeServerError, Description: "expected a redirect"}
	}
	loc := resp.Header.Get("Location")
	if loc == "" {
		return "", errors.New("redirect without location")
	}
	return loc, nil
}

// RejectInvite declines token with an optional reason.
func (c *Client) RejectInvite(ctx context.Context, token, reason string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.call(ctx, http.MethodPost, "/v1/members/invite/"+url.PathEscape(token)+"/reject",
		RejectInviteRequest{Reason: reason}, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// RevokeInvite withdraws a pending invite.
// Requires: members:write scope
func (c *Client) RevokeInvite(ctx context.Context, inviteID string) (*MessageResponse, error) {
	var out MessageResponse
	err := c.call(ctx, http.MethodDelete, "/v1/members/invite/"+url.PathEscape(inviteID)+"/revoke",
		nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ResendInvite rotates the token of a pending invite and e-mails it again.
// Requires: members:write scope
func (c *Client) ResendInvite(ctx context.Context, inviteID string) (*Invite, error) {
	var inv Invite
	err := c.call(ctx, http.MethodPost, "/v1/members/invite/"+url.PathEscape(inviteID)+"/resend",
		nil, &inv, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}
