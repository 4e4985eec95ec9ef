package seosdk

import (
	"context"
	"net/http"
	"net/url"
)

// ListMembers returns one page of a website's members.
// Requires: members:read scope
func (c *Client) ListMembers(ctx context.Context, websiteID string, page, limit int) (*Page[Member], error) {
	var out Page[Member]
	err := c.call(ctx, http.MethodGet,
		"/v1/members/website/"+url.PathEscape(websiteID)+pageQuery(page, limit), nil, &out, http.StatusOK)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CountMembers returns the number of active members of a website.
// Requires: members:read scope
func (c *Client) CountMembers(ctx context.Context, websiteID string) (int, error) {
	var out CountResponse
	err := c.call(ctx, http.MethodGet,
		"/v1/members/count/website/"+url.PathEscape(websiteID), nil, &out, http.StatusOK)
	if err != nil {
		return 0, err
	}
	return out.Count, nil
}

// GetMember fetches one membership.
// Requires: members:read scope
func (c *Client) GetMember(ctx context.Context, memberID string) (*Member, error) {
	var m Member
	if err := c.call(ctx, http.MethodGet, "/v1/members/"+url.PathEscape(memberID), nil, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// UpdateMember changes a membership.
// Requires: members:write scope
func (c *Client) UpdateMember(ctx context.Context, memberID string, req UpdateMemberRequest) (*Member, error) {
	var m Member
	if err := c.call(ctx, http.MethodPatch, "/v1/members/"+url.PathEscape(memberID), req, &m, http.StatusOK); err != nil {
		return nil, err
	}
	return &m, nil
}

// RemoveMember deactivates a membership.
// Requires: members:write scope
func (c *Client) RemoveMember(ctx context.Context, memberID string) (*MessageResponse, error) {
	var out MessageResponse
	if err := c.call(ctx, http.MethodDelete, "/v1/members/"+url.PathEscape(memberID), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
