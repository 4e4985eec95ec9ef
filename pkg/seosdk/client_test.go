package seosdk

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClientSendsBearerAndDecodes(t *testing.T) {
	t.Parallel()

	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(Page[Invite]{
			Items: []Invite{{ID: "i1", Status: InviteStatusPending}},
			Total: 6, Page: 2, Limit: 5, TotalPages: 2,
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/").WithToken("tok")
	page, err := c.ListInvites(context.Background(), "w1", 2, 5, "pending")
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	require.Equal(t, 2, page.TotalPages)

	require.Equal(t, "Bearer tok", got.Header.Get("Authorization"))
	require.Equal(t, "/v1/members/invites/website/w1", got.URL.Path)
	require.Equal(t, "page=2&limit=5&status=pending", got.URL.RawQuery)
}

func TestClientReturnsAPIError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":"conflict","error_description":"This email already has a pending invitation"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).CreateInvite(context.Background(), "w1", CreateInviteRequest{Email: "a@b.co"})
	require.Error(t, err)
	require.True(t, IsConflict(err))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "This email already has a pending invitation", apiErr.Description)
}

func TestClientNonJSONError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetLiveness(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, ErrorCodeServerError, apiErr.Code)
}

func TestFollowAcceptLink(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "http://frontend.test/dashboard?inviteAccepted=true", http.StatusFound)
	}))
	defer srv.Close()

	loc, err := NewClient(srv.URL).FollowAcceptLink(context.Background(), "abc")
	require.NoError(t, err)
	require.Equal(t, "http://frontend.test/dashboard?inviteAccepted=true", loc)
}

func TestPageQuery(t *testing.T) {
	t.Parallel()

	require.Empty(t, pageQuery(0, 0))
	require.Equal(t, "?limit=10", pageQuery(0, 10))
	require.Equal(t, "?page=1&status=x", pageQuery(1, 0, "status=x"))
}
