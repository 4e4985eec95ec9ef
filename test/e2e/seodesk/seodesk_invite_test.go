package seodesk_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/seodesk/pkg/seosdk"
)

// TestInviteAcceptFlow runs the full invitation flow against the container:
// 1. Owner submits a website
// 2. Owner invites a colleague
// 3. Colleague signs in and accepts
// 4. Owner sees the new member and the accepted invite
func TestInviteAcceptFlow(t *testing.T) {
	client := startSeodesk(t)
	owner := signIn(t, client, "owner-1", "owner@example.com")

	// Step 1: Submit a website
	site, err := owner.SubmitWebsite(t.Context(), "https://example.com")
	require.NoError(t, err)
	t.Logf("Website created (ID: %s)", site.ID)

	// Step 2: Invite a colleague
	inv, err := owner.CreateInvite(t.Context(), site.ID, seosdk.CreateInviteRequest{
		Email:   "Colleague@Example.com",
		Message: "Come help with keywords",
	})
	require.NoError(t, err)
	require.Equal(t, seosdk.InviteStatusPending, inv.Status)
	require.Equal(t, "colleague@example.com", inv.Email)
	require.NotEmpty(t, inv.Token)

	preview, err := client.GetInvite(t.Context(), inv.Token)
	require.NoError(t, err)
	require.Equal(t, "Come help with keywords", preview.Message)

	// Step 3: Accept
	signIn(t, client, "colleague-1", "colleague@example.com")

	accepted, err := client.AcceptInvite(t.Context(), inv.Token)
	require.NoError(t, err)
	require.Equal(t, site.ID, accepted.Member.WebsiteID)

	// Step 4: Owner's view
	members, err := owner.ListMembers(t.Context(), site.ID, 1, 20)
	require.NoError(t, err)
	require.Equal(t, 1, members.Total)
	require.Equal(t, "colleague@example.com", members.Items[0].User.Email)

	invites, err := owner.ListInvites(t.Context(), site.ID, 1, 20, "")
	require.NoError(t, err)
	require.Equal(t, 1, invites.Total)
	require.Equal(t, seosdk.InviteStatusAccepted, invites.Items[0].Status)

	// A second accept is refused
	_, err = client.AcceptInvite(t.Context(), inv.Token)
	assertStatus(t, err, http.StatusBadRequest)
}

// TestAcceptLinkRedirectsToFrontend verifies the e-mailed link lands on the
// frontend with a result in the query string.
func TestAcceptLinkRedirectsToFrontend(t *testing.T) {
	client := startSeodesk(t)
	owner := signIn(t, client, "owner-2", "owner2@example.com")
	signIn(t, client, "guest-2", "guest2@example.com")

	site, err := owner.SubmitWebsite(t.Context(), "https://example.net")
	require.NoError(t, err)

	inv, err := owner.CreateInvite(t.Context(), site.ID, seosdk.CreateInviteRequest{Email: "guest2@example.com"})
	require.NoError(t, err)

	location, err := client.FollowAcceptLink(t.Context(), inv.Token)
	require.NoError(t, err)

	u, err := url.Parse(location)
	require.NoError(t, err)
	require.Equal(t, "app.e2e.test", u.Host)
	t.Logf("Accept link redirected to %s", location)

	// Following the link again reports the invite as already used
	again, err := client.FollowAcceptLink(t.Context(), inv.Token)
	require.NoError(t, err)
	require.NotEqual(t, location, again)
}

// TestRejectResendRevoke covers the remaining invite transitions.
func TestRejectResendRevoke(t *testing.T) {
	client := startSeodesk(t)
	owner := signIn(t, client, "owner-3", "owner3@example.com")

	site, err := owner.SubmitWebsite(t.Context(), "https://example.org")
	require.NoError(t, err)

	// Reject
	declined, err := owner.CreateInvite(t.Context(), site.ID, seosdk.CreateInviteRequest{Email: "no@example.com"})
	require.NoError(t, err)
	_, err = client.RejectInvite(t.Context(), declined.Token, "not now")
	require.NoError(t, err)

	_, err = client.GetInvite(t.Context(), declined.Token)
	assertStatus(t, err, http.StatusBadRequest)

	rejected, err := owner.ListInvites(t.Context(), site.ID, 1, 20, "rejected")
	require.NoError(t, err)
	require.Equal(t, 1, rejected.Total)
	require.Equal(t, "not now", rejected.Items[0].RejectionReason)

	// Resend rotates the token
	pending, err := owner.CreateInvite(t.Context(), site.ID, seosdk.CreateInviteRequest{Email: "later@example.com"})
	require.NoError(t, err)
	resent, err := owner.ResendInvite(t.Context(), pending.ID)
	require.NoError(t, err)
	require.NotEqual(t, pending.Token, resent.Token)

	_, err = client.GetInvite(t.Context(), pending.Token)
	assertStatus(t, err, http.StatusNotFound)

	// Revoke
	_, err = owner.RevokeInvite(t.Context(), resent.ID)
	require.NoError(t, err)

	_, err = client.AcceptInvite(t.Context(), resent.Token)
	assertStatus(t, err, http.StatusBadRequest)

	// A stranger cannot touch the website's invites
	stranger := signIn(t, client, "stranger-3", "stranger@example.com")
	_, err = stranger.ListInvites(t.Context(), site.ID, 1, 20, "")
	require.True(t, seosdk.IsForbidden(err) || seosdk.IsNotFound(err), "got %v", err)
}
