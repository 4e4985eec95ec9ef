package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

var hexToken = regexp.MustCompile(`^[0-9a-f]{64}$`)

type inviteFixture struct {
	store   store.Store
	svc     *InviteService
	mailer  *recordingMailer
	owner   domain.User
	website domain.Website
	clock   time.Time
}

func newInviteFixture(t *testing.T) *inviteFixture {
	t.Helper()

	s := newTestStore(t)
	owner := seedUser(t, s, "owner@example.com", "Olive", "Owner")
	site := seedWebsite(t, s, owner)
	mailer := &recordingMailer{}

	f := &inviteFixture{
		store:   s,
		mailer:  mailer,
		owner:   owner,
		website: site,
		clock:   time.Now().UTC(),
	}
	f.svc = &InviteService{
		Store:  s,
		Access: &Access{Store: s},
		Notifier: &InviteNotifier{
			Store:       s,
			Mailer:      mailer,
			FrontendURL: "https://app.example.com",
		},
		Clock: func() time.Time { return f.clock },
	}
	return f
}

func (f *inviteFixture) issue(t *testing.T, email string) domain.Invite {
	t.Helper()
	inv, err := f.svc.Issue(context.Background(), f.website.ID, email, f.owner.ID, "")
	require.NoError(t, err)
	return inv
}

func TestInviteIssue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates a pending invite and sends the email", func(t *testing.T) {
		f := newInviteFixture(t)

		inv, err := f.svc.Issue(ctx, f.website.ID, "  Guest@Example.COM ", f.owner.ID, "Join us")
		require.NoError(t, err)
		require.Regexp(t, hexToken, inv.Token)
		require.Equal(t, "guest@example.com", inv.Email)
		require.Equal(t, domain.InviteStatusPending, inv.Status)
		require.WithinDuration(t, f.clock.Add(domain.InviteTTL), inv.ExpiresAt, time.Second)

		stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, cryptox.FingerprintToken(inv.Token), stored.TokenHash)
		require.NotEqual(t, inv.Token, stored.TokenHash)
		require.Empty(t, stored.Token)
		require.Equal(t, "Join us", stored.Message)

		msgs := f.mailer.messages()
		require.Len(t, msgs, 1)
		require.Equal(t, []string{"guest@example.com"}, msgs[0].To)
		require.Equal(t, inviteSubject, msgs[0].Subject)
		require.Contains(t, msgs[0].HTML, "Olive Owner has invited you")
		require.Contains(t, msgs[0].HTML, "Join us")
		require.Contains(t, msgs[0].HTML,
			"https://app.example.com/dashboard/website-settings/accept-invite?token="+inv.Token)
		require.Contains(t, msgs[0].Text, inv.Token)
	})

	t.Run("rejects invalid emails", func(t *testing.T) {
		f := newInviteFixture(t)
		for _, email := range []string{"", "not-an-email", "Guest <guest@example.com>", "guest@localhost"} {
			_, err := f.svc.Issue(ctx, f.website.ID, email, f.owner.ID, "")
			require.ErrorIs(t, err, ErrInvalidEmail, email)
		}
	})

	t.Run("unknown website", func(t *testing.T) {
		f := newInviteFixture(t)
		_, err := f.svc.Issue(ctx, "missing", "guest@example.com", f.owner.ID, "")
		require.ErrorIs(t, err, ErrWebsiteNotFound)
	})

	t.Run("issuer without access", func(t *testing.T) {
		f := newInviteFixture(t)
		stranger := seedUser(t, f.store, "stranger@example.com", "", "")
		_, err := f.svc.Issue(ctx, f.website.ID, "guest@example.com", stranger.ID, "")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("active members may invite", func(t *testing.T) {
		f := newInviteFixture(t)
		member := seedUser(t, f.store, "member@example.com", "", "")
		inv := f.issue(t, member.Email)
		_, err := f.svc.Accept(ctx, inv.Token)
		require.NoError(t, err)

		_, err = f.svc.Issue(ctx, f.website.ID, "guest@example.com", member.ID, "")
		require.NoError(t, err)
	})

	t.Run("second pending invite conflicts", func(t *testing.T) {
		f := newInviteFixture(t)
		f.issue(t, "guest@example.com")

		_, err := f.svc.Issue(ctx, f.website.ID, "GUEST@example.com", f.owner.ID, "")
		require.ErrorIs(t, err, ErrPendingInviteExists)
		require.EqualError(t, err, "This email already has a pending invitation")
	})

	t.Run("accepted invite conflicts", func(t *testing.T) {
		f := newInviteFixture(t)
		seedUser(t, f.store, "guest@example.com", "", "")
		inv := f.issue(t, "guest@example.com")
		_, err := f.svc.Accept(ctx, inv.Token)
		require.NoError(t, err)

		_, err = f.svc.Issue(ctx, f.website.ID, "guest@example.com", f.owner.ID, "")
		require.ErrorIs(t, err, ErrEmailAlreadyMember)
	})

	t.Run("terminal invites allow a fresh one", func(t *testing.T) {
		f := newInviteFixture(t)

		rejected := f.issue(t, "guest@example.com")
		require.NoError(t, f.svc.Reject(ctx, rejected.Token, ""))
		f.clock = f.clock.Add(time.Second)

		revoked := f.issue(t, "guest@example.com")
		require.NoError(t, f.svc.Revoke(ctx, revoked.ID, f.owner.ID))
		f.clock = f.clock.Add(time.Second)

		expired := f.issue(t, "guest@example.com")
		f.clock = f.clock.Add(domain.InviteTTL + time.Hour)
		_, err := f.svc.Accept(ctx, expired.Token)
		require.ErrorIs(t, err, ErrInviteExpired)

		fresh := f.issue(t, "guest@example.com")
		require.NotEqual(t, expired.ID, fresh.ID)
	})

	t.Run("an expired but still pending invite blocks reissue", func(t *testing.T) {
		f := newInviteFixture(t)
		f.issue(t, "guest@example.com")
		f.clock = f.clock.Add(domain.InviteTTL + time.Hour)

		_, err := f.svc.Issue(ctx, f.website.ID, "guest@example.com", f.owner.ID, "")
		require.ErrorIs(t, err, ErrPendingInviteExists)
	})

	t.Run("mail failures do not fail the issue", func(t *testing.T) {
		f := newInviteFixture(t)
		f.mailer.err = errors.New("ses down")

		inv, err := f.svc.Issue(ctx, f.website.ID, "guest@example.com", f.owner.ID, "")
		require.NoError(t, err)
		require.NotEmpty(t, inv.Token)
		require.Empty(t, f.mailer.messages())
	})
}

func TestInviteBulkIssue(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	second := seedWebsite(t, f.store, f.owner)
	stranger := seedUser(t, f.store, "stranger@example.com", "", "")
	foreign := seedWebsite(t, f.store, stranger)

	t.Run("rejects an invalid email upfront", func(t *testing.T) {
		_, err := f.svc.BulkIssue(ctx, "nope", []string{f.website.ID}, f.owner.ID, "")
		require.ErrorIs(t, err, ErrInvalidEmail)
	})

	t.Run("skips failing websites and duplicates", func(t *testing.T) {
		invites, err := f.svc.BulkIssue(ctx, "guest@example.com",
			[]string{f.website.ID, second.ID, foreign.ID, "missing", second.ID},
			f.owner.ID, "")
		require.NoError(t, err)
		require.Len(t, invites, 2)
		require.Equal(t, f.website.ID, invites[0].WebsiteID)
		require.Equal(t, second.ID, invites[1].WebsiteID)
		for _, inv := range invites {
			require.Regexp(t, hexToken, inv.Token)
		}
	})

	t.Run("pending conflicts are skipped too", func(t *testing.T) {
		invites, err := f.svc.BulkIssue(ctx, "guest@example.com", []string{f.website.ID}, f.owner.ID, "")
		require.NoError(t, err)
		require.Empty(t, invites)
	})
}

func TestInviteGetByToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("pending invite", func(t *testing.T) {
		f := newInviteFixture(t)
		inv := f.issue(t, "guest@example.com")

		got, err := f.svc.GetByToken(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, inv.ID, got.ID)
		require.Empty(t, got.Token)
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newInviteFixture(t)
		_, err := f.svc.GetByToken(ctx, strings.Repeat("a", 64))
		require.ErrorIs(t, err, ErrInviteNotFoundOrExpired)
	})

	t.Run("processed invite", func(t *testing.T) {
		f := newInviteFixture(t)
		inv := f.issue(t, "guest@example.com")
		require.NoError(t, f.svc.Reject(ctx, inv.Token, ""))

		_, err := f.svc.GetByToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationNotValid)
	})

	t.Run("expired invite keeps its status", func(t *testing.T) {
		f := newInviteFixture(t)
		inv := f.issue(t, "guest@example.com")
		f.clock = f.clock.Add(domain.InviteTTL + time.Minute)

		_, err := f.svc.GetByToken(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInvitationExpired)

		stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, stored.Status)
	})
}

func TestInviteAccept(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("creates an active membership", func(t *testing.T) {
		f := newInviteFixture(t)
		guest := seedUser(t, f.store, "guest@example.com", "Gus", "Guest")
		inv := f.issue(t, "guest@example.com")

		member, err := f.svc.Accept(ctx, inv.Token)
		require.NoError(t, err)
		require.Equal(t, guest.ID, member.UserID)
		require.Equal(t, f.website.ID, member.WebsiteID)
		require.True(t, member.IsActive)
		require.Equal(t, f.owner.ID, member.InvitedBy)
		require.NotNil(t, member.InvitedAt)

		stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusAccepted, stored.Status)
		require.Equal(t, member.ID, stored.MemberID)
		require.NotNil(t, stored.AcceptedAt)

		_, err = f.svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteNotPending)
		require.EqualError(t, err, "Invite has already been accepted")
	})

	t.Run("unknown token", func(t *testing.T) {
		f := newInviteFixture(t)
		_, err := f.svc.Accept(ctx, "deadbeef")
		require.ErrorIs(t, err, ErrInviteNotFoundOrExpired)
		require.EqualError(t, err, "Invite not found or expired")

		_, err = f.svc.Accept(ctx, "   ")
		require.ErrorIs(t, err, ErrInviteNotFoundOrExpired)
	})

	t.Run("invitee without an account", func(t *testing.T) {
		f := newInviteFixture(t)
		inv := f.issue(t, "guest@example.com")

		_, err := f.svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrNoAccount)

		stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusPending, stored.Status)
	})

	t.Run("invitee already a member", func(t *testing.T) {
		f := newInviteFixture(t)
		guest := seedUser(t, f.store, "guest@example.com", "", "")
		require.NoError(t, f.store.Members().CreateMember(ctx, domain.Member{
			ID:        "m-existing",
			UserID:    guest.ID,
			WebsiteID: f.website.ID,
			IsActive:  true,
			JoinedAt:  f.clock,
		}))
		inv := f.issue(t, "guest@example.com")

		_, err := f.svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrAlreadyMember)
	})

	t.Run("expired invite is marked expired", func(t *testing.T) {
		f := newInviteFixture(t)
		seedUser(t, f.store, "guest@example.com", "", "")
		inv := f.issue(t, "guest@example.com")
		f.clock = f.clock.Add(domain.InviteTTL + time.Minute)

		_, err := f.svc.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteExpired)

		stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
		require.NoError(t, err)
		require.Equal(t, domain.InviteStatusExpired, stored.Status)

		_, err = f.svc.Accept(ctx, inv.Token)
		require.EqualError(t, err, "Invite has already been expired")
	})

	t.Run("losing a race creates no membership", func(t *testing.T) {
		f := newInviteFixture(t)
		seedUser(t, f.store, "guest@example.com", "", "")
		inv := f.issue(t, "guest@example.com")

		racing := *f.svc
		racing.Store = &beforeTxStore{Store: f.store, hook: func() {
			require.NoError(t, f.store.Invites().MarkInviteRevoked(ctx, inv.ID, f.clock))
		}}

		_, err := racing.Accept(ctx, inv.Token)
		require.ErrorIs(t, err, ErrInviteAlreadyProcessed)

		n, err := f.store.Members().CountMembersByWebsite(ctx, f.website.ID)
		require.NoError(t, err)
		require.Zero(t, n)
	})
}

func TestInviteReject(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	inv := f.issue(t, "guest@example.com")

	require.ErrorIs(t, f.svc.Reject(ctx, "unknown", ""), ErrInviteNotFound)
	require.NoError(t, f.svc.Reject(ctx, inv.Token, "  not interested "))

	stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusRejected, stored.Status)
	require.Equal(t, "not interested", stored.RejectionReason)
	require.NotNil(t, stored.RejectedAt)

	err = f.svc.Reject(ctx, inv.Token, "")
	require.ErrorIs(t, err, ErrInviteNotPending)
	require.EqualError(t, err, "Invite has already been rejected")
}

func TestInviteRevoke(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	inv := f.issue(t, "guest@example.com")
	stranger := seedUser(t, f.store, "stranger@example.com", "", "")

	require.ErrorIs(t, f.svc.Revoke(ctx, "missing", f.owner.ID), ErrInviteNotFound)
	require.ErrorIs(t, f.svc.Revoke(ctx, inv.ID, stranger.ID), ErrForbidden)
	require.NoError(t, f.svc.Revoke(ctx, inv.ID, f.owner.ID))

	stored, err := f.store.Invites().GetInviteByID(ctx, inv.ID)
	require.NoError(t, err)
	require.Equal(t, domain.InviteStatusRevoked, stored.Status)
	require.NotNil(t, stored.RevokedAt)

	require.ErrorIs(t, f.svc.Revoke(ctx, inv.ID, f.owner.ID), ErrOnlyPendingRevocable)

	_, err = f.svc.Accept(ctx, inv.Token)
	require.EqualError(t, err, "Invite has already been revoked")
}

func TestInviteResend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	inv := f.issue(t, "guest@example.com")
	f.clock = f.clock.Add(6 * 24 * time.Hour)

	resent, err := f.svc.Resend(ctx, inv.ID, f.owner.ID)
	require.NoError(t, err)
	require.Regexp(t, hexToken, resent.Token)
	require.NotEqual(t, inv.Token, resent.Token)
	require.WithinDuration(t, f.clock.Add(domain.InviteTTL), resent.ExpiresAt, time.Second)

	_, err = f.svc.GetByToken(ctx, inv.Token)
	require.ErrorIs(t, err, ErrInviteNotFoundOrExpired)
	_, err = f.svc.GetByToken(ctx, resent.Token)
	require.NoError(t, err)

	msgs := f.mailer.messages()
	require.Len(t, msgs, 2)
	require.Contains(t, msgs[1].HTML, resent.Token)

	require.NoError(t, f.svc.Reject(ctx, resent.Token, ""))
	_, err = f.svc.Resend(ctx, inv.ID, f.owner.ID)
	require.ErrorIs(t, err, ErrOnlyPendingResend)
}

func TestInviteList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	var ids []string
	for _, email := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		ids = append(ids, f.issue(t, email).ID)
		f.clock = f.clock.Add(time.Second)
	}
	require.NoError(t, f.svc.Revoke(ctx, ids[0], f.owner.ID))

	page, err := f.svc.List(ctx, f.website.ID, f.owner.ID, domain.NewPageRequest(1, 2), "")
	require.NoError(t, err)
	require.Equal(t, 3, page.Total)
	require.Equal(t, 2, page.TotalPages)
	require.Len(t, page.Items, 2)
	require.Equal(t, ids[2], page.Items[0].ID)

	pending, err := f.svc.List(ctx, f.website.ID, f.owner.ID, domain.NewPageRequest(1, 10), "pending")
	require.NoError(t, err)
	require.Equal(t, 2, pending.Total)

	_, err = f.svc.List(ctx, f.website.ID, f.owner.ID, domain.NewPageRequest(1, 10), "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)

	stranger := seedUser(t, f.store, "stranger@example.com", "", "")
	_, err = f.svc.List(ctx, f.website.ID, stranger.ID, domain.NewPageRequest(1, 10), "")
	require.ErrorIs(t, err, ErrForbidden)
}
