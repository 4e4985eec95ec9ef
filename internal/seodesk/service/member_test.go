package service

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/stretchr/testify/require"
)

func TestMemberService(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	f := newInviteFixture(t)
	svc := &MemberService{Store: f.store, Access: &Access{Store: f.store}}

	var memberIDs []string
	for _, email := range []string{"a@example.com", "b@example.com"} {
		seedUser(t, f.store, email, "", "")
		m, err := f.svc.Accept(ctx, f.issue(t, email).Token)
		require.NoError(t, err)
		memberIDs = append(memberIDs, m.ID)
	}
	stranger := seedUser(t, f.store, "stranger@example.com", "", "")

	t.Run("list includes users", func(t *testing.T) {
		page, err := svc.List(ctx, f.website.ID, f.owner.ID, domain.NewPageRequest(1, 10))
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
		require.Len(t, page.Items, 2)
		for _, m := range page.Items {
			require.NotNil(t, m.User)
			require.NotEmpty(t, m.User.Email)
		}
	})

	t.Run("strangers are forbidden", func(t *testing.T) {
		_, err := svc.List(ctx, f.website.ID, stranger.ID, domain.NewPageRequest(1, 10))
		require.ErrorIs(t, err, ErrForbidden)
		_, err = svc.Get(ctx, memberIDs[0], stranger.ID)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("get unknown member", func(t *testing.T) {
		_, err := svc.Get(ctx, "missing", f.owner.ID)
		require.ErrorIs(t, err, ErrMemberNotFound)
		require.EqualError(t, err, "Member not found")
	})

	t.Run("remove keeps the row inactive", func(t *testing.T) {
		require.NoError(t, svc.Remove(ctx, memberIDs[0], f.owner.ID))

		m, err := svc.Get(ctx, memberIDs[0], f.owner.ID)
		require.NoError(t, err)
		require.False(t, m.IsActive)

		count, err := svc.CountActive(ctx, f.website.ID, f.owner.ID)
		require.NoError(t, err)
		require.Equal(t, 1, count)

		page, err := svc.List(ctx, f.website.ID, f.owner.ID, domain.NewPageRequest(1, 10))
		require.NoError(t, err)
		require.Equal(t, 2, page.Total)
	})

	t.Run("update reactivates", func(t *testing.T) {
		active := true
		m, err := svc.Update(ctx, memberIDs[0], f.owner.ID, &active)
		require.NoError(t, err)
		require.True(t, m.IsActive)

		m, err = svc.Update(ctx, memberIDs[0], f.owner.ID, nil)
		require.NoError(t, err)
		require.True(t, m.IsActive)
	})

	t.Run("inactive members lose access", func(t *testing.T) {
		m, err := svc.Get(ctx, memberIDs[1], f.owner.ID)
		require.NoError(t, err)
		require.NoError(t, svc.Remove(ctx, m.ID, f.owner.ID))

		_, err = svc.List(ctx, f.website.ID, m.UserID, domain.NewPageRequest(1, 10))
		require.ErrorIs(t, err, ErrForbidden)
	})
}
