package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPageRequest(t *testing.T) {
	require.Equal(t, PageRequest{Page: 1, Limit: DefaultPageLimit}, NewPageRequest(0, 0))
	require.Equal(t, PageRequest{Page: 3, Limit: MaxPageLimit}, NewPageRequest(3, 500))
	require.Equal(t, 20, NewPageRequest(3, 10).Offset())
}

func TestNewPage(t *testing.T) {
	p := NewPage([]int{1, 2}, 12, NewPageRequest(2, 5))
	require.Equal(t, 3, p.TotalPages)
	require.Equal(t, 12, p.Total)

	empty := NewPage[int](nil, 0, NewPageRequest(1, 10))
	require.NotNil(t, empty.Items)
	require.Zero(t, empty.TotalPages)
}

func TestParseInviteStatus(t *testing.T) {
	st, ok := ParseInviteStatus("pending")
	require.True(t, ok)
	require.Equal(t, InviteStatusPending, st)

	_, ok = ParseInviteStatus("archived")
	require.False(t, ok)
}
