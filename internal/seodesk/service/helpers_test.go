package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/domain"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/jobs"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite"
	"github.com/aussiebroadwan/seodesk/pkg/idx"
	"github.com/aussiebroadwan/seodesk/pkg/mailx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func seedUser(t *testing.T, s store.Store, email, first, last string) domain.User {
	t.Helper()

	u, err := s.Users().UpsertUser(context.Background(), domain.User{
		ID:        idx.New().String(),
		Email:     email,
		FirstName: first,
		LastName:  last,
	})
	require.NoError(t, err)
	return u
}

func seedWebsite(t *testing.T, s store.Store, owner domain.User) domain.Website {
	t.Helper()

	w := domain.Website{
		ID:     idx.New().String(),
		UserID: owner.ID,
		URL:    "https://" + owner.ID + ".example.com",
	}
	require.NoError(t, s.Websites().CreateWebsite(context.Background(), w))
	return w
}

// recordingMailer keeps every message it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []mailx.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailx.Message) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.sent = append(m.sent, msg)
	return idx.New().String(), nil
}

func (m *recordingMailer) messages() []mailx.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailx.Message(nil), m.sent...)
}

// recordingQueue records tasks instead of running them.
type recordingQueue struct {
	mu    sync.Mutex
	tasks []jobs.Task
	err   error
}

func (q *recordingQueue) Enqueue(_ context.Context, t jobs.Task) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.err != nil {
		return q.err
	}
	q.tasks = append(q.tasks, t)
	return nil
}

func (q *recordingQueue) recorded() []jobs.Task {
	q.mu.Lock()
	defer q.mu.Unlock()
	return append([]jobs.Task(nil), q.tasks...)
}

// beforeTxStore runs hook right before every transaction, standing in for a
// concurrent writer that gets there first.
type beforeTxStore struct {
	store.Store
	hook func()
}

func (s *beforeTxStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	s.hook()
	return s.Store.WithTx(ctx, fn)
}

var errProvider = errors.New("provider unavailable")
