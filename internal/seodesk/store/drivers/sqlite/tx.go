package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/seodesk/internal/seodesk/store"
	"github.com/aussiebroadwan/seodesk/internal/seodesk/store/drivers/sqlite/gen"
)

// txStore exposes the repositories bound to one transaction. Accepting an
// invite writes the membership and the status change through it.
type txStore struct {
	tx *sql.Tx
	q  *gen.Queries
}

func newTx(tx *sql.Tx) *txStore {
	return &txStore{tx: tx, q: gen.New(tx)}
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

// Close leaves the outer database open.
func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

// Nested transactions are not supported.
func (t *txStore) Tx(ctx context.Context) (store.Tx, error) { return nil, sql.ErrTxDone }

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users       { return &usersRepo{q: t.q} }
func (t *txStore) Websites() store.Websites { return &websitesRepo{q: t.q} }
func (t *txStore) Invites() store.Invites   { return &invitesRepo{q: t.q} }
func (t *txStore) Members() store.Members   { return &membersRepo{q: t.q} }
func (t *txStore) Keywords() store.Keywords { return &keywordsRepo{q: t.q} }
func (t *txStore) Articles() store.Articles { return &articlesRepo{q: t.q} }

// Migrations run before any transaction is opened.
func (t *txStore) ApplyMigrations() error { return nil }
