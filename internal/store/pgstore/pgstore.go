// File: internal/store/pgstore/pgstore.go
// Package pgstore implements store.Store on PostgreSQL.
package pgstore

import (
	"context"
	"errors"

	"analytiq/internal/database"
	"analytiq/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type Store struct {
	db       database.DB
	users    *userStore
	analyses *analysisStore
}

func New(db database.DB) *Store {
	return &Store{
		db:       db,
		users:    &userStore{db: db},
		analyses: &analysisStore{db: db},
	}
}

func (s *Store) Users() store.UserStore         { return s.users }
func (s *Store) Analyses() store.AnalysisStore  { return s.analyses }
func (s *Store) Ping(ctx context.Context) error { return s.db.Ping(ctx) }

func (s *Store) Close(context.Context) error {
	s.db.Close()
	return nil
}

// uniqueViolation is the postgres error code for a unique index conflict.
const uniqueViolation = "23505"

func mapError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return store.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return store.ErrDuplicate
	}
	return err
}
