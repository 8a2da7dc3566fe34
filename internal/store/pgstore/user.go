// File: internal/store/pgstore/user.go
package pgstore

import (
	"context"
	"fmt"

	"analytiq/internal/database"
	"analytiq/internal/model"
	"analytiq/internal/store"
)

type userStore struct {
	db database.DB
}

func (s *userStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`INSERT INTO users (username, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, analysis_count, created_at`,
		u.Username,
		u.PasswordHash,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.AnalysisCount, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", mapError(err))
	}
	return u, nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, analysis_count, created_at
		 FROM users WHERE id = $1`,
		id,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AnalysisCount, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetUserByID: %w", mapError(err))
	}
	return u, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row := s.db.QueryRow(ctx,
		`SELECT id, username, password_hash, role, analysis_count, created_at
		 FROM users WHERE username = $1`,
		username,
	)
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AnalysisCount, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("GetUserByUsername: %w", mapError(err))
	}
	return u, nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, username, password_hash, role, analysis_count, created_at
		 FROM users ORDER BY created_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Role, &u.AnalysisCount, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("ListUsers: %w", err)
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func (s *userStore) UpdateRole(ctx context.Context, id, role string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET role = $1 WHERE id = $2`,
		role, id,
	)
	if err != nil {
		return fmt.Errorf("UpdateUserRole: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

// IncrementAnalysisCount is a single UPDATE so concurrent creations by the
// same user never lose an increment.
func (s *userStore) IncrementAnalysisCount(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx,
		`UPDATE users SET analysis_count = analysis_count + 1 WHERE id = $1`,
		id,
	)
	if err != nil {
		return fmt.Errorf("IncrementAnalysisCount: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}
