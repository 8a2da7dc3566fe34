// File: internal/store/store.go
package store

import (
	"context"
	"errors"

	"analytiq/internal/model"
)

// Sentinel errors mapped to HTTP statuses at the handler boundary.
var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate")
)

// AnalysisUpdate carries the editable analysis fields. Nil means "keep the
// stored value". The data rows are immutable and not represented here.
type AnalysisUpdate struct {
	FileName  *string
	ChartType *string
	XAxis     *string
	YAxis     *string
}

// UserStore persists user accounts.
type UserStore interface {
	Create(ctx context.Context, u *model.User) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
	// UpdateRole overwrites the role of an existing user.
	UpdateRole(ctx context.Context, id, role string) error
	// IncrementAnalysisCount atomically adds one to the user's counter.
	IncrementAnalysisCount(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// AnalysisStore persists analysis history records.
type AnalysisStore interface {
	Create(ctx context.Context, a *model.Analysis) (*model.Analysis, error)
	// ListByOwner returns one user's records, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]model.Analysis, error)
	// ListWithOwner returns records with the owner username joined in,
	// newest first. An empty ownerID selects every record.
	ListWithOwner(ctx context.Context, ownerID string) ([]model.AnalysisWithOwner, error)
	// Update applies the non-nil fields and returns the updated record with
	// its owner username. ErrNotFound when the id does not exist.
	Update(ctx context.Context, id string, upd AnalysisUpdate) (*model.AnalysisWithOwner, error)
	// Delete removes a record. ErrNotFound when the id does not exist.
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

// Store bundles the backing stores of one database backend.
type Store interface {
	Users() UserStore
	Analyses() AnalysisStore
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
