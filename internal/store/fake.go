// File: internal/store/fake.go
package store

import (
	"context"

	"analytiq/internal/model"
)

// FakeUserStore implements UserStore with per-method hooks for tests.
type FakeUserStore struct {
	CreateFn                 func(ctx context.Context, u *model.User) (*model.User, error)
	GetByIDFn                func(ctx context.Context, id string) (*model.User, error)
	GetByUsernameFn          func(ctx context.Context, username string) (*model.User, error)
	ListFn                   func(ctx context.Context) ([]model.User, error)
	UpdateRoleFn             func(ctx context.Context, id, role string) error
	IncrementAnalysisCountFn func(ctx context.Context, id string) error
	CountFn                  func(ctx context.Context) (int64, error)
}

func (f *FakeUserStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, u)
	}
	panic("unexpected Create")
}

func (f *FakeUserStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	if f.GetByIDFn != nil {
		return f.GetByIDFn(ctx, id)
	}
	panic("unexpected GetByID")
}

func (f *FakeUserStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if f.GetByUsernameFn != nil {
		return f.GetByUsernameFn(ctx, username)
	}
	panic("unexpected GetByUsername")
}

func (f *FakeUserStore) List(ctx context.Context) ([]model.User, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx)
	}
	panic("unexpected List")
}

func (f *FakeUserStore) UpdateRole(ctx context.Context, id, role string) error {
	if f.UpdateRoleFn != nil {
		return f.UpdateRoleFn(ctx, id, role)
	}
	panic("unexpected UpdateRole")
}

func (f *FakeUserStore) IncrementAnalysisCount(ctx context.Context, id string) error {
	if f.IncrementAnalysisCountFn != nil {
		return f.IncrementAnalysisCountFn(ctx, id)
	}
	panic("unexpected IncrementAnalysisCount")
}

func (f *FakeUserStore) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	panic("unexpected Count")
}

// FakeAnalysisStore implements AnalysisStore with per-method hooks for tests.
type FakeAnalysisStore struct {
	CreateFn        func(ctx context.Context, a *model.Analysis) (*model.Analysis, error)
	ListByOwnerFn   func(ctx context.Context, ownerID string) ([]model.Analysis, error)
	ListWithOwnerFn func(ctx context.Context, ownerID string) ([]model.AnalysisWithOwner, error)
	UpdateFn        func(ctx context.Context, id string, upd AnalysisUpdate) (*model.AnalysisWithOwner, error)
	DeleteFn        func(ctx context.Context, id string) error
	CountFn         func(ctx context.Context) (int64, error)
}

func (f *FakeAnalysisStore) Create(ctx context.Context, a *model.Analysis) (*model.Analysis, error) {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, a)
	}
	panic("unexpected Create")
}

func (f *FakeAnalysisStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Analysis, error) {
	if f.ListByOwnerFn != nil {
		return f.ListByOwnerFn(ctx, ownerID)
	}
	panic("unexpected ListByOwner")
}

func (f *FakeAnalysisStore) ListWithOwner(ctx context.Context, ownerID string) ([]model.AnalysisWithOwner, error) {
	if f.ListWithOwnerFn != nil {
		return f.ListWithOwnerFn(ctx, ownerID)
	}
	panic("unexpected ListWithOwner")
}

func (f *FakeAnalysisStore) Update(ctx context.Context, id string, upd AnalysisUpdate) (*model.AnalysisWithOwner, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, upd)
	}
	panic("unexpected Update")
}

func (f *FakeAnalysisStore) Delete(ctx context.Context, id string) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	panic("unexpected Delete")
}

func (f *FakeAnalysisStore) Count(ctx context.Context) (int64, error) {
	if f.CountFn != nil {
		return f.CountFn(ctx)
	}
	panic("unexpected Count")
}

// FakeStore bundles fakes into a Store.
type FakeStore struct {
	UsersStore    *FakeUserStore
	AnalysesStore *FakeAnalysisStore
	PingFn        func(ctx context.Context) error
	CloseFn       func(ctx context.Context) error
}

func (f *FakeStore) Users() UserStore {
	if f.UsersStore != nil {
		return f.UsersStore
	}
	panic("unexpected Users")
}

func (f *FakeStore) Analyses() AnalysisStore {
	if f.AnalysesStore != nil {
		return f.AnalysesStore
	}
	panic("unexpected Analyses")
}

func (f *FakeStore) Ping(ctx context.Context) error {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	panic("unexpected Ping")
}

func (f *FakeStore) Close(ctx context.Context) error {
	if f.CloseFn != nil {
		return f.CloseFn(ctx)
	}
	return nil
}
