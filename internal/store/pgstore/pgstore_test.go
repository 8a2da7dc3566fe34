package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"analytiq/internal/database"
	"analytiq/internal/model"
	"analytiq/internal/store"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	scanFn func(dest ...any) error
}

func (r fakeRow) Scan(dest ...any) error { return r.scanFn(dest...) }

type fakeRows struct {
	scans []func(dest ...any) error
	idx   int
	err   error
}

func (r *fakeRows) Close()                                       {}
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeRows) Next() bool                                   { return r.idx < len(r.scans) }
func (r *fakeRows) Scan(dest ...any) error {
	fn := r.scans[r.idx]
	r.idx++
	return fn(dest...)
}
func (r *fakeRows) Values() ([]any, error) { return nil, nil }
func (r *fakeRows) RawValues() [][]byte    { return nil }
func (r *fakeRows) Conn() *pgx.Conn        { return nil }

func setStrings(dest []any, idx map[int]string) {
	for i, v := range idx {
		*(dest[i].(*string)) = v
	}
}

func TestUserCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "INSERT INTO users")
			require.Equal(t, []any{"alice", "hash", model.RoleUser}, args)
			return fakeRow{scanFn: func(dest ...any) error {
				*(dest[0].(*string)) = "u1"
				*(dest[1].(*int)) = 0
				*(dest[2].(*time.Time)) = time.Now()
				return nil
			}}
		}}
		u, err := New(db).Users().Create(ctx, &model.User{Username: "alice", PasswordHash: "hash", Role: model.RoleUser})
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
	})

	t.Run("duplicate username", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scanFn: func(...any) error {
				return &pgconn.PgError{Code: uniqueViolation}
			}}
		}}
		_, err := New(db).Users().Create(ctx, &model.User{})
		require.ErrorIs(t, err, store.ErrDuplicate)
	})
}

func TestUserGet(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeRow{scanFn: func(...any) error { return pgx.ErrNoRows }}
		}}
		_, err := New(db).Users().GetByID(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
		_, err = New(db).Users().GetByUsername(ctx, "missing")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("by username", func(t *testing.T) {
		db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
			require.Contains(t, sql, "WHERE username = $1")
			require.Equal(t, []any{"alice"}, args)
			return fakeRow{scanFn: func(dest ...any) error {
				setStrings(dest, map[int]string{0: "u1", 1: "alice", 2: "hash", 3: model.RoleAdmin})
				return nil
			}}
		}}
		u, err := New(db).Users().GetByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, "u1", u.ID)
		require.True(t, u.IsAdmin())
	})
}

func TestUserUpdateRole(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.Contains(t, sql, "SET role = $1")
		require.Equal(t, []any{model.RoleAdmin, "u1"}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, New(db).Users().UpdateRole(ctx, "u1", model.RoleAdmin))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, New(db).Users().UpdateRole(ctx, "missing", model.RoleAdmin), store.ErrNotFound)
}

func TestUserIncrementAnalysisCount(t *testing.T) {
	ctx := context.Background()

	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		// the increment happens inside the database, not read-modify-write
		require.Contains(t, sql, "analysis_count = analysis_count + 1")
		require.Equal(t, []any{"u1"}, args)
		return pgconn.NewCommandTag("UPDATE 1"), nil
	}}
	require.NoError(t, New(db).Users().IncrementAnalysisCount(ctx, "u1"))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("UPDATE 0"), nil
	}
	require.ErrorIs(t, New(db).Users().IncrementAnalysisCount(ctx, "missing"), store.ErrNotFound)
}

func TestUserList(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryFn: func(context.Context, string, ...any) (pgx.Rows, error) {
		return &fakeRows{scans: []func(dest ...any) error{
			func(dest ...any) error {
				setStrings(dest, map[int]string{0: "u1", 1: "alice", 3: model.RoleUser})
				return nil
			},
			func(dest ...any) error {
				setStrings(dest, map[int]string{0: "u2", 1: "bob", 3: model.RoleAdmin})
				return nil
			},
		}}, nil
	}}
	users, err := New(db).Users().List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "alice", users[0].Username)

	db.QueryFn = func(context.Context, string, ...any) (pgx.Rows, error) { return nil, errors.New("boom") }
	_, err = New(db).Users().List(ctx)
	require.Error(t, err)
}

func TestAnalysisCreate(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
		require.Contains(t, sql, "INSERT INTO analyses")
		require.Equal(t, "u1", args[0])
		var rows []map[string]any
		require.NoError(t, json.Unmarshal(args[5].([]byte), &rows))
		require.Len(t, rows, 1)
		return fakeRow{scanFn: func(dest ...any) error {
			*(dest[0].(*string)) = "a1"
			*(dest[1].(*time.Time)) = time.Now()
			*(dest[2].(*time.Time)) = time.Now()
			return nil
		}}
	}}
	a, err := New(db).Analyses().Create(ctx, &model.Analysis{
		OwnerID:   "u1",
		FileName:  "sales.xlsx",
		XAxis:     "Month",
		YAxis:     "Revenue",
		ChartType: "bar",
		Data:      []map[string]any{{"Month": "Jan", "Revenue": 10}},
	})
	require.NoError(t, err)
	require.Equal(t, "a1", a.ID)
}

func TestAnalysisUpdate(t *testing.T) {
	ctx := context.Background()
	name := "renamed.xlsx"

	t.Run("partial update keeps nil fields", func(t *testing.T) {
		fetched := false
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				require.Contains(t, sql, "COALESCE($1, file_name)")
				require.Equal(t, &name, args[0])
				require.Nil(t, args[1])
				require.Nil(t, args[2])
				require.Nil(t, args[3])
				require.Equal(t, "a1", args[4])
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				fetched = true
				return fakeRow{scanFn: func(dest ...any) error {
					setStrings(dest, map[int]string{0: "a1", 1: "u1", 2: name, 9: "alice"})
					*(dest[6].(*[]byte)) = []byte(`[{"Month":"Jan"}]`)
					return nil
				}}
			},
		}
		a, err := New(db).Analyses().Update(ctx, "a1", store.AnalysisUpdate{FileName: &name})
		require.NoError(t, err)
		require.True(t, fetched)
		require.Equal(t, name, a.FileName)
		require.Equal(t, "alice", a.OwnerUsername)
		require.Len(t, a.Data, 1)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.NewCommandTag("UPDATE 0"), nil
		}}
		_, err := New(db).Analyses().Update(ctx, "missing", store.AnalysisUpdate{FileName: &name})
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestAnalysisDelete(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
		require.Contains(t, sql, "DELETE FROM analyses")
		return pgconn.NewCommandTag("DELETE 1"), nil
	}}
	require.NoError(t, New(db).Analyses().Delete(ctx, "a1"))

	db.ExecFn = func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.NewCommandTag("DELETE 0"), nil
	}
	require.ErrorIs(t, New(db).Analyses().Delete(ctx, "missing"), store.ErrNotFound)
}

func TestAnalysisListWithOwner(t *testing.T) {
	ctx := context.Background()
	var gotArgs []any
	db := &database.FakeDB{QueryFn: func(_ context.Context, sql string, args ...any) (pgx.Rows, error) {
		require.Contains(t, sql, "JOIN users u ON u.id = a.owner_id")
		gotArgs = args
		return &fakeRows{scans: []func(dest ...any) error{
			func(dest ...any) error {
				setStrings(dest, map[int]string{0: "a1", 1: "u1", 9: "alice"})
				*(dest[6].(*[]byte)) = []byte(`[]`)
				return nil
			},
		}}, nil
	}}

	// unrestricted
	out, err := New(db).Analyses().ListWithOwner(ctx, "")
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.Equal(t, []any{""}, gotArgs)
	require.Equal(t, "alice", out[0].OwnerUsername)

	// filtered to one owner
	_, err = New(db).Analyses().ListWithOwner(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, []any{"u1"}, gotArgs)
}

func TestCounts(t *testing.T) {
	ctx := context.Background()
	db := &database.FakeDB{QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
		return fakeRow{scanFn: func(dest ...any) error {
			*(dest[0].(*int64)) = 7
			return nil
		}}
	}}
	n, err := New(db).Users().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 7, n)
	n, err = New(db).Analyses().Count(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 7, n)
}

func TestStorePing(t *testing.T) {
	pinged := false
	db := &database.FakeDB{
		PingFn:  func(context.Context) error { pinged = true; return nil },
		CloseFn: func() {},
	}
	s := New(db)
	require.NoError(t, s.Ping(context.Background()))
	require.True(t, pinged)
	require.NoError(t, s.Close(context.Background()))
}
