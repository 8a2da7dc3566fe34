// File: internal/handler/stats_test.go
package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"analytiq/internal/cache"
	"analytiq/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestStatsHandler(t *testing.T) {
	e := echo.New()

	t.Run("cache hit skips the store", func(t *testing.T) {
		ctx, rec := newHandlerCtx(e)
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				require.Equal(t, statsCacheKey, key)
				return redis.NewStringResult(`{"total_users":12,"total_analyses":87}`, nil)
			},
		}
		// store fakes left without hooks; any store call would panic
		h := StatsHandler(&store.FakeStore{}, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total_users":12`)
		require.Contains(t, rec.Body.String(), `"total_analyses":87`)
	})

	t.Run("cache miss counts and refills", func(t *testing.T) {
		ctx, rec := newHandlerCtx(e)
		var setKey string
		var setTTL time.Duration
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				setKey, setTTL = key, ttl
				return redis.NewStatusResult("OK", nil)
			},
		}
		st := &store.FakeStore{
			UsersStore: &store.FakeUserStore{
				CountFn: func(ctx context.Context) (int64, error) { return 3, nil },
			},
			AnalysesStore: &store.FakeAnalysisStore{
				CountFn: func(ctx context.Context) (int64, error) { return 9, nil },
			},
		}
		h := StatsHandler(st, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total_users":3`)
		require.Contains(t, rec.Body.String(), `"total_analyses":9`)
		require.Equal(t, statsCacheKey, setKey)
		require.Equal(t, statsCacheTTL, setTTL)
	})

	t.Run("user count failure", func(t *testing.T) {
		ctx, rec := newHandlerCtx(e)
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		st := &store.FakeStore{
			UsersStore: &store.FakeUserStore{
				CountFn: func(ctx context.Context) (int64, error) { return 0, errors.New("boom") },
			},
		}
		h := StatsHandler(st, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("analysis count failure", func(t *testing.T) {
		ctx, rec := newHandlerCtx(e)
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		st := &store.FakeStore{
			UsersStore: &store.FakeUserStore{
				CountFn: func(ctx context.Context) (int64, error) { return 3, nil },
			},
			AnalysesStore: &store.FakeAnalysisStore{
				CountFn: func(ctx context.Context) (int64, error) { return 0, errors.New("boom") },
			},
		}
		h := StatsHandler(st, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("corrupt cache entry falls through to the store", func(t *testing.T) {
		ctx, rec := newHandlerCtx(e)
		cch := &cache.FakeCache{
			GetFn: func(ctx context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("not json", nil)
			},
			SetFn: func(ctx context.Context, key string, value any, ttl time.Duration) *redis.StatusCmd {
				return redis.NewStatusResult("OK", nil)
			},
		}
		st := &store.FakeStore{
			UsersStore: &store.FakeUserStore{
				CountFn: func(ctx context.Context) (int64, error) { return 1, nil },
			},
			AnalysesStore: &store.FakeAnalysisStore{
				CountFn: func(ctx context.Context) (int64, error) { return 2, nil },
			},
		}
		h := StatsHandler(st, cch)
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), `"total_users":1`)
	})
}
