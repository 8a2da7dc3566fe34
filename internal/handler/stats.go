// File: internal/handler/stats.go
package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"analytiq/internal/api"
	"analytiq/internal/cache"
	"analytiq/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	statsCacheKey = "analytiq:stats"
	statsCacheTTL = 30 * time.Second
)

// StatsHandler returns totals for the admin dashboard, cached briefly in
// redis so repeated dashboard loads do not hit the store.
// @Summary     Platform statistics
// @Description Returns total user and analysis counts (admin only)
// @Tags        stats
// @Produce     json
// @Success     200 {object} api.StatsResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /stats [get]
func StatsHandler(st store.Store, cch cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if raw, err := cch.Get(ctx, statsCacheKey).Result(); err == nil {
			var resp api.StatsResponse
			if json.Unmarshal([]byte(raw), &resp) == nil {
				return c.JSON(http.StatusOK, resp)
			}
		}

		users, err := st.Users().Count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		analyses, err := st.Analyses().Count(ctx)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		resp := api.StatsResponse{TotalUsers: users, TotalAnalyses: analyses}
		if b, err := json.Marshal(resp); err == nil {
			// best effort; a cold cache only costs two counts
			cch.Set(ctx, statsCacheKey, b, statsCacheTTL)
		}
		return c.JSON(http.StatusOK, resp)
	}
}
