// File: internal/handler/history/history.go
package history

import (
	"context"
	"errors"
	"net/http"

	"analytiq/internal/api"
	"analytiq/internal/middleware"
	"analytiq/internal/model"
	"analytiq/internal/store"
	"analytiq/internal/worker"

	"github.com/labstack/echo/v4"
)

// ListMyHistoryHandler returns the caller's own records, newest first. The
// owner filter comes from the verified claims, never from the request.
// @Summary     List own analysis history
// @Description Returns the authenticated user's analyses, newest first
// @Tags        history
// @Produce     json
// @Success     200 {array}  model.Analysis
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history [get]
func ListMyHistoryHandler(analyses store.AnalysisStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}
		out, err := analyses.ListByOwner(c.Request().Context(), claims.UserID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if out == nil {
			out = []model.Analysis{}
		}
		return c.JSON(http.StatusOK, out)
	}
}

// CreateHistoryHandler stores a new analysis owned by the caller. The
// owner's analysis counter is bumped on the worker pool; the increment
// itself is atomic in the store, so concurrent creations sum exactly.
// @Summary     Save an analysis
// @Description Persists a chart analysis for the authenticated user
// @Tags        history
// @Accept      json
// @Produce     json
// @Param       request body api.CreateAnalysisRequest true "Analysis"
// @Success     200 {object} model.Analysis
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history [post]
func CreateHistoryHandler(st store.Store, pool worker.Pool) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.ClaimsFromContext(c)
		if claims == nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid or missing token"})
		}

		var req api.CreateAnalysisRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		created, err := st.Analyses().Create(c.Request().Context(), &model.Analysis{
			OwnerID:   claims.UserID,
			FileName:  req.FileName,
			XAxis:     req.XAxis,
			YAxis:     req.YAxis,
			ChartType: req.ChartType,
			Data:      req.Data,
		})
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}

		users := st.Users()
		ownerID := claims.UserID
		logger := c.Echo().Logger
		pool.Submit(func() {
			if err := users.IncrementAnalysisCount(context.Background(), ownerID); err != nil {
				logger.Errorf("increment analysis count for %s: %v", ownerID, err)
			}
		})

		return c.JSON(http.StatusOK, created)
	}
}

// ListAllHistoryHandler returns every record with the owner's username.
// @Summary     List all analysis history
// @Description Returns every user's analyses with owner usernames (admin only)
// @Tags        history
// @Produce     json
// @Success     200 {array}  model.AnalysisWithOwner
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history/all [get]
func ListAllHistoryHandler(analyses store.AnalysisStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := analyses.ListWithOwner(c.Request().Context(), "")
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if out == nil {
			out = []model.AnalysisWithOwner{}
		}
		return c.JSON(http.StatusOK, out)
	}
}

// ListUserHistoryHandler returns one user's records for the admin view. Any
// target user id is accepted; an unknown id yields an empty list.
// @Summary     List a user's analysis history
// @Description Returns the analyses of the given user (admin only)
// @Tags        history
// @Produce     json
// @Param       userId path string true "User ID"
// @Success     200 {array}  model.AnalysisWithOwner
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history/user/{userId} [get]
func ListUserHistoryHandler(analyses store.AnalysisStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := analyses.ListWithOwner(c.Request().Context(), c.Param("userId"))
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		if out == nil {
			out = []model.AnalysisWithOwner{}
		}
		return c.JSON(http.StatusOK, out)
	}
}

// UpdateHistoryHandler edits the display fields of any record. Absent
// fields keep their stored value; the data rows cannot be changed.
// @Summary     Update an analysis
// @Description Updates fileName/chartType/xAxis/yAxis of any record (admin only)
// @Tags        history
// @Accept      json
// @Produce     json
// @Param       id      path string                    true "Analysis ID"
// @Param       request body api.UpdateAnalysisRequest true "Fields to update"
// @Success     200 {object} model.AnalysisWithOwner
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history/{id} [put]
func UpdateHistoryHandler(analyses store.AnalysisStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.UpdateAnalysisRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request payload"})
		}

		updated, err := analyses.Update(c.Request().Context(), c.Param("id"), store.AnalysisUpdate{
			FileName:  req.FileName,
			ChartType: req.ChartType,
			XAxis:     req.XAxis,
			YAxis:     req.YAxis,
		})
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "analysis record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, updated)
	}
}

// DeleteHistoryHandler removes any record.
// @Summary     Delete an analysis
// @Description Deletes any analysis record (admin only)
// @Tags        history
// @Produce     json
// @Param       id path string true "Analysis ID"
// @Success     200 {object} api.MessageResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     403 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Security    ApiKeyAuth
// @Router      /chart/history/{id} [delete]
func DeleteHistoryHandler(analyses store.AnalysisStore) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := analyses.Delete(c.Request().Context(), c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "analysis record not found"})
		}
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "server error"})
		}
		return c.JSON(http.StatusOK, api.MessageResponse{Message: "analysis record removed"})
	}
}
