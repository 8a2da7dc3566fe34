// File: internal/router/router.go
package router

import (
	"github.com/labstack/echo/v4"

	"analytiq/internal/cache"
	"analytiq/internal/handler"
	"analytiq/internal/handler/auth"
	"analytiq/internal/handler/history"
	"analytiq/internal/handler/users"
	"analytiq/internal/middleware"
	"analytiq/internal/model"
	"analytiq/internal/service"
	"analytiq/internal/store"
	"analytiq/internal/worker"
)

// Setup registers all routes. Admin routes chain the auth gate before the
// role gate; the role gate alone would never see an identity.
func Setup(e *echo.Echo, st store.Store, cch cache.Cache, tokens *service.Tokens, pool worker.Pool) {
	api := e.Group("/api")

	requireAuth := middleware.RequireAuth(tokens)
	requireAdmin := middleware.RequireRole(tokens, model.RoleAdmin)

	// health and dashboard stats
	api.GET("/ping", handler.PingHandler(st), requireAuth)
	api.GET("/stats", handler.StatsHandler(st, cch), requireAdmin)

	// public auth endpoints
	api.POST("/auth/register", auth.RegisterHandler(st.Users()))
	api.POST("/auth/login", auth.LoginHandler(st.Users(), tokens))
	api.POST("/auth/admin/login", auth.AdminLoginHandler(st.Users(), tokens))

	// analysis history
	chart := api.Group("/chart")
	chart.GET("/history", history.ListMyHistoryHandler(st.Analyses()), requireAuth)
	chart.POST("/history", history.CreateHistoryHandler(st, pool), requireAuth)
	chart.GET("/history/all", history.ListAllHistoryHandler(st.Analyses()), requireAdmin)
	chart.GET("/history/user/:userId", history.ListUserHistoryHandler(st.Analyses()), requireAdmin)
	chart.PUT("/history/:id", history.UpdateHistoryHandler(st.Analyses()), requireAdmin)
	chart.DELETE("/history/:id", history.DeleteHistoryHandler(st.Analyses()), requireAdmin)

	// user administration
	apiUsers := api.Group("/users", requireAdmin)
	apiUsers.GET("", users.ListUsersHandler(st.Users()))
	apiUsers.PUT("/:id/role", users.UpdateUserRoleHandler(st.Users()))
}
