package api

// swagger:model api.StatsResponse
type StatsResponse struct {
	TotalUsers    int64 `json:"total_users" example:"12"`
	TotalAnalyses int64 `json:"total_analyses" example:"87"`
}
