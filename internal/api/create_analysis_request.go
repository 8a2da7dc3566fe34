package api

// swagger:model api.CreateAnalysisRequest
type CreateAnalysisRequest struct {
	FileName  string           `json:"fileName" validate:"required" example:"sales-q3.xlsx"`
	XAxis     string           `json:"xAxis" validate:"required" example:"Month"`
	YAxis     string           `json:"yAxis" validate:"required" example:"Revenue"`
	ChartType string           `json:"chartType" validate:"required" example:"bar"`
	Data      []map[string]any `json:"data" validate:"required"`
}
