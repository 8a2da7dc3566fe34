package api

// swagger:model api.UpdateAnalysisRequest
// Absent fields keep their stored value. The data rows of an analysis are
// immutable and cannot be updated through this request.
type UpdateAnalysisRequest struct {
	FileName  *string `json:"fileName,omitempty" example:"sales-q3.xlsx"`
	ChartType *string `json:"chartType,omitempty" example:"line"`
	XAxis     *string `json:"xAxis,omitempty" example:"Month"`
	YAxis     *string `json:"yAxis,omitempty" example:"Profit"`
}
