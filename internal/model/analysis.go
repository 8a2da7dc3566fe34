// File: internal/model/analysis.go
package model

import "time"

// Analysis is one saved chart analysis. OwnerID and Data never change after
// creation; fileName/chartType/xAxis/yAxis may be edited by an admin.
type Analysis struct {
	ID        string           `bson:"_id,omitempty" json:"id"`
	OwnerID   string           `bson:"owner_id" json:"owner_id"`
	FileName  string           `bson:"file_name" json:"file_name"`
	XAxis     string           `bson:"x_axis" json:"x_axis"`
	YAxis     string           `bson:"y_axis" json:"y_axis"`
	ChartType string           `bson:"chart_type" json:"chart_type"`
	Data      []map[string]any `bson:"data" json:"data"`
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time        `bson:"updated_at" json:"updated_at"`
}

// AnalysisWithOwner is an Analysis with the owner's username joined in,
// returned by the admin listing endpoints.
type AnalysisWithOwner struct {
	Analysis      `bson:",inline"`
	OwnerUsername string `bson:"owner_username" json:"owner_username"`
}
