// File: internal/store/pgstore/analysis.go
package pgstore

import (
	"context"
	"encoding/json"
	"fmt"

	"analytiq/internal/database"
	"analytiq/internal/model"
	"analytiq/internal/store"
)

type analysisStore struct {
	db database.DB
}

func (s *analysisStore) Create(ctx context.Context, a *model.Analysis) (*model.Analysis, error) {
	data, err := json.Marshal(a.Data)
	if err != nil {
		return nil, fmt.Errorf("CreateAnalysis: %w", err)
	}
	row := s.db.QueryRow(ctx,
		`INSERT INTO analyses (owner_id, file_name, x_axis, y_axis, chart_type, data)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		a.OwnerID,
		a.FileName,
		a.XAxis,
		a.YAxis,
		a.ChartType,
		data,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, fmt.Errorf("CreateAnalysis: %w", mapError(err))
	}
	return a, nil
}

func scanAnalysis(dest *model.Analysis, scan func(...any) error) error {
	var raw []byte
	if err := scan(
		&dest.ID,
		&dest.OwnerID,
		&dest.FileName,
		&dest.XAxis,
		&dest.YAxis,
		&dest.ChartType,
		&raw,
		&dest.CreatedAt,
		&dest.UpdatedAt,
	); err != nil {
		return err
	}
	return json.Unmarshal(raw, &dest.Data)
}

func (s *analysisStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Analysis, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, owner_id, file_name, x_axis, y_axis, chart_type, data, created_at, updated_at
		 FROM analyses WHERE owner_id = $1
		 ORDER BY created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAnalysesByOwner: %w", err)
	}
	defer rows.Close()

	var out []model.Analysis
	for rows.Next() {
		var a model.Analysis
		if err := scanAnalysis(&a, rows.Scan); err != nil {
			return nil, fmt.Errorf("ListAnalysesByOwner: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAnalysesByOwner: %w", err)
	}
	return out, nil
}

func (s *analysisStore) ListWithOwner(ctx context.Context, ownerID string) ([]model.AnalysisWithOwner, error) {
	rows, err := s.db.Query(ctx,
		`SELECT a.id, a.owner_id, a.file_name, a.x_axis, a.y_axis, a.chart_type, a.data,
		        a.created_at, a.updated_at, u.username
		 FROM analyses a
		 JOIN users u ON u.id = a.owner_id
		 WHERE ($1 = '' OR a.owner_id = $1)
		 ORDER BY a.created_at DESC`,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
	}
	defer rows.Close()

	var out []model.AnalysisWithOwner
	for rows.Next() {
		var a model.AnalysisWithOwner
		var raw []byte
		if err := rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.FileName,
			&a.XAxis,
			&a.YAxis,
			&a.ChartType,
			&raw,
			&a.CreatedAt,
			&a.UpdatedAt,
			&a.OwnerUsername,
		); err != nil {
			return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
		}
		if err := json.Unmarshal(raw, &a.Data); err != nil {
			return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
	}
	return out, nil
}

// Update uses COALESCE so nil fields keep their stored value; the data rows
// are never touched.
func (s *analysisStore) Update(ctx context.Context, id string, upd store.AnalysisUpdate) (*model.AnalysisWithOwner, error) {
	tag, err := s.db.Exec(ctx,
		`UPDATE analyses
		 SET file_name  = COALESCE($1, file_name),
		     chart_type = COALESCE($2, chart_type),
		     x_axis     = COALESCE($3, x_axis),
		     y_axis     = COALESCE($4, y_axis),
		     updated_at = now()
		 WHERE id = $5`,
		upd.FileName,
		upd.ChartType,
		upd.XAxis,
		upd.YAxis,
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("UpdateAnalysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, store.ErrNotFound
	}

	row := s.db.QueryRow(ctx,
		`SELECT a.id, a.owner_id, a.file_name, a.x_axis, a.y_axis, a.chart_type, a.data,
		        a.created_at, a.updated_at, u.username
		 FROM analyses a
		 JOIN users u ON u.id = a.owner_id
		 WHERE a.id = $1`,
		id,
	)
	var a model.AnalysisWithOwner
	var raw []byte
	if err := row.Scan(
		&a.ID,
		&a.OwnerID,
		&a.FileName,
		&a.XAxis,
		&a.YAxis,
		&a.ChartType,
		&raw,
		&a.CreatedAt,
		&a.UpdatedAt,
		&a.OwnerUsername,
	); err != nil {
		return nil, fmt.Errorf("UpdateAnalysis: %w", mapError(err))
	}
	if err := json.Unmarshal(raw, &a.Data); err != nil {
		return nil, fmt.Errorf("UpdateAnalysis: %w", err)
	}
	return &a, nil
}

func (s *analysisStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.Exec(ctx, `DELETE FROM analyses WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("DeleteAnalysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *analysisStore) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := s.db.QueryRow(ctx, `SELECT COUNT(*) FROM analyses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountAnalyses: %w", err)
	}
	return n, nil
}
