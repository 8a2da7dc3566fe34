// File: internal/store/mongostore/analysis.go
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"analytiq/internal/model"
	"analytiq/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type analysisStore struct {
	col   *mongo.Collection
	users *mongo.Collection
}

func (s *analysisStore) Create(ctx context.Context, a *model.Analysis) (*model.Analysis, error) {
	a.ID = primitive.NewObjectID().Hex()
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now
	if _, err := s.col.InsertOne(ctx, a); err != nil {
		return nil, fmt.Errorf("CreateAnalysis: %w", err)
	}
	return a, nil
}

func (s *analysisStore) ListByOwner(ctx context.Context, ownerID string) ([]model.Analysis, error) {
	cur, err := s.col.Find(ctx, bson.M{"owner_id": ownerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("ListAnalysesByOwner: %w", err)
	}
	var out []model.Analysis
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("ListAnalysesByOwner: %w", err)
	}
	return out, nil
}

// ListWithOwner joins the owner's username via $lookup, the driver-side
// equivalent of populate in the document model.
func (s *analysisStore) ListWithOwner(ctx context.Context, ownerID string) ([]model.AnalysisWithOwner, error) {
	match := bson.M{}
	if ownerID != "" {
		match["owner_id"] = ownerID
	}
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         s.users.Name(),
			"localField":   "owner_id",
			"foreignField": "_id",
			"as":           "owner_doc",
		}}},
		{{Key: "$unwind", Value: bson.M{"path": "$owner_doc", "preserveNullAndEmptyArrays": true}}},
		{{Key: "$addFields", Value: bson.M{"owner_username": "$owner_doc.username"}}},
		{{Key: "$project", Value: bson.M{"owner_doc": 0}}},
	}
	cur, err := s.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
	}
	var out []model.AnalysisWithOwner
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("ListAnalysesWithOwner: %w", err)
	}
	return out, nil
}

// Update applies only the provided fields; the data rows are never part of
// the $set document.
func (s *analysisStore) Update(ctx context.Context, id string, upd store.AnalysisUpdate) (*model.AnalysisWithOwner, error) {
	set := bson.M{"updated_at": time.Now().UTC()}
	if upd.FileName != nil {
		set["file_name"] = *upd.FileName
	}
	if upd.ChartType != nil {
		set["chart_type"] = *upd.ChartType
	}
	if upd.XAxis != nil {
		set["x_axis"] = *upd.XAxis
	}
	if upd.YAxis != nil {
		set["y_axis"] = *upd.YAxis
	}

	var a model.Analysis
	err := s.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("UpdateAnalysis: %w", store.ErrNotFound)
		}
		return nil, fmt.Errorf("UpdateAnalysis: %w", err)
	}

	out := &model.AnalysisWithOwner{Analysis: a}
	var owner model.User
	if err := s.users.FindOne(ctx, bson.M{"_id": a.OwnerID}).Decode(&owner); err == nil {
		out.OwnerUsername = owner.Username
	}
	return out, nil
}

func (s *analysisStore) Delete(ctx context.Context, id string) error {
	res, err := s.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("DeleteAnalysis: %w", err)
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *analysisStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("CountAnalyses: %w", err)
	}
	return n, nil
}
