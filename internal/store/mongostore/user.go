// File: internal/store/mongostore/user.go
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

type userStore struct {
	col *mongo.Collection
}

func (s *userStore) Create(ctx context.Context, u *model.User) (*model.User, error) {
	u.ID = primitive.NewObjectID().Hex()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	if _, err := s.col.InsertOne(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("CreateUser: %w", store.ErrDuplicate)
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

func (s *userStore) GetByID(ctx context.Context, id string) (*model.User, error) {
	u := &model.User{}
	if err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("GetUserByID: %w", store.ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByID: %w", err)
	}
	return u, nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	u := &model.User{}
	if err := s.col.FindOne(ctx, bson.M{"username": username}).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("GetUserByUsername: %w", store.ErrNotFound)
		}
		return nil, fmt.Errorf("GetUserByUsername: %w", err)
	}
	return u, nil
}

func (s *userStore) List(ctx context.Context) ([]model.User, error) {
	cur, err := s.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	var users []model.User
	if err := cur.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("ListUsers: %w", err)
	}
	return users, nil
}

func (s *userStore) UpdateRole(ctx context.Context, id, role string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"role": role}})
	if err != nil {
		return fmt.Errorf("UpdateUserRole: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

// IncrementAnalysisCount uses $inc so concurrent creations by the same user
// never lose an increment.
func (s *userStore) IncrementAnalysisCount(ctx context.Context, id string) error {
	res, err := s.col.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"analysis_count": 1}})
	if err != nil {
		return fmt.Errorf("IncrementAnalysisCount: %w", err)
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *userStore) Count(ctx context.Context) (int64, error) {
	n, err := s.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}
