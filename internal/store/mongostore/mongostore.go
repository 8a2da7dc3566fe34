// File: internal/store/mongostore/mongostore.go
// Package mongostore implements store.Store on MongoDB. Documents use plain
// hex strings for _id so ids stay backend-agnostic.
package mongostore

import (
	"context"

	"analytiq/internal/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const databaseName = "analytiq"

type Store struct {
	client   *mongo.Client
	users    *userStore
	analyses *analysisStore
}

// Connect dials MongoDB, pings it and ensures the indexes exist.
func Connect(ctx context.Context, url string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, err
	}

	db := client.Database(databaseName)
	s := &Store{
		client:   client,
		users:    &userStore{col: db.Collection("users")},
		analyses: &analysisStore{col: db.Collection("analyses"), users: db.Collection("users")},
	}
	if err := s.ensureIndexes(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) ensureIndexes(ctx context.Context) error {
	_, err := s.users.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	_, err = s.analyses.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}},
	})
	return err
}

func (s *Store) Users() store.UserStore        { return s.users }
func (s *Store) Analyses() store.AnalysisStore { return s.analyses }

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}
