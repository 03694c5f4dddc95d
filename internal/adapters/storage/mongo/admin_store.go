package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

type AdminStore struct {
	coll *mongo.Collection
}

var _ ports.AdminStore = (*AdminStore)(nil)

func (s *AdminStore) Insert(ctx context.Context, admin *domain.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, admin); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("admin %s: %w", admin.Username, domain.ErrConflict)
		}
		return fmt.Errorf("inserting admin: %w", err)
	}
	return nil
}

func (s *AdminStore) FindByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("admin %s: %w", username, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding admin: %w", err)
	}
	return &admin, nil
}

func (s *AdminStore) Count(ctx context.Context) (int64, error) {
	count, err := s.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("counting admins: %w", err)
	}
	return count, nil
}
