package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

type PhotoStore struct {
	coll *mongo.Collection
}

var _ ports.PhotoStore = (*PhotoStore)(nil)

func (s *PhotoStore) Insert(ctx context.Context, photo *domain.EventPhoto) error {
	if photo.ID.IsZero() {
		photo.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, photo); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("photo %s: %w", photo.PublicID, domain.ErrConflict)
		}
		return fmt.Errorf("inserting photo: %w", err)
	}
	return nil
}

func (s *PhotoStore) ListByYear(ctx context.Context, year int) ([]domain.EventPhoto, error) {
	filter := bson.M{}
	if year > 0 {
		filter["year"] = year
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("querying photos: %w", err)
	}
	defer cursor.Close(ctx)

	var photos []domain.EventPhoto
	if err := cursor.All(ctx, &photos); err != nil {
		return nil, fmt.Errorf("decoding photos: %w", err)
	}
	return photos, nil
}
