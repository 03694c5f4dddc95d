package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/gourav02/acda-org/internal/core/domain"
	"github.com/gourav02/acda-org/internal/core/ports"
)

type EventStore struct {
	coll *mongo.Collection
}

var _ ports.EventStore = (*EventStore)(nil)

func (s *EventStore) Insert(ctx context.Context, event *domain.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, event); err != nil {
		return fmt.Errorf("inserting event: %w", err)
	}
	return nil
}

func (s *EventStore) FindByID(ctx context.Context, id string) (*domain.Event, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.NewValidationError("Invalid event ID")
	}

	var event domain.Event
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&event); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("finding event: %w", err)
	}
	return &event, nil
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.NewValidationError("Invalid event ID")
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("deleting event: %w", err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("event %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

func (s *EventStore) List(ctx context.Context, kind domain.EventListKind, now time.Time) ([]domain.Event, error) {
	filter := bson.M{}
	switch kind {
	case domain.EventsUpcoming:
		filter["date"] = bson.M{"$gte": now}
	case domain.EventsPast:
		filter["date"] = bson.M{"$lt": now}
	}

	cursor, err := s.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("querying events: %w", err)
	}
	defer cursor.Close(ctx)

	var events []domain.Event
	if err := cursor.All(ctx, &events); err != nil {
		return nil, fmt.Errorf("decoding events: %w", err)
	}
	return events, nil
}
