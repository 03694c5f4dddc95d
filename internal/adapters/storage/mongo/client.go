// Package mongo implements the document stores over the MongoDB driver.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	eventsCollection = "events"
	photosCollection = "eventphotos"
	adminsCollection = "admins"
)

type Config struct {
	URI      string
	Database string
}

// Client owns the driver connection and hands out the per-collection stores.
type Client struct {
	client *mongo.Client
	db     *mongo.Database
}

func Connect(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.URI == "" {
		return nil, fmt.Errorf("mongodb uri is required")
	}
	if cfg.Database == "" {
		return nil, fmt.Errorf("mongodb database is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("mongodb connect failed: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongodb ping failed: %w", err)
	}

	return &Client{client: client, db: client.Database(cfg.Database)}, nil
}

func (c *Client) Close(ctx context.Context) error {
	return c.client.Disconnect(ctx)
}

func (c *Client) Ping(ctx context.Context) error {
	return c.client.Ping(ctx, readpref.Primary())
}

func (c *Client) Events() *EventStore {
	return &EventStore{coll: c.db.Collection(eventsCollection)}
}

func (c *Client) Photos() *PhotoStore {
	return &PhotoStore{coll: c.db.Collection(photosCollection)}
}

func (c *Client) Admins() *AdminStore {
	return &AdminStore{coll: c.db.Collection(adminsCollection)}
}

// EnsureIndexes creates the indexes the queries rely on. Safe to call on
// every startup.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	_, err := c.db.Collection(eventsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: -1}}},
		{Keys: bson.D{{Key: "isUpcoming", Value: 1}, {Key: "date", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating event indexes: %w", err)
	}

	_, err = c.db.Collection(photosCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "publicId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "year", Value: -1}}},
		{Keys: bson.D{{Key: "eventName", Value: 1}, {Key: "year", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("creating photo indexes: %w", err)
	}

	_, err = c.db.Collection(adminsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("creating admin index: %w", err)
	}
	return nil
}
