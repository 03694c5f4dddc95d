// Package domain holds the entities and core types shared across services
// and adapters.
package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventListKind selects which events a listing returns.
type EventListKind string

const (
	EventsUpcoming EventListKind = "upcoming"
	EventsPast     EventListKind = "past"
	EventsAll      EventListKind = "all"
)

// Event is an association event shown on the public events page.
type Event struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Date        time.Time          `bson:"date" json:"date"`
	Location    string             `bson:"location,omitempty" json:"location,omitempty"`
	ImageURLs   []string           `bson:"imageUrls,omitempty" json:"imageUrls,omitempty"`
	PublicIDs   []string           `bson:"publicIds,omitempty" json:"publicIds,omitempty"`
	IsUpcoming  bool               `bson:"isUpcoming" json:"isUpcoming"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}
