package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventPhoto is a single gallery image hosted on the image host and
// referenced by URL and public ID.
type EventPhoto struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	EventName  string             `bson:"eventName" json:"eventName"`
	Year       int                `bson:"year" json:"year"`
	ImageURL   string             `bson:"imageUrl" json:"imageUrl"`
	PublicID   string             `bson:"publicId" json:"publicId"`
	Width      int                `bson:"width,omitempty" json:"width,omitempty"`
	Height     int                `bson:"height,omitempty" json:"height,omitempty"`
	Format     string             `bson:"format,omitempty" json:"format,omitempty"`
	UploadedBy string             `bson:"uploadedBy,omitempty" json:"uploadedBy,omitempty"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}
