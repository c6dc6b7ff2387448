package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Image is a single catalog entry: metadata in MongoDB pointing at a blob
// served from the upload directory via its URL.
type Image struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"id"`
	URL         string        `bson:"url" json:"url"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Category    string        `bson:"category" json:"category"`
	CreatedAt   time.Time     `bson:"created_at" json:"createdAt"`
}
