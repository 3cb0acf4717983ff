package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type News struct {
	ID          bson.ObjectID `json:"id"          bson:"_id,omitempty"`
	Title       string        `json:"title"       bson:"title"`
	Content     string        `json:"content"     bson:"content"`
	Summary     string        `json:"summary"     bson:"summary"`
	Author      bson.ObjectID `json:"author"      bson:"author"`
	Media       []string      `json:"media"       bson:"media"`
	Category    string        `json:"category"    bson:"category"`
	Tags        []string      `json:"tags"        bson:"tags"`
	IsFeatured  bool          `json:"isFeatured"  bson:"is_featured"`
	IsPublished bool          `json:"isPublished" bson:"is_published"`
	PublishDate time.Time     `json:"publishDate" bson:"publish_date"`
	CreatedAt   time.Time     `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time     `json:"updatedAt"   bson:"updated_at"`
}
