package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Department forms a tree through the Parent pointer. Name is unique
// at the index level.
type Department struct {
	ID          bson.ObjectID  `json:"id"               bson:"_id,omitempty"`
	Name        string         `json:"name"             bson:"name"`
	Description string         `json:"description"      bson:"description"`
	Head        *bson.ObjectID `json:"head,omitempty"   bson:"head,omitempty"`
	Parent      *bson.ObjectID `json:"parent,omitempty" bson:"parent,omitempty"`
	Color       string         `json:"color"            bson:"color"`
	Icon        string         `json:"icon"             bson:"icon"`
	CreatedAt   time.Time      `json:"createdAt"        bson:"created_at"`
	UpdatedAt   time.Time      `json:"updatedAt"        bson:"updated_at"`
}
