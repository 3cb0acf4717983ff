package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// EntityRef is the polymorphic {type,id} back-reference used by
// notifications and activity logs.
type EntityRef struct {
	Type string        `json:"type" bson:"type"`
	ID   bson.ObjectID `json:"id"   bson:"id"`
}

type Notification struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Recipient bson.ObjectID `json:"recipient" bson:"recipient"`
	Type      string        `json:"type"      bson:"type"`
	Content   string        `json:"content"   bson:"content"`
	RelatedTo EntityRef     `json:"relatedTo" bson:"related_to"`
	IsRead    bool          `json:"isRead"    bson:"is_read"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
