package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Chat struct {
	ID           bson.ObjectID   `json:"id"                    bson:"_id,omitempty"`
	Participants []bson.ObjectID `json:"participants"          bson:"participants"`
	IsGroup      bool            `json:"isGroup"               bson:"is_group"`
	Name         string          `json:"name,omitempty"        bson:"name,omitempty"`
	LastMessage  *bson.ObjectID  `json:"lastMessage,omitempty" bson:"last_message,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"             bson:"created_at"`
	UpdatedAt    time.Time       `json:"updatedAt"             bson:"updated_at"`
}

// HasParticipant reports whether userID takes part in the chat.
func (c *Chat) HasParticipant(userID bson.ObjectID) bool {
	for _, id := range c.Participants {
		if id == userID {
			return true
		}
	}
	return false
}

type Message struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Chat      bson.ObjectID   `json:"chat"      bson:"chat"`
	Sender    bson.ObjectID   `json:"sender"    bson:"sender"`
	Content   string          `json:"content"   bson:"content"`
	Media     []string        `json:"media"     bson:"media"`
	ReadBy    []bson.ObjectID `json:"readBy"    bson:"read_by"`
	IsEdited  bool            `json:"isEdited"  bson:"is_edited"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}
