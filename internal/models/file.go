package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type File struct {
	ID         bson.ObjectID   `json:"id"                   bson:"_id,omitempty"`
	Name       string          `json:"name"                 bson:"name"`
	Type       string          `json:"type"                 bson:"type"`
	Size       int64           `json:"size"                 bson:"size"`
	URL        string          `json:"url"                  bson:"url"`
	Owner      bson.ObjectID   `json:"owner"                bson:"owner"`
	SharedWith []bson.ObjectID `json:"sharedWith"           bson:"shared_with"`
	Group      *bson.ObjectID  `json:"group,omitempty"      bson:"group,omitempty"`
	Department *bson.ObjectID  `json:"department,omitempty" bson:"department,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"            bson:"created_at"`
	UpdatedAt  time.Time       `json:"updatedAt"            bson:"updated_at"`
}

// SharedTo reports whether the file is shared with userID.
func (f *File) SharedTo(userID bson.ObjectID) bool {
	for _, id := range f.SharedWith {
		if id == userID {
			return true
		}
	}
	return false
}
