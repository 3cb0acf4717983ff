package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// QuickAccessItem is one entry in a user's ordered shortcut list.
type QuickAccessItem struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	Name      string        `json:"name"      bson:"name"`
	Icon      string        `json:"icon"      bson:"icon"`
	URL       string        `json:"url"       bson:"url"`
	Category  string        `json:"category"  bson:"category"`
	User      bson.ObjectID `json:"user"      bson:"user"`
	Order     int           `json:"order"     bson:"order"`
	IsCustom  bool          `json:"isCustom"  bson:"is_custom"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time     `json:"updatedAt" bson:"updated_at"`
}
