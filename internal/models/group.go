package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	GroupRoleMember = "member"
	GroupRoleAdmin  = "admin"
)

type Group struct {
	ID          bson.ObjectID   `json:"id"          bson:"_id,omitempty"`
	Name        string          `json:"name"        bson:"name"`
	Description string          `json:"description" bson:"description"`
	Creator     bson.ObjectID   `json:"creator"     bson:"creator"`
	Avatar      string          `json:"avatar"      bson:"avatar"`
	Cover       string          `json:"cover"       bson:"cover"`
	IsPrivate   bool            `json:"isPrivate"   bson:"is_private"`
	Members     []bson.ObjectID `json:"members"     bson:"members"` // GroupMember ids
	CreatedAt   time.Time       `json:"createdAt"   bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt"   bson:"updated_at"`
}

// GroupMember ties a user to a group with a role. The (group, user)
// pair is unique at the index level.
type GroupMember struct {
	ID       bson.ObjectID `json:"id"       bson:"_id,omitempty"`
	Group    bson.ObjectID `json:"group"    bson:"group"`
	User     bson.ObjectID `json:"user"     bson:"user"`
	Role     string        `json:"role"     bson:"role"`
	JoinedAt time.Time     `json:"joinedAt" bson:"joined_at"`
}
