package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	ActionCreate   = "create"
	ActionUpdate   = "update"
	ActionDelete   = "delete"
	ActionLogin    = "login"
	ActionLogout   = "logout"
	ActionView     = "view"
	ActionDownload = "download"
	ActionUpload   = "upload"
	ActionShare    = "share"
)

// ActivityLog is an append-only audit record written after mutating
// requests succeed.
type ActivityLog struct {
	ID        bson.ObjectID `json:"id"        bson:"_id,omitempty"`
	User      bson.ObjectID `json:"user"      bson:"user"`
	Action    string        `json:"action"    bson:"action"`
	Entity    EntityRef     `json:"entity"    bson:"entity"`
	Details   string        `json:"details"   bson:"details"`
	IP        string        `json:"ip"        bson:"ip"`
	UserAgent string        `json:"userAgent" bson:"user_agent"`
	CreatedAt time.Time     `json:"createdAt" bson:"created_at"`
}
