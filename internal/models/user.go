package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// NotificationTypes toggles delivery per notification category.
type NotificationTypes struct {
	Posts    bool `json:"posts"    bson:"posts"`
	Messages bool `json:"messages" bson:"messages"`
	Events   bool `json:"events"   bson:"events"`
	Groups   bool `json:"groups"   bson:"groups"`
}

type NotificationSettings struct {
	Email   bool              `json:"email"   bson:"email"`
	Push    bool              `json:"push"    bson:"push"`
	Desktop bool              `json:"desktop" bson:"desktop"`
	Types   NotificationTypes `json:"types"   bson:"types"`
}

// DefaultNotificationSettings enables every channel, matching the
// defaults a newly registered account gets.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		Email:   true,
		Push:    true,
		Desktop: true,
		Types: NotificationTypes{
			Posts:    true,
			Messages: true,
			Events:   true,
			Groups:   true,
		},
	}
}

type User struct {
	ID                   bson.ObjectID        `json:"id"                   bson:"_id,omitempty"`
	Name                 string               `json:"name"                 bson:"name"`
	Email                string               `json:"email"                bson:"email"`
	Password             string               `json:"-"                    bson:"password"`
	Avatar               string               `json:"avatar"               bson:"avatar"`
	Role                 string               `json:"role"                 bson:"role"`
	Department           *bson.ObjectID       `json:"department,omitempty" bson:"department,omitempty"`
	Position             string               `json:"position"             bson:"position"`
	Phone                string               `json:"phone,omitempty"      bson:"phone,omitempty"`
	Bio                  string               `json:"bio,omitempty"        bson:"bio,omitempty"`
	IsActive             bool                 `json:"isActive"             bson:"is_active"`
	LastActive           time.Time            `json:"lastActive"           bson:"last_active"`
	NotificationSettings NotificationSettings `json:"notificationSettings" bson:"notification_settings"`
	ResetPasswordToken   string               `json:"-"                    bson:"reset_password_token,omitempty"`
	ResetPasswordExpire  time.Time            `json:"-"                    bson:"reset_password_expire,omitempty"`
	CreatedAt            time.Time            `json:"createdAt"            bson:"created_at"`
}

// IsAdmin reports whether the user holds the site-wide admin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
