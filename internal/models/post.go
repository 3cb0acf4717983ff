package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Post struct {
	ID          bson.ObjectID   `json:"id"                   bson:"_id,omitempty"`
	Title       string          `json:"title,omitempty"      bson:"title,omitempty"`
	Content     string          `json:"content"              bson:"content"`
	Author      bson.ObjectID   `json:"author"               bson:"author"`
	Media       []string        `json:"media"                bson:"media"`
	Likes       []bson.ObjectID `json:"likes"                bson:"likes"`
	Comments    []bson.ObjectID `json:"comments"             bson:"comments"`
	Group       *bson.ObjectID  `json:"group,omitempty"      bson:"group,omitempty"`
	Department  *bson.ObjectID  `json:"department,omitempty" bson:"department,omitempty"`
	Tags        []string        `json:"tags"                 bson:"tags"`
	IsPublished bool            `json:"isPublished"          bson:"is_published"`
	PublishDate time.Time       `json:"publishDate"          bson:"publish_date"`
	CreatedAt   time.Time       `json:"createdAt"            bson:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt"            bson:"updated_at"`
}

// Liked reports whether userID is in the like set.
func (p *Post) Liked(userID bson.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

type Comment struct {
	ID        bson.ObjectID   `json:"id"        bson:"_id,omitempty"`
	Content   string          `json:"content"   bson:"content"`
	Author    bson.ObjectID   `json:"author"    bson:"author"`
	Post      bson.ObjectID   `json:"post"      bson:"post"`
	Likes     []bson.ObjectID `json:"likes"     bson:"likes"`
	CreatedAt time.Time       `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time       `json:"updatedAt" bson:"updated_at"`
}

func (c *Comment) Liked(userID bson.ObjectID) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
