package dto

import "intranet-backend/internal/models"

type CreatePostRequest struct {
	Title      string   `json:"title,omitempty"      form:"title"`
	Content    string   `json:"content"              form:"content" validate:"required"`
	Media      []string `json:"media,omitempty"      form:"-"`
	Group      string   `json:"group,omitempty"      form:"group"`
	Department string   `json:"department,omitempty" form:"department"`
	Tags       []string `json:"tags,omitempty"       form:"tags"`
}

type UpdatePostRequest struct {
	Title       string   `json:"title,omitempty"`
	Content     string   `json:"content,omitempty"`
	Media       []string `json:"media,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	IsPublished *bool    `json:"isPublished,omitempty"`
}

// PostView is a post with its author and comments populated and the
// derived counters attached.
type PostView struct {
	models.Post
	AuthorInfo   *UserBrief    `json:"authorInfo,omitempty"`
	CommentViews []CommentView `json:"commentViews,omitempty"`
	LikeCount    int           `json:"likeCount"`
	CommentCount int           `json:"commentCount"`
	IsLiked      bool          `json:"isLiked"`
}

type LikeResult struct {
	Likes   int  `json:"likes"`
	IsLiked bool `json:"isLiked"`
}

type CreateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type UpdateCommentRequest struct {
	Content string `json:"content" validate:"required"`
}

type CommentView struct {
	models.Comment
	AuthorInfo *UserBrief `json:"authorInfo,omitempty"`
	LikeCount  int        `json:"likeCount"`
}
