package dto

import "intranet-backend/internal/models"

type CreateNewsRequest struct {
	Title       string   `json:"title"    form:"title"    validate:"required,max=200"`
	Content     string   `json:"content"  form:"content"  validate:"required"`
	Summary     string   `json:"summary"  form:"summary"  validate:"required,max=500"`
	Category    string   `json:"category" form:"category" validate:"required"`
	Media       []string `json:"media,omitempty" form:"-"`
	Tags        []string `json:"tags,omitempty"  form:"tags"`
	IsFeatured  bool     `json:"isFeatured"           form:"isFeatured"`
	IsPublished *bool    `json:"isPublished,omitempty" form:"isPublished"`
}

type UpdateNewsRequest struct {
	Title       string   `json:"title,omitempty"    form:"title"    validate:"omitempty,max=200"`
	Content     string   `json:"content,omitempty"  form:"content"`
	Summary     string   `json:"summary,omitempty"  form:"summary"  validate:"omitempty,max=500"`
	Category    string   `json:"category,omitempty" form:"category"`
	Media       []string `json:"media,omitempty" form:"-"`
	Tags        []string `json:"tags,omitempty"  form:"tags"`
	IsFeatured  *bool    `json:"isFeatured,omitempty"  form:"isFeatured"`
	IsPublished *bool    `json:"isPublished,omitempty" form:"isPublished"`
}

type NewsView struct {
	models.News
	AuthorInfo *UserBrief `json:"authorInfo,omitempty"`
}
