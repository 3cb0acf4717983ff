package dto

import "intranet-backend/internal/models"

type ShareFileRequest struct {
	UserID string `json:"userId" validate:"required"`
}

type FileView struct {
	models.File
	OwnerInfo *UserBrief `json:"ownerInfo,omitempty"`
}
