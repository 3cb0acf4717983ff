package dto

import "intranet-backend/internal/models"

type CreateGroupRequest struct {
	Name        string `json:"name"        form:"name"        validate:"required,max=50"`
	Description string `json:"description" form:"description" validate:"required,max=500"`
	IsPrivate   bool   `json:"isPrivate"   form:"isPrivate"`
	Avatar      string `json:"avatar,omitempty" form:"-"`
	Cover       string `json:"cover,omitempty"  form:"-"`
}

type UpdateGroupRequest struct {
	Name        string `json:"name,omitempty"        form:"name"        validate:"omitempty,max=50"`
	Description string `json:"description,omitempty" form:"description" validate:"omitempty,max=500"`
	IsPrivate   *bool  `json:"isPrivate,omitempty"   form:"isPrivate"`
	Avatar      string `json:"avatar,omitempty" form:"-"`
	Cover       string `json:"cover,omitempty"  form:"-"`
}

type GroupView struct {
	models.Group
	CreatorInfo *UserBrief `json:"creatorInfo,omitempty"`
	MemberCount int        `json:"memberCount"`
}

type AddMemberRequest struct {
	UserID string `json:"userId" validate:"required"`
	Role   string `json:"role,omitempty" validate:"omitempty,oneof=member admin"`
}

type UpdateMemberRequest struct {
	Role string `json:"role" validate:"required,oneof=member admin"`
}

type MemberView struct {
	models.GroupMember
	UserInfo *UserBrief `json:"userInfo,omitempty"`
}
