package dto

import "intranet-backend/internal/models"

type CreateDepartmentRequest struct {
	Name        string `json:"name"        validate:"required,max=50"`
	Description string `json:"description" validate:"required"`
	Head        string `json:"head,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type UpdateDepartmentRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,max=50"`
	Description string `json:"description,omitempty"`
	Head        string `json:"head,omitempty"`
	Parent      string `json:"parent,omitempty"`
	Color       string `json:"color,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type DepartmentView struct {
	models.Department
	HeadInfo   *UserBrief `json:"headInfo,omitempty"`
	ParentName string     `json:"parentName,omitempty"`
}
