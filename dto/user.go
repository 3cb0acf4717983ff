package dto

import "intranet-backend/internal/models"

type UpdateProfileRequest struct {
	Name   string `json:"name,omitempty"`
	Email  string `json:"email,omitempty"  validate:"omitempty,email"`
	Avatar string `json:"avatar,omitempty"`
	Phone  string `json:"phone,omitempty"`
	Bio    string `json:"bio,omitempty"`
}

type CreateUserRequest struct {
	Name       string `json:"name"       validate:"required"`
	Email      string `json:"email"      validate:"required,email"`
	Password   string `json:"password"   validate:"required,min=6"`
	Role       string `json:"role,omitempty"       validate:"omitempty,oneof=user admin"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position"   validate:"required"`
	Avatar     string `json:"avatar,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
}

type UpdateUserRequest struct {
	Name       string `json:"name,omitempty"`
	Email      string `json:"email,omitempty"    validate:"omitempty,email"`
	Password   string `json:"password,omitempty" validate:"omitempty,min=6"`
	Role       string `json:"role,omitempty"     validate:"omitempty,oneof=user admin"`
	Department string `json:"department,omitempty"`
	Position   string `json:"position,omitempty"`
	Avatar     string `json:"avatar,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Bio        string `json:"bio,omitempty"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

// UserBrief is the populated author/participant shape embedded in
// other resources.
type UserBrief struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Avatar   string `json:"avatar"`
	Position string `json:"position"`
}

// BriefOf projects a user to its embedded form.
func BriefOf(u models.User) UserBrief {
	return UserBrief{
		ID:       u.ID.Hex(),
		Name:     u.Name,
		Avatar:   u.Avatar,
		Position: u.Position,
	}
}
