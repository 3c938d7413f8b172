// File: internal/dto/auth.go
package dto

import "coursehub/internal/model"

// swagger:model dto.RegisterRequest
type RegisterRequest struct {
	Name          string `json:"name" validate:"required,min=1,max=40" example:"Olena"`
	Surname       string `json:"surname" validate:"required,min=1,max=40" example:"Shevchenko"`
	Email         string `json:"email" validate:"required,email" example:"olena@example.com"`
	Password      string `json:"password" validate:"required,min=8,max=128" example:"Secret123!"`
	AdminPassword string `json:"admin_password,omitempty" validate:"omitempty,max=128"`
}

// swagger:model dto.LoginRequest
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email" example:"olena@example.com"`
	Password string `json:"password" validate:"required" example:"Secret123!"`
}

// swagger:model dto.UserInfo
type UserInfo struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"Olena"`
	Surname     string `json:"surname" example:"Shevchenko"`
	Email       string `json:"email" example:"olena@example.com"`
	Role        string `json:"role" example:"user"`
	IsSuspended bool   `json:"is_suspended" example:"false"`
}

// NewUserInfo 由使用者模型組裝回應
func NewUserInfo(u *model.User) UserInfo {
	return UserInfo{
		ID:          u.ID,
		Name:        u.Name,
		Surname:     u.Surname,
		Email:       u.Email,
		Role:        u.Role,
		IsSuspended: u.IsSuspended,
	}
}

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// swagger:model dto.CheckEmailRequest
type CheckEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// swagger:model dto.CheckEmailResponse
type CheckEmailResponse struct {
	Exists bool `json:"exists" example:"false"`
}

// swagger:model dto.VerifyRequest
type VerifyRequest struct {
	Token string `json:"token" validate:"required"`
}

// swagger:model dto.ResendRequest
type ResendRequest struct {
	Email string `json:"email" validate:"required,email"`
}
