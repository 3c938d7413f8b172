// File: internal/dto/telemetry.go
package dto

import (
	"coursehub/internal/repository"
	"coursehub/internal/service"
)

// swagger:model dto.StatsResponse
type StatsResponse struct {
	TotalUsers   int `json:"total_users" example:"120"`
	ActiveUsers  int `json:"active_users" example:"37"`
	TotalCourses int `json:"total_courses" example:"14"`
}

// ActivityQuery 活躍度分佈的查詢參數
type ActivityQuery struct {
	SinceDays int `query:"since_days" validate:"omitempty,gte=1,lte=90"`
}

// swagger:model dto.ActivityResponse
type ActivityResponse struct {
	Distribution []repository.HourlyActivity  `json:"distribution"`
	Countries    []repository.CountryActivity `json:"countries"`
}

// ListUsersQuery 使用者列表的查詢參數，所有過濾條件皆為精確比對
type ListUsersQuery struct {
	Name        *string `query:"name"`
	Surname     *string `query:"surname"`
	Email       *string `query:"email"`
	IsSuspended *bool   `query:"is_suspended"`
	Page        int     `query:"page" validate:"omitempty,gte=1"`
	PageSize    int     `query:"page_size" validate:"omitempty,gte=1,lte=100"`
}

// swagger:model dto.UserPageResponse
type UserPageResponse struct {
	Users       []UserInfo `json:"users"`
	CurrentPage int        `json:"current_page" example:"1"`
	PageSize    int        `json:"page_size" example:"20"`
	TotalUsers  int        `json:"total_users" example:"120"`
	TotalPages  int        `json:"total_pages" example:"6"`
}

// NewUserPageResponse 由服務層分頁結果組裝回應
func NewUserPageResponse(page *service.UserPage) UserPageResponse {
	users := make([]UserInfo, 0, len(page.Users))
	for i := range page.Users {
		users = append(users, NewUserInfo(&page.Users[i]))
	}
	return UserPageResponse{
		Users:       users,
		CurrentPage: page.CurrentPage,
		PageSize:    page.PageSize,
		TotalUsers:  page.TotalUsers,
		TotalPages:  page.TotalPages,
	}
}

// swagger:model dto.SuspendRequest
type SuspendRequest struct {
	ID     int  `json:"id" validate:"required,gte=1"`
	Status bool `json:"status"`
}
