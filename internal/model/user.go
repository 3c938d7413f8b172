// File: internal/model/user.go
package model

import "time"

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             int       `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	Surname        string    `db:"surname" json:"surname"`
	Email          string    `db:"email" json:"email"`
	HashedPassword string    `db:"hashed_password" json:"-"`
	Role           string    `db:"role" json:"role"`
	IsVerified     bool      `db:"is_verified" json:"is_verified"`
	IsSuspended    bool      `db:"is_suspended" json:"is_suspended"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}

// IsAdmin 回傳使用者是否具管理員角色，其他任何角色值皆視為非管理員
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
