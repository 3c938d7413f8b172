// File: internal/service/auth.go
package service

import (
	"context"
	"errors"

	"coursehub/internal/apperr"
	"coursehub/internal/config"
	"coursehub/internal/database"
	"coursehub/internal/model"
	"coursehub/internal/repository"

	"github.com/jackc/pgx/v5"
)

// UserByToken 解析令牌並查詢 subject 對應的使用者
// 回傳的是查詢當下的快照，而非簽發當下的狀態
func UserByToken(ctx context.Context, db database.DB, cfg *config.Config, token string) (*model.User, error) {
	email, err := VerifyAccessToken(cfg, token)
	if err != nil {
		return nil, err
	}

	user, err := repository.GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNonExistentUser
		}
		return nil, err
	}
	return user, nil
}

// RequireAdmin 檢查使用者是否為管理員，角色不符回傳 apperr.ErrAccessDenied
func RequireAdmin(user *model.User) error {
	if !user.IsAdmin() {
		return apperr.ErrAccessDenied
	}
	return nil
}

// Login 驗證帳密並簽發存取令牌
// 查無使用者與密碼錯誤一律回傳 apperr.ErrInvalidCredentials，
// 通過帳密比對後才檢查信箱驗證狀態
func Login(ctx context.Context, db database.DB, cfg *config.Config, email, password string) (string, *model.User, error) {
	user, err := repository.GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil, apperr.ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := ComparePassword(user.HashedPassword, password); err != nil {
		return "", nil, apperr.ErrInvalidCredentials
	}

	if !user.IsVerified {
		return "", nil, apperr.ErrUnverifiedEmail
	}

	token, err := IssueAccessToken(cfg, user.Email, cfg.AccessTokenTTL())
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Registration 註冊輸入
type Registration struct {
	Name          string
	Surname       string
	Email         string
	Password      string
	AdminPassword string
}

// Register 建立新帳號
// email 已存在回傳 apperr.ErrCredentialsAlreadyTaken；
// 提供管理員密碼且不符時回傳 apperr.ErrInvalidAdminPassword，相符則賦予 admin 角色
func Register(ctx context.Context, db database.DB, cfg *config.Config, reg Registration) (*model.User, error) {
	_, err := repository.GetUserByEmail(ctx, db, reg.Email)
	if err == nil {
		return nil, apperr.ErrCredentialsAlreadyTaken
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	role := model.RoleUser
	if reg.AdminPassword != "" {
		if reg.AdminPassword != cfg.AdminPassword {
			return nil, apperr.ErrInvalidAdminPassword
		}
		role = model.RoleAdmin
	}

	hash, err := HashPassword(reg.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:           reg.Name,
		Surname:        reg.Surname,
		Email:          reg.Email,
		HashedPassword: hash,
		Role:           role,
	}
	return repository.CreateUser(ctx, db, user)
}

// EmailExists 檢查 email 是否已註冊（註冊表單用，刻意揭露存在與否）
func EmailExists(ctx context.Context, db database.DB, email string) (bool, error) {
	_, err := repository.GetUserByEmail(ctx, db, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// VerifyEmail 依令牌將帳號標記為已驗證
// 令牌錯誤原樣傳遞；subject 查無帳號回傳 apperr.ErrNonExistentUser
// 重複驗證已驗證帳號無害（冪等）
func VerifyEmail(ctx context.Context, db database.DB, cfg *config.Config, token string) error {
	email, err := VerifyAccessToken(cfg, token)
	if err != nil {
		return err
	}

	updated, err := repository.SetUserVerified(ctx, db, email)
	if err != nil {
		return err
	}
	if !updated {
		return apperr.ErrNonExistentUser
	}
	return nil
}
