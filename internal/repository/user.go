// File: internal/repository/user.go
package repository

import (
	"context"
	"fmt"

	"coursehub/internal/database"
	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
)

// SelectUsers 使用者列表查詢的基底，供分頁器組合 WHERE 與 LIMIT/OFFSET
const SelectUsers = `SELECT id, name, surname, email, hashed_password, role, is_verified, is_suspended, created_at FROM users`

// ScanUser 從查詢結果掃描單筆使用者
func ScanUser(row pgx.Row) (model.User, error) {
	var u model.User
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Surname,
		&u.Email,
		&u.HashedPassword,
		&u.Role,
		&u.IsVerified,
		&u.IsSuspended,
		&u.CreatedAt,
	)
	return u, err
}

func GetUserByEmail(ctx context.Context, db database.DB, email string) (*model.User, error) {
	row := db.QueryRow(ctx, SelectUsers+` WHERE email = $1`, email)
	u, err := ScanUser(row)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func GetUserByID(ctx context.Context, db database.DB, userID int) (*model.User, error) {
	row := db.QueryRow(ctx, SelectUsers+` WHERE id = $1`, userID)
	u, err := ScanUser(row)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func CreateUser(ctx context.Context, db database.DB, u *model.User) (*model.User, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO users (name, surname, email, hashed_password, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, is_verified, is_suspended, created_at`,
		u.Name,
		u.Surname,
		u.Email,
		u.HashedPassword,
		u.Role,
	)
	if err := row.Scan(&u.ID, &u.IsVerified, &u.IsSuspended, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

// SetUserVerified 將指定 email 的帳號標記為已驗證，回傳是否有資料列被更新
func SetUserVerified(ctx context.Context, db database.DB, email string) (bool, error) {
	tag, err := db.Exec(ctx,
		`UPDATE users SET is_verified = TRUE WHERE email = $1`,
		email,
	)
	if err != nil {
		return false, fmt.Errorf("SetUserVerified: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func SetUserSuspended(ctx context.Context, db database.DB, userID int, suspended bool) error {
	_, err := db.Exec(ctx,
		`UPDATE users SET is_suspended = $1 WHERE id = $2`,
		suspended,
		userID,
	)
	if err != nil {
		return fmt.Errorf("SetUserSuspended: %w", err)
	}
	return nil
}
