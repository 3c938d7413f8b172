// File: internal/service/telemetry.go
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"coursehub/internal/apperr"
	"coursehub/internal/database"
	"coursehub/internal/model"
	"coursehub/internal/repository"

	"github.com/jackc/pgx/v5"
)

// Stats 整體數值遙測
type Stats struct {
	TotalUsers   int `json:"total_users"`
	ActiveUsers  int `json:"active_users"`
	TotalCourses int `json:"total_courses"`
}

// NumericalTelemetry 回傳使用者總數、近 30 天活躍使用者數與課程總數
func NumericalTelemetry(ctx context.Context, db database.DB) (*Stats, error) {
	users, err := repository.CountUsers(ctx, db)
	if err != nil {
		return nil, err
	}
	courses, err := repository.CountCourses(ctx, db)
	if err != nil {
		return nil, err
	}
	active, err := repository.CountActiveUsers(ctx, db, timeNow().AddDate(0, 0, -30))
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:   users,
		ActiveUsers:  active,
		TotalCourses: courses,
	}, nil
}

// ActivityReport 一段期間內的活躍使用者分佈
type ActivityReport struct {
	Distribution []repository.HourlyActivity  `json:"distribution"`
	Countries    []repository.CountryActivity `json:"countries"`
}

// ActivityDistribution 回傳逐小時與逐國家的活躍使用者分佈
// 目前時間截斷到整點，國家統計的上界外加一小時補償截斷
func ActivityDistribution(ctx context.Context, db database.DB, sinceDays int) (*ActivityReport, error) {
	now := timeNow().UTC().Truncate(time.Hour)
	start := now.AddDate(0, 0, -sinceDays)

	hourly, err := repository.HourlyActiveUsers(ctx, db, start, now)
	if err != nil {
		return nil, err
	}

	countries, err := repository.ActiveUsersByCountry(ctx, db, start, now.Add(time.Hour))
	if err != nil {
		return nil, err
	}

	return &ActivityReport{Distribution: hourly, Countries: countries}, nil
}

// RecordSession 寫入一筆連線遙測紀錄
func RecordSession(ctx context.Context, db database.DB, start, end time.Time, ip, country string, userID int) error {
	return repository.CreateSession(ctx, db, &model.Session{
		Start:   start,
		End:     end,
		IP:      ip,
		Country: country,
		UserID:  userID,
	})
}

// UserFilter 使用者列表的精確比對過濾條件
type UserFilter struct {
	Name        *string
	Surname     *string
	Email       *string
	IsSuspended *bool
}

// UserPage 分頁後的使用者列表
type UserPage struct {
	Users       []model.User
	CurrentPage int
	PageSize    int
	TotalUsers  int
	TotalPages  int
}

// ListUsers 依精確比對條件過濾並分頁
func ListUsers(ctx context.Context, db database.DB, filter UserFilter, page, pageSize int) (*UserPage, error) {
	var preds []string
	var args []any

	add := func(column string, v any) {
		args = append(args, v)
		preds = append(preds, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if filter.Name != nil {
		add("name", *filter.Name)
	}
	if filter.Surname != nil {
		add("surname", *filter.Surname)
	}
	if filter.Email != nil {
		add("email", *filter.Email)
	}
	if filter.IsSuspended != nil {
		add("is_suspended", *filter.IsSuspended)
	}

	baseSQL := repository.SelectUsers + WhereClause(preds)

	users, total, totalPages, err := Paginate(ctx, db, baseSQL, args, "id", page, pageSize,
		func(rows pgx.Rows) (model.User, error) { return repository.ScanUser(rows) })
	if err != nil {
		return nil, err
	}

	return &UserPage{
		Users:       users,
		CurrentPage: page,
		PageSize:    len(users),
		TotalUsers:  total,
		TotalPages:  totalPages,
	}, nil
}

// SetSuspension 設定帳號停權狀態，管理員帳號不可被停權
func SetSuspension(ctx context.Context, db database.DB, userID int, suspended bool) error {
	user, err := repository.GetUserByID(ctx, db, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.ErrNonExistentUser
		}
		return err
	}
	if user.IsAdmin() {
		return apperr.ErrCannotSuspendAdmin
	}
	return repository.SetUserSuspended(ctx, db, userID, suspended)
}
