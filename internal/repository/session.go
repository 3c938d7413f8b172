// File: internal/repository/session.go
package repository

import (
	"context"
	"fmt"
	"time"

	"coursehub/internal/database"
	"coursehub/internal/model"
)

func CreateSession(ctx context.Context, db database.DB, s *model.Session) error {
	_, err := db.Exec(ctx,
		`INSERT INTO sessions (period, ip, country, user_id)
		 VALUES (tstzrange($1, $2), $3, $4, $5)`,
		s.Start,
		s.End,
		s.IP,
		s.Country,
		s.UserID,
	)
	if err != nil {
		return fmt.Errorf("CreateSession: %w", err)
	}
	return nil
}

func CountUsers(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM users`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountUsers: %w", err)
	}
	return n, nil
}

func CountCourses(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM courses`).Scan(&n); err != nil {
		return 0, fmt.Errorf("CountCourses: %w", err)
	}
	return n, nil
}

// CountActiveUsers 計算 session 區間與給定時間窗重疊的相異使用者數
func CountActiveUsers(ctx context.Context, db database.DB, since time.Time) (int, error) {
	var n int
	err := db.QueryRow(ctx,
		`SELECT count(DISTINCT user_id) FROM sessions
		 WHERE period && tstzrange($1, now())`,
		since,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("CountActiveUsers: %w", err)
	}
	return n, nil
}

// HourlyActivity 每小時活躍使用者數的一筆
type HourlyActivity struct {
	Hour        time.Time `json:"hour"`
	ActiveUsers int       `json:"active_users"`
}

// CountryActivity 每國家活躍使用者數的一筆
type CountryActivity struct {
	Country     string `json:"country"`
	ActiveUsers int    `json:"active_users"`
}

// HourlyActiveUsers 以 generate_series 展開每小時刻度，
// 計算各小時內 session 區間重疊的相異使用者數
func HourlyActiveUsers(ctx context.Context, db database.DB, start, end time.Time) ([]HourlyActivity, error) {
	rows, err := db.Query(ctx,
		`WITH hours AS (
			SELECT generate_series($1::timestamptz, $2::timestamptz, interval '1 hour') AS hour_start
		)
		SELECT hours.hour_start, count(DISTINCT sessions.user_id)
		FROM hours
		LEFT JOIN sessions
		ON sessions.period && tstzrange(hours.hour_start, hours.hour_start + interval '1 hour')
		GROUP BY hours.hour_start
		ORDER BY hours.hour_start`,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("HourlyActiveUsers: %w", err)
	}
	defer rows.Close()

	out := []HourlyActivity{}
	for rows.Next() {
		var h HourlyActivity
		if err := rows.Scan(&h.Hour, &h.ActiveUsers); err != nil {
			return nil, fmt.Errorf("HourlyActiveUsers: %w", err)
		}
		out = append(out, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("HourlyActiveUsers: %w", err)
	}
	return out, nil
}

// ActiveUsersByCountry 統計時間窗內各國家的相異活躍使用者數
func ActiveUsersByCountry(ctx context.Context, db database.DB, start, end time.Time) ([]CountryActivity, error) {
	rows, err := db.Query(ctx,
		`SELECT country, count(DISTINCT user_id)
		 FROM sessions
		 WHERE period && tstzrange($1, $2)
		 GROUP BY country`,
		start,
		end,
	)
	if err != nil {
		return nil, fmt.Errorf("ActiveUsersByCountry: %w", err)
	}
	defer rows.Close()

	out := []CountryActivity{}
	for rows.Next() {
		var c CountryActivity
		if err := rows.Scan(&c.Country, &c.ActiveUsers); err != nil {
			return nil, fmt.Errorf("ActiveUsersByCountry: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ActiveUsersByCountry: %w", err)
	}
	return out, nil
}
