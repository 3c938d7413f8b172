// File: internal/model/session.go
package model

import "time"

// Session 一次前端連線的遙測紀錄，period 以 tstzrange 儲存
type Session struct {
	ID      int       `db:"id" json:"id"`
	Start   time.Time `db:"start" json:"start"`
	End     time.Time `db:"end" json:"end"`
	IP      string    `db:"ip" json:"ip"`
	Country string    `db:"country" json:"country"`
	UserID  int       `db:"user_id" json:"user_id"`
}
