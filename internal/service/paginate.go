// File: internal/service/paginate.go
package service

import (
	"context"
	"fmt"

	"coursehub/internal/database"

	"github.com/jackc/pgx/v5"
)

// Paginate 對 baseSQL（不含 ORDER BY）執行先計數後切片的分頁查詢
// totalPages = ceil(total / pageSize)，零筆結果的 totalPages 為 0；
// 超出範圍的頁碼回傳空切片而非錯誤。
// 計數與切片是兩條獨立語句，並行寫入下兩者可能不一致，屬接受的行為。
func Paginate[T any](
	ctx context.Context,
	db database.DB,
	baseSQL string,
	args []any,
	orderBy string,
	page, pageSize int,
	scan func(pgx.Rows) (T, error),
) (items []T, total int, totalPages int, err error) {
	countSQL := "SELECT count(*) FROM (" + baseSQL + ") AS sub"
	if err = db.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, 0, fmt.Errorf("paginate count: %w", err)
	}

	totalPages = (total + pageSize - 1) / pageSize

	pagedSQL := fmt.Sprintf("%s ORDER BY %s LIMIT $%d OFFSET $%d",
		baseSQL, orderBy, len(args)+1, len(args)+2)
	pagedArgs := append(append([]any{}, args...), pageSize, (page-1)*pageSize)

	rows, err := db.Query(ctx, pagedSQL, pagedArgs...)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("paginate query: %w", err)
	}
	defer rows.Close()

	items = []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("paginate scan: %w", err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, 0, fmt.Errorf("paginate rows: %w", err)
	}

	return items, total, totalPages, nil
}
