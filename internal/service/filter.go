// File: internal/service/filter.go
package service

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// CourseFilter 課程列表的結構化查詢條件，nil 欄位不產生任何述詞
type CourseFilter struct {
	Title        *string
	Description  *string
	Category     *string
	DurationText *string
	PriceMin     *float64
	PriceMax     *float64
	Link         *string
	Speaker      *string
	Image        *string
	IsPublished  *bool
}

// BuildCourseFilters 將查詢條件轉為依序排列的 SQL 述詞與參數
// 文字欄位為不分大小寫的子字串比對，雙語欄位以 OR 同時檢查兩種語言；
// 價格上下界各自獨立；tags 為集合重疊測試；boolean 僅在明確提供時比對。
// 本函式不做任何權限檢查，isPublished 的權限由呼叫端把關。
func BuildCourseFilters(f CourseFilter, tags []string) ([]string, []any) {
	var preds []string
	var args []any

	arg := func(v any) int {
		args = append(args, v)
		return len(args)
	}

	if f.Title != nil {
		n := arg("%" + *f.Title + "%")
		preds = append(preds, fmt.Sprintf("(title_en ILIKE $%d OR title_ua ILIKE $%d)", n, n))
	}
	if f.Description != nil {
		n := arg("%" + *f.Description + "%")
		preds = append(preds, fmt.Sprintf("(description_en ILIKE $%d OR description_ua ILIKE $%d)", n, n))
	}
	if f.Category != nil {
		n := arg("%" + *f.Category + "%")
		preds = append(preds, fmt.Sprintf("category ILIKE $%d", n))
	}
	if len(tags) > 0 {
		n := arg(tags)
		preds = append(preds, fmt.Sprintf("tags && $%d", n))
	}
	if f.DurationText != nil {
		n := arg("%" + *f.DurationText + "%")
		preds = append(preds, fmt.Sprintf("duration_text ILIKE $%d", n))
	}
	if f.PriceMin != nil {
		n := arg(*f.PriceMin)
		preds = append(preds, fmt.Sprintf("price >= $%d", n))
	}
	if f.PriceMax != nil {
		n := arg(*f.PriceMax)
		preds = append(preds, fmt.Sprintf("price <= $%d", n))
	}
	if f.Link != nil {
		n := arg("%" + *f.Link + "%")
		preds = append(preds, fmt.Sprintf("link ILIKE $%d", n))
	}
	if f.Speaker != nil {
		n := arg("%" + *f.Speaker + "%")
		preds = append(preds, fmt.Sprintf("speaker ILIKE $%d", n))
	}
	if f.Image != nil {
		n := arg("%" + *f.Image + "%")
		preds = append(preds, fmt.Sprintf("image ILIKE $%d", n))
	}
	if f.IsPublished != nil {
		n := arg(*f.IsPublished)
		preds = append(preds, fmt.Sprintf("is_published = $%d", n))
	}

	return preds, args
}

// WhereClause 將述詞以 AND 串接為 WHERE 子句，無述詞時回傳空字串
func WhereClause(preds []string) string {
	if len(preds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(preds, " AND ")
}

// NormalizeTags 修剪、轉小寫並去重，保留輸入順序
// 違反 1–10 個、每個至多 50 字元的限制時回傳錯誤
func NormalizeTags(tags []string) ([]string, error) {
	if tags == nil {
		return nil, nil
	}
	if len(tags) == 0 {
		return nil, fmt.Errorf("specify at least 1 tag")
	}
	if len(tags) > 10 {
		return nil, fmt.Errorf("no more than 10 tags")
	}

	seen := map[string]struct{}{}
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		// 以字元數計長，烏克蘭文標籤每字元佔多個位元組
		t := strings.ToLower(strings.TrimSpace(tag))
		if utf8.RuneCountInString(t) > 50 {
			return nil, fmt.Errorf("each tag cannot be longer than 50 characters")
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		normalized = append(normalized, t)
	}
	return normalized, nil
}
