// File: internal/handler/courses/courses_test.go
// 測試共用的假實作與輔助函式
package courses

import (
	"errors"
	"net/http/httptest"
	"strings"
	"time"

	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

func newJSONCtx(e *echo.Echo, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type fakeCountRow struct{ total int }

func (r fakeCountRow) Scan(dest ...any) error {
	*dest[0].(*int) = r.total
	return nil
}

// fakeCourseRow 支援單列課程與 RETURNING 場景的 Scan
type fakeCourseRow struct {
	scanErr error
	course  *model.Course
}

func (r *fakeCourseRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	c := r.course
	switch len(dest) {
	case 15:
		*dest[0].(*int) = c.ID
		*dest[1].(*string) = c.TitleUA
		*dest[2].(*string) = c.TitleEN
		*dest[3].(*string) = c.DescriptionUA
		*dest[4].(*string) = c.DescriptionEN
		*dest[5].(*string) = c.Category
		*dest[6].(*[]string) = c.Tags
		*dest[7].(*string) = c.DurationText
		*dest[8].(*float64) = c.Price
		*dest[9].(**string) = c.Link
		*dest[10].(**string) = c.Speaker
		*dest[11].(**string) = c.Image
		*dest[12].(*bool) = c.IsPublished
		*dest[13].(*time.Time) = c.CreatedAt
		*dest[14].(*time.Time) = c.UpdatedAt
	case 3:
		*dest[0].(*int) = c.ID
		*dest[1].(*time.Time) = c.CreatedAt
		*dest[2].(*time.Time) = c.UpdatedAt
	case 1:
		*dest[0].(*time.Time) = c.UpdatedAt
	default:
		panic("fakeCourseRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeCourseRows 以課程列實作 pgx.Rows
type fakeCourseRows struct {
	data []model.Course
	idx  int
}

func (r *fakeCourseRows) Close()                                       {}
func (r *fakeCourseRows) Err() error                                   { return nil }
func (r *fakeCourseRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCourseRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCourseRows) Next() bool {
	ok := r.idx < len(r.data)
	if ok {
		r.idx++
	}
	return ok
}
func (r *fakeCourseRows) Scan(dest ...any) error {
	row := fakeCourseRow{course: &r.data[r.idx-1]}
	return row.Scan(dest...)
}
func (r *fakeCourseRows) Values() ([]any, error) { return nil, nil }
func (r *fakeCourseRows) RawValues() [][]byte    { return nil }
func (r *fakeCourseRows) Conn() *pgx.Conn        { return nil }

func samplePublished() model.Course {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return model.Course{
		ID:            1,
		TitleUA:       "Пайтон для початківців",
		TitleEN:       "Python for beginners",
		DescriptionUA: "Опис курсу",
		DescriptionEN: "Course description",
		Category:      "tech",
		Tags:          []string{"python", "backend"},
		DurationText:  "6 weeks",
		Price:         29.99,
		IsPublished:   true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func pathCtx(e *echo.Echo, method, body, id string) (echo.Context, *httptest.ResponseRecorder) {
	ctx, rec := newJSONCtx(e, method, "/", body)
	ctx.SetParamNames("id")
	ctx.SetParamValues(id)
	return ctx, rec
}
