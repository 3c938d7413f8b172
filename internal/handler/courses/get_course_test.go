// File: internal/handler/courses/get_course_test.go
package courses

import (
	"context"
	"net/http"
	"testing"

	"coursehub/internal/database"
	"coursehub/internal/middleware"
	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func TestGetCourseHandler(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		e := echo.New()
		ctx, rec := pathCtx(e, http.MethodGet, "", "abc")

		require.NoError(t, GetCourseHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid course id")
	})

	t.Run("not found", func(t *testing.T) {
		e := echo.New()
		ctx, rec := pathCtx(e, http.MethodGet, "", "99")

		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeCourseRow{scanErr: pgx.ErrNoRows}
			},
		}

		require.NoError(t, GetCourseHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "No course with this id.")
	})

	t.Run("unpublished hidden from anonymous", func(t *testing.T) {
		e := echo.New()
		ctx, rec := pathCtx(e, http.MethodGet, "", "1")

		draft := samplePublished()
		draft.IsPublished = false
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeCourseRow{course: &draft}
			},
		}

		require.NoError(t, GetCourseHandler(db)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "You can't view this course.")
	})

	t.Run("unpublished visible to admin", func(t *testing.T) {
		e := echo.New()
		ctx, rec := pathCtx(e, http.MethodGet, "", "1")
		ctx.Set(middleware.ContextUserKey, &model.User{ID: 1, Role: model.RoleAdmin})

		draft := samplePublished()
		draft.IsPublished = false
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeCourseRow{course: &draft}
			},
		}

		require.NoError(t, GetCourseHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "Python for beginners")
	})

	t.Run("published visible to anonymous", func(t *testing.T) {
		e := echo.New()
		ctx, rec := pathCtx(e, http.MethodGet, "", "1")

		course := samplePublished()
		var gotArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				gotArgs = args
				return &fakeCourseRow{course: &course}
			},
		}

		require.NoError(t, GetCourseHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, []any{1}, gotArgs)
		require.Contains(t, rec.Body.String(), "Пайтон для початківців")
		require.Contains(t, rec.Body.String(), `"price":29.99`)
	})
}
