// File: internal/handler/telemetry/users_test.go
package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"coursehub/internal/database"
	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Surname
	*dest[3].(*string) = u.Email
	*dest[4].(*string) = u.HashedPassword
	*dest[5].(*string) = u.Role
	*dest[6].(*bool) = u.IsVerified
	*dest[7].(*bool) = u.IsSuspended
	*dest[8].(*time.Time) = u.CreatedAt
	return nil
}

type fakeUserRows struct {
	data []model.User
	idx  int
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return nil }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Next() bool {
	ok := r.idx < len(r.data)
	if ok {
		r.idx++
	}
	return ok
}
func (r *fakeUserRows) Scan(dest ...any) error {
	row := fakeUserRow{user: &r.data[r.idx-1]}
	return row.Scan(dest...)
}
func (r *fakeUserRows) Values() ([]any, error) { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte    { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn        { return nil }

func sampleUser() model.User {
	return model.User{
		ID:             2,
		Name:           "Olena",
		Surname:        "Koval",
		Email:          "olena@example.com",
		HashedPassword: "$2a$10$secret",
		Role:           model.RoleUser,
		IsVerified:     true,
		CreatedAt:      time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC),
	}
}

/* ---------- 測試 ---------- */

func TestListUsersHandler(t *testing.T) {
	t.Run("bind error", func(t *testing.T) {
		e := echo.New()
		ctx, rec := newQueryCtx(e, "/telemetry/users?page=abc")

		require.NoError(t, ListUsersHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, rec.Body.String(), "invalid query parameters")
	})

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newQueryCtx(e, "/telemetry/users?page_size=500")

		require.NoError(t, ListUsersHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("exact filters", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newQueryCtx(e, "/telemetry/users?name=Olena&is_suspended=false")

		var countSQL string
		var countArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				countSQL = sql
				countArgs = args
				return fakeCountRow{total: 1}
			},
			QueryFn: func(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
				return &fakeUserRows{data: []model.User{sampleUser()}}, nil
			},
		}

		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, countSQL, "name = $1")
		require.Contains(t, countSQL, "is_suspended = $2")
		require.Equal(t, []any{"Olena", false}, countArgs)

		// 回應不得洩漏密碼雜湊
		require.Contains(t, rec.Body.String(), "olena@example.com")
		require.NotContains(t, rec.Body.String(), "$2a$10$secret")
		require.Contains(t, rec.Body.String(), `"current_page":1`)
		require.Contains(t, rec.Body.String(), `"total_users":1`)
	})

	t.Run("query error", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newQueryCtx(e, "/telemetry/users")

		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return errRow{err: pgx.ErrTxClosed}
			},
		}

		require.NoError(t, ListUsersHandler(db)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestSuspendHandler(t *testing.T) {
	newSuspendCtx := func(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/telemetry/suspend", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("validate error", func(t *testing.T) {
		e := echo.New()
		e.Validator = errValidator{}
		ctx, rec := newSuspendCtx(e, `{"id":0}`)

		require.NoError(t, SuspendHandler(&database.FakeDB{})(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("unknown user", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newSuspendCtx(e, `{"id":99,"status":true}`)

		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}

		require.NoError(t, SuspendHandler(db)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.Contains(t, rec.Body.String(), "This user does not exist.")
	})

	t.Run("admin is protected", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newSuspendCtx(e, `{"id":1,"status":true}`)

		admin := sampleUser()
		admin.ID = 1
		admin.Role = model.RoleAdmin
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeUserRow{user: &admin}
			},
		}

		require.NoError(t, SuspendHandler(db)(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
		require.Contains(t, rec.Body.String(), "You can't suspend another admin.")
	})

	t.Run("success", func(t *testing.T) {
		e := echo.New()
		e.Validator = okValidator{}
		ctx, rec := newSuspendCtx(e, `{"id":2,"status":true}`)

		target := sampleUser()
		var execArgs []any
		db := &database.FakeDB{
			QueryRowFn: func(ctx context.Context, sql string, args ...any) pgx.Row {
				return &fakeUserRow{user: &target}
			},
			ExecFn: func(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
				execArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}

		require.NoError(t, SuspendHandler(db)(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, []any{true, 2}, execArgs)
	})
}
