// File: internal/repository/user_test.go
package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"coursehub/internal/database"
	"coursehub/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

/* ---------- 假實作 ---------- */

// fakeUserRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==9 → GetUserByEmail / GetUserByID
// 2) len(dest)==4 → CreateUser (id, is_verified, is_suspended, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 9:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Surname
		*dest[3].(*string) = u.Email
		*dest[4].(*string) = u.HashedPassword
		*dest[5].(*string) = u.Role
		*dest[6].(*bool) = u.IsVerified
		*dest[7].(*bool) = u.IsSuspended
		*dest[8].(*time.Time) = u.CreatedAt
	case 4:
		*dest[0].(*int) = u.ID
		*dest[1].(*bool) = u.IsVerified
		*dest[2].(*bool) = u.IsSuspended
		*dest[3].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestUserRepository(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:             7,
		Name:           "Olena",
		Surname:        "Shevchenko",
		Email:          "olena@example.com",
		HashedPassword: "hash123",
		Role:           model.RoleAdmin,
		IsVerified:     true,
		CreatedAt:      now,
	}

	/* --- GetUserByEmail --- */
	t.Run("GetUserByEmail success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "olena@example.com")
		require.NoError(t, err)
		require.Equal(t, sample.ID, u.ID)
		require.True(t, u.IsAdmin())
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByEmail(context.Background(), p, "nobody@example.com")
		require.ErrorIs(t, err, pgx.ErrNoRows)
		require.Nil(t, u)
	})

	/* --- GetUserByID --- */
	t.Run("GetUserByID success", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByID(context.Background(), p, 7)
		require.NoError(t, err)
		require.Equal(t, sample.Email, u.Email)
	})

	t.Run("GetUserByID not found", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByID(context.Background(), p, 999)
		require.Error(t, err)
		require.Nil(t, u)
	})

	/* --- CreateUser --- */
	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Name: "Taras", Email: "taras@example.com", HashedPassword: "pwdhash", Role: model.RoleUser}
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				u := *newUser
				u.ID = 42
				u.CreatedAt = now.Add(time.Hour)
				return &fakeUserRow{user: &u}
			},
		}
		created, err := CreateUser(context.Background(), p, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.False(t, created.IsVerified)
		require.WithinDuration(t, now.Add(time.Hour), created.CreatedAt, time.Second)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("dup key")}
			},
		}
		_, err := CreateUser(context.Background(), p, &model.User{})
		require.Error(t, err)
	})

	/* --- SetUserVerified --- */
	t.Run("SetUserVerified updated", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		updated, err := SetUserVerified(context.Background(), p, "olena@example.com")
		require.NoError(t, err)
		require.True(t, updated)
	})

	t.Run("SetUserVerified no such user", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		updated, err := SetUserVerified(context.Background(), p, "nobody@example.com")
		require.NoError(t, err)
		require.False(t, updated)
	})

	t.Run("SetUserVerified error", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update failed")
			},
		}
		_, err := SetUserVerified(context.Background(), p, "olena@example.com")
		require.Error(t, err)
	})

	/* --- SetUserSuspended --- */
	t.Run("SetUserSuspended success", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, args ...any) (pgconn.CommandTag, error) {
				gotArgs = args
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, SetUserSuspended(context.Background(), p, 7, true))
		require.Equal(t, []any{true, 7}, gotArgs)
	})

	t.Run("SetUserSuspended error", func(t *testing.T) {
		p := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("update failed")
			},
		}
		require.Error(t, SetUserSuspended(context.Background(), p, 7, false))
	})
}
