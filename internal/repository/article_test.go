// File: internal/repository/article_test.go
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

type fakeArticleRows struct {
	data    []model.Article
	idx     int
	scanErr error
}

func (r *fakeArticleRows) Close()                                       {}
func (r *fakeArticleRows) Err() error                                   { return nil }
func (r *fakeArticleRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeArticleRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeArticleRows) Next() bool {
	ok := r.idx < len(r.data)
	if ok {
		r.idx++
	}
	return ok
}
func (r *fakeArticleRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	a := r.data[r.idx-1]
	*dest[0].(*int) = a.ID
	*dest[1].(*string) = a.Lang
	*dest[2].(*string) = a.Title
	*dest[3].(*string) = a.Description
	*dest[4].(**string) = a.Link
	*dest[5].(**string) = a.Image
	*dest[6].(*time.Time) = a.PublishedAt
	return nil
}
func (r *fakeArticleRows) Values() ([]any, error) { return nil, nil }
func (r *fakeArticleRows) RawValues() [][]byte    { return nil }
func (r *fakeArticleRows) Conn() *pgx.Conn        { return nil }

func TestListArticlesByLang(t *testing.T) {
	now := time.Now().UTC()
	link := "https://news.example.com/1"
	sample := []model.Article{
		{ID: 2, Lang: "EN", Title: "Newest", Description: "d", Link: &link, PublishedAt: now},
		{ID: 1, Lang: "EN", Title: "Older", Description: "d", PublishedAt: now.Add(-time.Hour)},
	}

	t.Run("success", func(t *testing.T) {
		var gotArgs []any
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, args ...any) (pgx.Rows, error) {
				gotArgs = args
				return &fakeArticleRows{data: sample}, nil
			},
		}
		out, err := ListArticlesByLang(context.Background(), p, "EN")
		require.NoError(t, err)
		require.Equal(t, []any{"EN"}, gotArgs)
		require.Len(t, out, 2)
		require.Equal(t, "Newest", out[0].Title)
		require.Equal(t, link, *out[0].Link)
		require.Nil(t, out[1].Link)
	})

	t.Run("empty result is an empty slice", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeArticleRows{}, nil
			},
		}
		out, err := ListArticlesByLang(context.Background(), p, "UA")
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	})

	t.Run("query error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListArticlesByLang(context.Background(), p, "EN")
		require.Error(t, err)
	})

	t.Run("scan error", func(t *testing.T) {
		p := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeArticleRows{data: sample, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListArticlesByLang(context.Background(), p, "EN")
		require.Error(t, err)
	})
}
