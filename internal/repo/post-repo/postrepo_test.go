package postrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		postID    int
		mockSetup func()
		expectErr bool
		result    *domain.Post
	}{
		{
			name:   "Valid postID returns post",
			postID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "title", "content", "views"}).
					AddRow(1, "Example blog post", "Hello! This is a blog post", int64(42))
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, views FROM posts WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Post{
				ID:      1,
				Title:   "Example blog post",
				Content: "Hello! This is a blog post",
				Views:   42,
			},
		},
		{
			name:   "Non-existing postID returns nil",
			postID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, views FROM posts WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:   "Database error",
			postID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, title, content, views FROM posts WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.postID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	post := &domain.Post{
		ID:      1,
		Title:   "Example blog post",
		Content: "Hello! This is a blog post",
		Views:   0,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "Successfully creates post",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO posts (id, title, content, views)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Example blog post", "Hello! This is a blog post", int64(0)).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			created:   true,
		},
		{
			name: "Post already exists",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO posts (id, title, content, views)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Example blog post", "Hello! This is a blog post", int64(0)).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
			created:   false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO posts (id, title, content, views)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Example blog post", "Hello! This is a blog post", int64(0)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			created:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.Create(context.Background(), post)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created)
		})
	}
}

func TestRepository_AddViews(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		postID    int
		delta     int64
		mockSetup func()
		expectErr bool
		updated   bool
	}{
		{
			name:   "Increments views by one",
			postID: 1,
			delta:  1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE posts
        SET views = views + $2
        WHERE id = $1`)).
					WithArgs(1, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			updated:   true,
		},
		{
			name:   "Unknown post matches no rows",
			postID: 99,
			delta:  1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE posts
        SET views = views + $2
        WHERE id = $1`)).
					WithArgs(99, int64(1)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			updated:   false,
		},
		{
			name:   "Database error",
			postID: 1,
			delta:  1,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE posts
        SET views = views + $2
        WHERE id = $1`)).
					WithArgs(1, int64(1)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			updated:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			updated, err := repo.AddViews(context.Background(), tt.postID, tt.delta)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.updated, updated)
		})
	}
}
