package postrepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/m-drozd/arcadium/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

func (r *Repository) GetByID(ctx context.Context, postID int) (*domain.Post, error) {
	query := `
        SELECT id, title, content, views
        FROM posts
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, postID)
	var post domain.Post
	err := row.Scan(&post.ID, &post.Title, &post.Content, &post.Views)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("failed to get post", zap.Error(err))
		return nil, err
	}
	return &post, nil
}

// Create reports false when a post with the same id already exists.
func (r *Repository) Create(ctx context.Context, post *domain.Post) (bool, error) {
	query := `
        INSERT INTO posts (id, title, content, views)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, post.ID, post.Title, post.Content, post.Views)
	if err != nil {
		zap.L().Error("failed to create post", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddViews bumps the counter in one statement; views + delta is evaluated by
// the store against the stored value, never against a value read earlier.
// Reports false when no row matched the id.
func (r *Repository) AddViews(ctx context.Context, postID int, delta int64) (bool, error) {
	query := `
        UPDATE posts
        SET views = views + $2
        WHERE id = $1
    `
	tag, err := r.db.Exec(ctx, query, postID, delta)
	if err != nil {
		zap.L().Error("failed to add views", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
