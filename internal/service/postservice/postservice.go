package postservice

import (
	"context"
	"errors"

	"github.com/m-drozd/arcadium/internal/domain"
	"go.uber.org/zap"
)

type Repo interface {
	GetByID(ctx context.Context, postID int) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (bool, error)
	AddViews(ctx context.Context, postID int, delta int64) (bool, error)
}

type Service struct {
	postRepo Repo
}

func New(postRepo Repo) *Service {
	return &Service{
		postRepo: postRepo,
	}
}

var (
	ErrPostNotFound = errors.New("post not found")
)

func (s *Service) GetPost(ctx context.Context, postID int) (*domain.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		zap.L().Error("failed to get post", zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

// RegisterView increments the view counter by one in a single UPDATE, so
// concurrent calls never overwrite each other. The counter returned is read
// after the increment and may already include views committed by others.
func (s *Service) RegisterView(ctx context.Context, postID int) (*domain.Post, error) {
	updated, err := s.postRepo.AddViews(ctx, postID, 1)
	if err != nil {
		zap.L().Error("failed to add view", zap.Error(err))
		return nil, err
	}
	if !updated {
		return nil, ErrPostNotFound
	}

	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		zap.L().Error("failed to get post after view", zap.Error(err))
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	return post, nil
}

func (s *Service) CreatePost(ctx context.Context, post *domain.Post) (bool, error) {
	created, err := s.postRepo.Create(ctx, post)
	if err != nil {
		zap.L().Error("failed to create post", zap.Error(err))
		return false, err
	}
	return created, nil
}
