package service

import (
	"testing"

	"github.com/m-drozd/arcadium/internal/repo"
	"github.com/m-drozd/arcadium/internal/service/playerservice"
	"github.com/m-drozd/arcadium/internal/service/postservice"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPostRepo := postservice.NewMockRepo(ctrl)
	mockPlayerRepo := playerservice.NewMockRepo(ctrl)

	repos := &repo.Repositories{
		PostRepo:   mockPostRepo,
		PlayerRepo: mockPlayerRepo,
	}

	services := New(repos)

	assert.NotNil(t, services.PostService)
	assert.NotNil(t, services.PlayerService)
}
