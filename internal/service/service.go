package service

import (
	"github.com/m-drozd/arcadium/internal/handlers/players"
	"github.com/m-drozd/arcadium/internal/handlers/posts"

	"github.com/m-drozd/arcadium/internal/repo"
	playerservice "github.com/m-drozd/arcadium/internal/service/playerservice"
	postservice "github.com/m-drozd/arcadium/internal/service/postservice"
)

type Services struct {
	PostService   posts.Service
	PlayerService players.Service
}

func New(repo *repo.Repositories) *Services {
	postService := postservice.New(repo.PostRepo)
	playerService := playerservice.New(repo.PlayerRepo)

	return &Services{
		PostService:   postService,
		PlayerService: playerService,
	}
}
