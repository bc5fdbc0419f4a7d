package repo

import (
	"github.com/m-drozd/arcadium/internal/pg"
	playerrepo "github.com/m-drozd/arcadium/internal/repo/player-repo"
	postrepo "github.com/m-drozd/arcadium/internal/repo/post-repo"
	"github.com/m-drozd/arcadium/internal/service/playerservice"
	"github.com/m-drozd/arcadium/internal/service/postservice"
)

type Repositories struct {
	PostRepo   postservice.Repo
	PlayerRepo playerservice.Repo
}

func New(conn pg.Database) *Repositories {
	postRepo := postrepo.New(conn)
	playerRepo := playerrepo.New(conn)

	return &Repositories{
		PostRepo:   postRepo,
		PlayerRepo: playerRepo,
	}
}
