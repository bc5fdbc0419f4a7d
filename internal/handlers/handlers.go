package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	_ "github.com/m-drozd/arcadium/docs"
	playershandlers "github.com/m-drozd/arcadium/internal/handlers/players"
	postshandlers "github.com/m-drozd/arcadium/internal/handlers/posts"
	"github.com/m-drozd/arcadium/internal/metrics"
	mw "github.com/m-drozd/arcadium/internal/middleware"
	"github.com/m-drozd/arcadium/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

type PostHandler interface {
	GetPost(w http.ResponseWriter, r *http.Request)
	AddView(w http.ResponseWriter, r *http.Request)
}

type PlayerHandler interface {
	GetPlayer(w http.ResponseWriter, r *http.Request)
	Upgrade(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	PostHandler   PostHandler
	PlayerHandler PlayerHandler
}

func New(s *service.Services) *Handlers {
	return &Handlers{
		PostHandler:   postshandlers.New(s.PostService),
		PlayerHandler: playershandlers.New(s.PlayerService),
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		mw.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		metrics.HTTPMetrics,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Get("/post/{id}", h.PostHandler.GetPost)
	r.Post("/view/{id}", h.PostHandler.AddView)
	r.Get("/player/{id}", h.PlayerHandler.GetPlayer)
	r.Post("/upgrade/{id}", h.PlayerHandler.Upgrade)

	return r
}
