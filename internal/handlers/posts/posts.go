package posts

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/m-drozd/arcadium/internal/dto"
	"github.com/m-drozd/arcadium/internal/metrics"
	postservice "github.com/m-drozd/arcadium/internal/service/postservice"
	"github.com/m-drozd/arcadium/pkg/utils"
)

type Service interface {
	GetPost(ctx context.Context, postID int) (*domain.Post, error)
	RegisterView(ctx context.Context, postID int) (*domain.Post, error)
	CreatePost(ctx context.Context, post *domain.Post) (bool, error)
}

type PostHandler struct {
	postService Service
}

func New(postService Service) *PostHandler {
	return &PostHandler{
		postService: postService,
	}
}

// GetPost godoc
//
//	@Summary		Get a blog post
//	@Description	Retrieve a single blog post together with its current view counter.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int					true	"Post ID"
//	@Success		200	{object}	dto.PostResponseDTO	"Post with current views"
//	@Failure		400	{object}	utils.Response		"Invalid post ID"
//	@Failure		404	{object}	utils.Response		"Post not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/post/{id} [get]
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.GetPost(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PostResponseDTO{
		PostID:  post.ID,
		Title:   post.Title,
		Content: post.Content,
		Views:   post.Views,
	})
}

// AddView godoc
//
//	@Summary		Register a post view
//	@Description	Add one view to the post counter and return the counter after the increment.
//	@Tags			Posts
//	@Produce		json
//	@Param			id	path		int					true	"Post ID"
//	@Success		200	{object}	dto.ViewResponseDTO	"View counter after the increment"
//	@Failure		400	{object}	utils.Response		"Invalid post ID"
//	@Failure		404	{object}	utils.Response		"Post not found"
//	@Failure		500	{object}	utils.Response		"Internal server error"
//	@Router			/view/{id} [post]
func (h *PostHandler) AddView(w http.ResponseWriter, r *http.Request) {
	postID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid post ID")
		return
	}

	post, err := h.postService.RegisterView(r.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, postservice.ErrPostNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Post not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.PostViewsTotal.Inc()
	utils.RespondWithJSON(w, http.StatusOK, dto.ViewResponseDTO{
		CurrentViews: post.Views,
	})
}
