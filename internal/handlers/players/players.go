package players

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/m-drozd/arcadium/internal/dto"
	"github.com/m-drozd/arcadium/internal/metrics"
	playerservice "github.com/m-drozd/arcadium/internal/service/playerservice"
	"github.com/m-drozd/arcadium/pkg/utils"
)

type Service interface {
	GetPlayer(ctx context.Context, playerID int) (*domain.Player, error)
	Upgrade(ctx context.Context, playerID int) (*domain.Player, error)
	CreatePlayer(ctx context.Context, player *domain.Player) (bool, error)
}

type PlayerHandler struct {
	playerService Service
}

func New(playerService Service) *PlayerHandler {
	return &PlayerHandler{
		playerService: playerService,
	}
}

// GetPlayer godoc
//
//	@Summary		Get a player
//	@Description	Retrieve a player with the current money balance and level.
//	@Tags			Players
//	@Produce		json
//	@Param			id	path		int						true	"Player ID"
//	@Success		200	{object}	dto.PlayerResponseDTO	"Player state"
//	@Failure		400	{object}	utils.Response			"Invalid player ID"
//	@Failure		404	{object}	utils.Response			"Player not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/player/{id} [get]
func (h *PlayerHandler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := h.playerService.GetPlayer(r.Context(), playerID)
	if err != nil {
		switch {
		case errors.Is(err, playerservice.ErrPlayerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Player not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.PlayerResponseDTO{
		Name:  player.Name,
		Money: player.Money,
		Level: player.Level,
	})
}

// Upgrade godoc
//
//	@Summary		Buy a level up
//	@Description	Charge the upgrade cost and raise the player level by one. The charge only happens when the balance covers it.
//	@Tags			Players
//	@Produce		json
//	@Param			id	path		int						true	"Player ID"
//	@Success		200	{object}	dto.UpgradeResponseDTO	"Player state after the upgrade"
//	@Failure		400	{object}	utils.Response			"Invalid player ID"
//	@Failure		402	{object}	utils.Response			"Not enough money"
//	@Failure		404	{object}	utils.Response			"Player not found"
//	@Failure		500	{object}	utils.Response			"Internal server error"
//	@Router			/upgrade/{id} [post]
func (h *PlayerHandler) Upgrade(w http.ResponseWriter, r *http.Request) {
	playerID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid player ID")
		return
	}

	player, err := h.playerService.Upgrade(r.Context(), playerID)
	if err != nil {
		switch {
		case errors.Is(err, playerservice.ErrNotEnoughMoney):
			metrics.PlayerUpgradesTotal.WithLabelValues("rejected").Inc()
			utils.RespondWithError(w, http.StatusPaymentRequired, "Not enough money")
		case errors.Is(err, playerservice.ErrPlayerNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "Player not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	metrics.PlayerUpgradesTotal.WithLabelValues("upgraded").Inc()
	utils.RespondWithJSON(w, http.StatusOK, dto.UpgradeResponseDTO{
		UserID: player.ID,
		Money:  player.Money,
		Level:  player.Level,
	})
}
