package playerservice

import (
	"context"
	"errors"

	"github.com/m-drozd/arcadium/internal/domain"
	"go.uber.org/zap"
)

// UpgradeCost is the amount of money one level-up costs.
const UpgradeCost int64 = 150

type Repo interface {
	GetByID(ctx context.Context, playerID int) (*domain.Player, error)
	Create(ctx context.Context, player *domain.Player) (bool, error)
	DebitForLevelUp(ctx context.Context, playerID int, cost int64) (bool, error)
}

type Service struct {
	playerRepo Repo
}

func New(playerRepo Repo) *Service {
	return &Service{
		playerRepo: playerRepo,
	}
}

var (
	ErrPlayerNotFound = errors.New("player not found")
	ErrNotEnoughMoney = errors.New("not enough money")
)

func (s *Service) GetPlayer(ctx context.Context, playerID int) (*domain.Player, error) {
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get player", zap.Error(err))
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	return player, nil
}

// Upgrade charges UpgradeCost and raises the level in one conditional UPDATE.
// The balance check lives in the WHERE clause, so two concurrent upgrades can
// never spend the same money twice. A zero-row result means either the player
// does not exist or the balance is short; a follow-up read tells the two apart.
func (s *Service) Upgrade(ctx context.Context, playerID int) (*domain.Player, error) {
	debited, err := s.playerRepo.DebitForLevelUp(ctx, playerID, UpgradeCost)
	if err != nil {
		zap.L().Error("failed to debit player", zap.Error(err))
		return nil, err
	}

	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		zap.L().Error("failed to get player after upgrade", zap.Error(err))
		return nil, err
	}
	if player == nil {
		return nil, ErrPlayerNotFound
	}
	if !debited {
		return nil, ErrNotEnoughMoney
	}
	return player, nil
}

func (s *Service) CreatePlayer(ctx context.Context, player *domain.Player) (bool, error) {
	created, err := s.playerRepo.Create(ctx, player)
	if err != nil {
		zap.L().Error("failed to create player", zap.Error(err))
		return false, err
	}
	return created, nil
}
