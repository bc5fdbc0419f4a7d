package playerrepo

import (
	"context"
	"errors"

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

func (r *Repository) GetByID(ctx context.Context, playerID int) (*domain.Player, error) {
	query := `
        SELECT id, name, money, level
        FROM players
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, playerID)
	var player domain.Player
	err := row.Scan(&player.ID, &player.Name, &player.Money, &player.Level)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		zap.L().Error("failed to get player", zap.Error(err))
		return nil, err
	}
	return &player, nil
}

// Create reports false when a player with the same id already exists.
func (r *Repository) Create(ctx context.Context, player *domain.Player) (bool, error) {
	query := `
        INSERT INTO players (id, name, money, level)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING
    `
	tag, err := r.db.Exec(ctx, query, player.ID, player.Name, player.Money, player.Level)
	if err != nil {
		zap.L().Error("failed to create player", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// DebitForLevelUp takes cost off the balance and bumps the level as one
// store-evaluated statement. The money >= cost check sits in the WHERE clause
// of the same statement that debits; no interleaving of concurrent calls can
// drive the balance negative. Reports false when no row qualified, which
// covers both a missing player and a short balance; callers that care re-read
// the row to tell the two apart.
func (r *Repository) DebitForLevelUp(ctx context.Context, playerID int, cost int64) (bool, error) {
	query := `
        UPDATE players
        SET money = money - $2, level = level + 1
        WHERE id = $1 AND money >= $2
    `
	tag, err := r.db.Exec(ctx, query, playerID, cost)
	if err != nil {
		zap.L().Error("failed to debit player for level up", zap.Error(err))
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
