package playerrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/m-drozd/arcadium/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		playerID  int
		mockSetup func()
		expectErr bool
		result    *domain.Player
	}{
		{
			name:     "Valid playerID returns player",
			playerID: 1,
			mockSetup: func() {
				rows := pgxmock.NewRows([]string{"id", "name", "money", "level"}).
					AddRow(1, "Alice", int64(1000), 1)
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, money, level FROM players WHERE id = $1`)).
					WithArgs(1).
					WillReturnRows(rows)
			},
			expectErr: false,
			result: &domain.Player{
				ID:    1,
				Name:  "Alice",
				Money: 1000,
				Level: 1,
			},
		},
		{
			name:     "Non-existing playerID returns nil",
			playerID: 99,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, money, level FROM players WHERE id = $1`)).
					WithArgs(99).
					WillReturnError(pgx.ErrNoRows)
			},
			expectErr: false,
			result:    nil,
		},
		{
			name:     "Database error",
			playerID: 1,
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, money, level FROM players WHERE id = $1`)).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			result:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByID(context.Background(), tt.playerID)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			if tt.result == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.Equal(t, tt.result, result)
			}
		})
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	player := &domain.Player{
		ID:    1,
		Name:  "Alice",
		Money: 1000,
		Level: 1,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		created   bool
	}{
		{
			name: "Successfully creates player",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO players (id, name, money, level)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Alice", int64(1000), 1).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			expectErr: false,
			created:   true,
		},
		{
			name: "Player already exists",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO players (id, name, money, level)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Alice", int64(1000), 1).
					WillReturnResult(pgxmock.NewResult("INSERT", 0))
			},
			expectErr: false,
			created:   false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        INSERT INTO players (id, name, money, level)
        VALUES ($1, $2, $3, $4)
        ON CONFLICT (id) DO NOTHING`)).
					WithArgs(1, "Alice", int64(1000), 1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			created:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			created, err := repo.Create(context.Background(), player)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.created, created)
		})
	}
}

func TestRepository_DebitForLevelUp(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		playerID  int
		cost      int64
		mockSetup func()
		expectErr bool
		debited   bool
	}{
		{
			name:     "Sufficient balance debits and levels up",
			playerID: 1,
			cost:     150,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE players
        SET money = money - $2, level = level + 1
        WHERE id = $1 AND money >= $2`)).
					WithArgs(1, int64(150)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
			expectErr: false,
			debited:   true,
		},
		{
			name:     "Insufficient balance matches no rows",
			playerID: 1,
			cost:     150,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE players
        SET money = money - $2, level = level + 1
        WHERE id = $1 AND money >= $2`)).
					WithArgs(1, int64(150)).
					WillReturnResult(pgxmock.NewResult("UPDATE", 0))
			},
			expectErr: false,
			debited:   false,
		},
		{
			name:     "Database error",
			playerID: 1,
			cost:     150,
			mockSetup: func() {
				mock.ExpectExec(regexp.QuoteMeta(`
        UPDATE players
        SET money = money - $2, level = level + 1
        WHERE id = $1 AND money >= $2`)).
					WithArgs(1, int64(150)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
			debited:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()

			debited, err := repo.DebitForLevelUp(context.Background(), tt.playerID, tt.cost)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.debited, debited)
		})
	}
}
