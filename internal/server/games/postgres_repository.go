package games

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) (*PostgresRepository, error) {
	return &PostgresRepository{db: db}, nil
}

// Create inserts a new game. The identifier is assigned here; creation and
// modification timestamps are assigned by the store.
func (r *PostgresRepository) Create(ctx context.Context, game *Game) (*Game, error) {

	game.ID = uuid.NewString()

	query :=
		`INSERT INTO games (id, title, description, genre, user_id)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		game.ID, game.Title, game.Description, game.Genre, game.UserID).Scan(&game.CreatedAt, &game.UpdatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return game, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*Game, error) {
	query :=
		`SELECT id, title, description, genre, user_id, created_at, updated_at FROM games
		 WHERE id = $1
		 `

	game := &Game{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&game.ID, &game.Title, &game.Description, &game.Genre, &game.UserID, &game.CreatedAt, &game.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return game, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Game, error) {
	query :=
		`SELECT id, title, description, genre, user_id, created_at, updated_at FROM games
		 WHERE user_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*Game{}
	for rows.Next() {
		var game Game
		if err := rows.Scan(
			&game.ID, &game.Title, &game.Description, &game.Genre, &game.UserID, &game.CreatedAt, &game.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &game)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Update persists title, description, and genre and bumps updated_at. The
// owning user reference is never touched.
func (r *PostgresRepository) Update(ctx context.Context, game *Game) (*Game, error) {
	query :=
		`UPDATE games SET title = $1, description = $2, genre = $3, updated_at = now()
		 WHERE id = $4
		 RETURNING updated_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		game.Title, game.Description, game.Genre, game.ID).Scan(&game.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return game, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM games WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
