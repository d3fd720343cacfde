package games

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, game *Game) (*Game, error)
	GetByID(ctx context.Context, id string) (*Game, error)
	ListByUser(ctx context.Context, userID string) ([]*Game, error)
	Update(ctx context.Context, game *Game) (*Game, error)
	Delete(ctx context.Context, id string) error
}
