package games

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
)

// Service implements the catalog operations and enforces that only the
// owning user may read or mutate a record.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the games owned by userID. The result is never nil: a user
// with no games gets an empty collection.
func (s *Service) List(ctx context.Context, userID string) ([]*Game, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, common.ErrorInternal
	}
	if result == nil {
		result = []*Game{}
	}
	return result, nil
}

// Create stores a new game owned by userID. Client-supplied owner values are
// never consulted; the authenticated identity is the owner unconditionally.
func (s *Service) Create(ctx context.Context, userID, title, description, genre string) (*Game, error) {

	if strings.TrimSpace(title) == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrorValidation)
	}

	game := &Game{
		Title:       title,
		Description: description,
		Genre:       genre,
		UserID:      userID,
	}

	game, err := s.repo.Create(ctx, game)
	if err != nil {
		return nil, common.ErrorInternal
	}

	return game, nil
}

// Update applies partial-update semantics: each of title/description/genre is
// replaced only when the supplied value is non-empty, otherwise the stored
// value is retained. A record owned by another user yields
// common.ErrorForbidden, distinct from common.ErrorNotFound.
func (s *Service) Update(ctx context.Context, userID, gameID, title, description, genre string) (*Game, error) {

	game, err := s.ownedGame(ctx, userID, gameID)
	if err != nil {
		return nil, err
	}

	if title != "" {
		game.Title = title
	}
	if description != "" {
		game.Description = description
	}
	if genre != "" {
		game.Genre = genre
	}

	game, err = s.repo.Update(ctx, game)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}

	return game, nil
}

// Delete removes the game after the same lookup and ownership checks as
// Update.
func (s *Service) Delete(ctx context.Context, userID, gameID string) error {

	if _, err := s.ownedGame(ctx, userID, gameID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, gameID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return common.ErrorInternal
	}

	return nil
}

func (s *Service) ownedGame(ctx context.Context, userID, gameID string) (*Game, error) {
	game, err := s.repo.GetByID(ctx, gameID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, common.ErrorInternal
	}
	if game.UserID != userID {
		return nil, common.ErrorForbidden
	}
	return game, nil
}
