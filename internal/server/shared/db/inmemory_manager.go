package db

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"

	"github.com/sergiomezzz/mi-api-juegos2/internal/common"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/users"
)

// InMemoryRepositoryManager backs the repositories with process memory. It
// mirrors the uniqueness and not-found semantics of the postgres
// repositories, so services and handlers can be exercised without a database.
type InMemoryRepositoryManager struct {
	users *InMemoryUsersRepository
	games *InMemoryGamesRepository
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *InMemoryRepositoryManager) Close() error { return nil }

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) Games() games.Repository { return m.games }

func NewInMemoryRepositoryManager() RepositoryManager {
	return &InMemoryRepositoryManager{
		users: &InMemoryUsersRepository{byID: map[string]*users.User{}},
		games: &InMemoryGamesRepository{byID: map[string]*games.Game{}},
	}
}

type InMemoryUsersRepository struct {
	mu   sync.Mutex
	byID map[string]*users.User
}

func (r *InMemoryUsersRepository) Create(ctx context.Context, user *users.User) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.byID {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, common.ErrorAlreadyExists
		}
	}

	user.ID = uuid.NewString()
	stored := *user
	r.byID[user.ID] = &stored
	return user, nil
}

func (r *InMemoryUsersRepository) GetUserByEmail(ctx context.Context, email string) (*users.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.byID {
		if user.Email == email {
			found := *user
			return &found, nil
		}
	}
	return nil, common.ErrorNotFound
}

type InMemoryGamesRepository struct {
	mu   sync.Mutex
	byID map[string]*games.Game
}

func (r *InMemoryGamesRepository) Create(ctx context.Context, game *games.Game) (*games.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	game.ID = uuid.NewString()
	stored := *game
	r.byID[game.ID] = &stored
	return game, nil
}

func (r *InMemoryGamesRepository) GetByID(ctx context.Context, id string) (*games.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	game, ok := r.byID[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	found := *game
	return &found, nil
}

func (r *InMemoryGamesRepository) ListByUser(ctx context.Context, userID string) ([]*games.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := []*games.Game{}
	for _, game := range r.byID {
		if game.UserID == userID {
			found := *game
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *InMemoryGamesRepository) Update(ctx context.Context, game *games.Game) (*games.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[game.ID]; !ok {
		return nil, common.ErrorNotFound
	}
	stored := *game
	r.byID[game.ID] = &stored
	return game, nil
}

func (r *InMemoryGamesRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.byID, id)
	return nil
}
