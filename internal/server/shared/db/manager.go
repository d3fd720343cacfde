// Package db wires repositories to their storage backend. The postgres
// manager owns the connection pool and applies migrations; the in-memory
// manager backs tests that need real repository semantics without a database.
package db

import (
	"context"
	"database/sql"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Close() error
	Users() users.Repository
	Games() games.Repository
}
