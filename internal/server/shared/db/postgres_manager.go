package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/sethvargo/go-retry"

	"github.com/sergiomezzz/mi-api-juegos2/internal/server/games"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/migrations"
	"github.com/sergiomezzz/mi-api-juegos2/internal/server/users"
)

// connectWaitMax bounds how long startup waits for the database to become
// reachable. Past that the process exits rather than
// serve requests against a non-functional backend.
const connectWaitMax = 5 * time.Second

type PostgresRepositoryManager struct {
	db    *sql.DB
	users users.Repository
	games games.Repository
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

func (m *PostgresRepositoryManager) Close() error {
	return m.db.Close()
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Games() games.Repository {
	return m.games
}

func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.UpContext(ctx, m.db, "."); err != nil {
		return err
	}

	return nil
}

func NewPostgresRepositoryManager(ctx context.Context, dsn string) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	return newPostgresManager(ctx, db)
}

// newPostgresManager takes ownership of db: on any error the handle is closed
// before returning.
func newPostgresManager(ctx context.Context, db *sql.DB) (RepositoryManager, error) {
	if err := waitForDB(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db unreachable: %w", err)
	}

	users, err := users.NewPostgresRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("user repo creation error: %w", err)
	}

	games, err := games.NewPostgresRepository(db)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("game repo creation error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:    db,
		users: users,
		games: games,
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration error: %w", err)
	}

	return m, nil
}

func waitForDB(ctx context.Context, db *sql.DB) error {
	backoff := retry.WithMaxDuration(connectWaitMax, retry.NewConstant(500*time.Millisecond))
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		if err := db.PingContext(ctx); err != nil {
			return retry.RetryableError(err)
		}
		return nil
	})
}
