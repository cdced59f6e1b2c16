package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/skillbridge/internal/server/migrations"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/courses"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/doubts"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/users"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// PostgresRepositoryManager vends PostgreSQL-backed repositories and exposes
// a schema migration hook. Opening the pool does not dial the server; the
// startup probe decides whether this backend is ever used.
type PostgresRepositoryManager struct {
	db       *sql.DB
	users    users.Repository
	courses  courses.Repository
	sessions sessions.Repository
	doubts   doubts.Repository
}

func NewPostgresRepositoryManager(dsn string) (*PostgresRepositoryManager, error) {

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	m := &PostgresRepositoryManager{
		db:       db,
		users:    users.NewPostgresRepository(db),
		courses:  courses.NewPostgresRepository(db),
		sessions: sessions.NewPostgresRepository(db),
		doubts:   doubts.NewPostgresRepository(db),
	}

	return m, nil
}

func (m *PostgresRepositoryManager) Conn() *sql.DB {
	return m.db
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the managed database connection.
func (m *PostgresRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *PostgresRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *PostgresRepositoryManager) Courses() courses.Repository {
	return m.courses
}

func (m *PostgresRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *PostgresRepositoryManager) Doubts() doubts.Repository {
	return m.doubts
}
