package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/courses"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/doubts"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/users"
)

// InMemoryRepositoryManager vends the volatile repositories. Tables are
// lost on restart; ids restart from 1.
type InMemoryRepositoryManager struct {
	users    users.Repository
	courses  courses.Repository
	sessions sessions.Repository
	doubts   doubts.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:    users.NewInMemoryRepository(),
		courses:  courses.NewInMemoryRepository(),
		sessions: sessions.NewInMemoryRepository(),
		doubts:   doubts.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m *InMemoryRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *InMemoryRepositoryManager) Courses() courses.Repository {
	return m.courses
}

func (m *InMemoryRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *InMemoryRepositoryManager) Doubts() doubts.Repository {
	return m.doubts
}
