package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/skillbridge/internal/server/backend"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/courses"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/doubts"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/users"
)

// SelectingRepositoryManager vends switching repositories bound to the
// storage-mode selector. Handlers hold the switching repos for the whole
// process lifetime; the selector decides per call which backend serves.
type SelectingRepositoryManager struct {
	selector *backend.Selector
	volatile RepositoryManager
	durable  RepositoryManager

	users    users.Repository
	courses  courses.Repository
	sessions sessions.Repository
	doubts   doubts.Repository
}

func NewSelectingRepositoryManager(selector *backend.Selector, volatile, durable RepositoryManager) *SelectingRepositoryManager {
	return &SelectingRepositoryManager{
		selector: selector,
		volatile: volatile,
		durable:  durable,
		users:    users.NewSwitchingRepository(selector, volatile.Users(), durable.Users()),
		courses:  courses.NewSwitchingRepository(selector, volatile.Courses(), durable.Courses()),
		sessions: sessions.NewSwitchingRepository(selector, volatile.Sessions(), durable.Sessions()),
		doubts:   doubts.NewSwitchingRepository(selector, volatile.Doubts(), durable.Doubts()),
	}
}

func (m *SelectingRepositoryManager) Conn() *sql.DB {
	return m.durable.Conn()
}

// RunMigrations migrates the durable backend only; the volatile one has no
// schema.
func (m *SelectingRepositoryManager) RunMigrations(ctx context.Context) error {
	return m.durable.RunMigrations(ctx)
}

func (m *SelectingRepositoryManager) Users() users.Repository {
	return m.users
}

func (m *SelectingRepositoryManager) Courses() courses.Repository {
	return m.courses
}

func (m *SelectingRepositoryManager) Sessions() sessions.Repository {
	return m.sessions
}

func (m *SelectingRepositoryManager) Doubts() doubts.Repository {
	return m.doubts
}
