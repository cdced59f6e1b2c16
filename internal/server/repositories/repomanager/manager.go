// Package repomanager wires repository implementations per storage backend
// and exposes the schema migration hook for the durable one.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/courses"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/doubts"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/sessions"
	"github.com/dmitrijs2005/skillbridge/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	Courses() courses.Repository
	Sessions() sessions.Repository
	Doubts() doubts.Repository
}
