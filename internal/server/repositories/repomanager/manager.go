// Package repomanager wires repository constructors to a database handle and
// exposes a schema migration hook.
package repomanager

import (
	"context"
	"database/sql"

	"github.com/shivtchandra/CivicWatch/internal/dbx"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/conversations"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/reports"
	"github.com/shivtchandra/CivicWatch/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to the provided DBTX, which can
// be either the root *sql.DB or a transaction handle.
type RepositoryManager interface {
	Users(db dbx.DBTX) users.Repository
	Reports(db dbx.DBTX) reports.Repository
	Conversations(db dbx.DBTX) conversations.Repository
	RunMigrations(ctx context.Context, db *sql.DB) error
}
