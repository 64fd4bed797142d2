package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stemsi/aprec-backend/internal/model"
)

// ErrStoreUnavailable wraps failures to obtain a store handle.
var ErrStoreUnavailable = errors.New("store unavailable")

// DBTX is the query surface shared by *pgxpool.Pool, *pgxpool.Conn and pgx.Tx.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Session is a request-scoped read handle to the store.
type Session interface {
	ListStudentProfiles(ctx context.Context) ([]model.StudentProfile, error)
	// LatestStudentProfile returns nil, nil when no profile exists.
	LatestStudentProfile(ctx context.Context) (*model.StudentProfile, error)
	ListOfferedClasses(ctx context.Context) ([]model.APClass, error)
}

// Store hands out sessions bound to the lifetime of fn.
type Store interface {
	WithSession(ctx context.Context, fn func(Session) error) error
}

// PostgresStore acquires one pooled connection per session.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// WithSession acquires a connection, runs fn, and releases the connection
// whether fn returns, fails, or panics.
func (s *PostgresStore) WithSession(ctx context.Context, fn func(Session) error) error {
	conn, err := s.pool.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	defer conn.Release()

	return fn(NewSession(conn))
}

type session struct {
	students *StudentProfileRepository
	classes  *APClassRepository
}

// NewSession builds a Session over any query handle.
func NewSession(db DBTX) Session {
	return &session{
		students: NewStudentProfileRepository(db),
		classes:  NewAPClassRepository(db),
	}
}

func (s *session) ListStudentProfiles(ctx context.Context) ([]model.StudentProfile, error) {
	return s.students.List(ctx)
}

func (s *session) LatestStudentProfile(ctx context.Context) (*model.StudentProfile, error) {
	return s.students.Latest(ctx)
}

func (s *session) ListOfferedClasses(ctx context.Context) ([]model.APClass, error) {
	return s.classes.ListOffered(ctx)
}
