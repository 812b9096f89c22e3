// Package sqlstore implements the repositories on database/sql. The same SQL
// runs on Postgres (pgx) and sqlite (modernc); only placeholders differ.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"bookmarks-api/internal/repository"
)

type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

const pgUniqueViolation = "23505"

// Store owns the connection pool and hands out repositories bound to it.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// ParseURL maps a DATABASE_URL onto a dialect and driver DSN.
// postgres:// and postgresql:// go to pgx, sqlite://<path> goes to modernc sqlite.
func ParseURL(databaseURL string) (Dialect, string, error) {
	raw := strings.TrimSpace(databaseURL)
	switch {
	case strings.HasPrefix(raw, "postgres://"), strings.HasPrefix(raw, "postgresql://"):
		return DialectPostgres, raw, nil
	case strings.HasPrefix(raw, "sqlite://"):
		path := strings.TrimPrefix(raw, "sqlite://")
		if path == "" {
			return "", "", fmt.Errorf("sqlite url has no path")
		}
		return DialectSQLite, path, nil
	case raw == "":
		return "", "", fmt.Errorf("database url is empty")
	default:
		return "", "", fmt.Errorf("unsupported database url scheme")
	}
}

// Open connects to the database described by databaseURL and verifies the connection.
func Open(ctx context.Context, databaseURL string) (*Store, error) {
	dialect, dsn, err := ParseURL(databaseURL)
	if err != nil {
		return nil, err
	}

	var db *sql.DB
	switch dialect {
	case DialectPostgres:
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("open postgres db: %w", err)
		}
	case DialectSQLite:
		db, err = openSQLite(dsn)
		if err != nil {
			return nil, err
		}
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping %s db: %w", dialect, err)
	}

	return &Store{db: db, dialect: dialect}, nil
}

func openSQLite(path string) (*sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// one writer keeps sqlite away from SQLITE_BUSY and lets :memory: survive
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	return db, nil
}

// NewStore wraps an existing pool, mainly for tests.
func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

func (s *Store) DB() *sql.DB {
	return s.db
}

func (s *Store) Dialect() Dialect {
	return s.dialect
}

func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) Users() repository.UserRepository {
	return NewUserRepository(s.db, s.dialect)
}

func (s *Store) Bookmarks() repository.BookmarkRepository {
	return NewBookmarkRepository(s.db, s.dialect)
}

// Truncate removes every bookmark and user in one transaction. Test helper.
func (s *Store) Truncate(ctx context.Context) error {
	return withTx(ctx, s.db, func(ctx context.Context, tx dbtx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
			return fmt.Errorf("delete bookmarks: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return fmt.Errorf("delete users: %w", err)
		}
		return nil
	})
}

// rebind rewrites ? placeholders into $n for Postgres.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		switch code := liteErr.Code(); {
		case code == sqlite3.SQLITE_CONSTRAINT_UNIQUE, code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return true
		case code&0xff == sqlite3.SQLITE_CONSTRAINT:
			return strings.Contains(liteErr.Error(), "UNIQUE")
		}
	}
	return false
}

// wrapWriteErr turns unique violations into repository.ErrAlreadyExists.
func wrapWriteErr(op string, err error) error {
	if isUniqueViolation(err) {
		return fmt.Errorf("%s: %w", op, repository.ErrAlreadyExists)
	}
	return fmt.Errorf("%s: %w", op, err)
}
