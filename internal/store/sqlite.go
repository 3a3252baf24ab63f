package store

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "modernc.org/sqlite" // register sqlite driver
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// SQLiteSlot keeps the payload in a row of the slots table.
type SQLiteSlot struct {
	db   *sql.DB
	path string
	name string
}

// OpenSQLite opens or creates the database at dbPath and migrates it.
func OpenSQLite(dbPath, name string) (*SQLiteSlot, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(full)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening slot db: %w", err)
	}
	// One connection keeps every statement on the same handle.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("opening slot db: %w", err)
	}

	return &SQLiteSlot{db: db, path: dbPath, name: name}, nil
}

// runMigrations applies the embedded schema on a separate connection.
func runMigrations(dbPath string) error {
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer func() { _ = migrateDB.Close() }()

	driver, err := migratesqlite.WithInstance(migrateDB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Load implements Slot.
func (s *SQLiteSlot) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := s.db.QueryRowContext(ctx, "SELECT payload FROM slots WHERE name = ?", s.name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %q: %w", s.name, err)
	}
	return []byte(payload), nil
}

// Save implements Slot.
func (s *SQLiteSlot) Save(ctx context.Context, payload []byte) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.ExecContext(ctx, `INSERT INTO slots (name, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		s.name, string(payload), now,
	)
	if err != nil {
		return fmt.Errorf("%w %q: %v", ErrPersist, s.name, err)
	}
	return nil
}

// UpdatedAt returns when the slot was last written, or the zero time.
func (s *SQLiteSlot) UpdatedAt(ctx context.Context) (time.Time, error) {
	var ts string
	err := s.db.QueryRowContext(ctx, "SELECT updated_at FROM slots WHERE name = ?", s.name).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Parse(time.RFC3339, ts)
}

// Location implements Slot.
func (s *SQLiteSlot) Location() string {
	return s.path + "#" + s.name
}

// Path returns the database file path.
func (s *SQLiteSlot) Path() string {
	return s.path
}

// Close implements Slot.
func (s *SQLiteSlot) Close() error {
	return s.db.Close()
}
