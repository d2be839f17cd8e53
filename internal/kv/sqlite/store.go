package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/chronox22/eco-gamer-collective/internal/migration"
	"github.com/chronox22/eco-gamer-collective/migrations"
)

type Store struct {
	path string
	db   *sql.DB
}

func NewStore(path string) *Store {
	return &Store{
		path: path,
	}
}

func (s *Store) Init() error {
	// Create data directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	if s.db == nil {
		db, err := s.open()
		if err != nil {
			return err
		}
		s.db = db
	}

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'ecogamer init' first")
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	s.db = db

	return s.runner().ValidateVersion()
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// One writer; readers never observe a half-applied Set.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to configure database: %w", err)
	}
	return db, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

func (s *Store) runner() *migration.Runner {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		// the embed pattern guarantees the directory
		panic(fmt.Sprintf("sqlite migrations missing from binary: %v", err))
	}
	return migration.NewRunner(s.db, subFS, migration.SQLite)
}

func (s *Store) runMigrations() error {
	_, err := s.runner().Apply()
	return err
}

// Describe returns the database file path.
func (s *Store) Describe() string {
	return s.path
}

func (s *Store) Get(key string) (string, bool, error) {
	if s.db == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	var value string
	err := s.db.QueryRow("SELECT value FROM snapshots WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *Store) Set(key, value string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec(`
		INSERT INTO snapshots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

func (s *Store) Delete(key string) error {
	if s.db == nil {
		return fmt.Errorf("storage not loaded")
	}
	_, err := s.db.Exec("DELETE FROM snapshots WHERE key = ?", key)
	return err
}

func (s *Store) Keys() ([]string, error) {
	if s.db == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	rows, err := s.db.Query("SELECT key FROM snapshots ORDER BY key")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}
