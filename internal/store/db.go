package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps the sqlite connection with pooling and prepared statements.
type DB struct {
	*sql.DB
	prepared map[string]*sql.Stmt
	mutex    sync.RWMutex
}

// NewDB opens (creating if needed) the assessment database under dataDir.
func NewDB(dataDir string) (*DB, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "teamlens.db")
	connStr := fmt.Sprintf("%s?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(ON)&_pragma=busy_timeout(5000)", dbPath)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Single writer is enough here; reads come from the dashboard.
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	database := &DB{
		DB:       db,
		prepared: make(map[string]*sql.Stmt),
	}

	if err := database.migrate(); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	if err := database.initPreparedStatements(); err != nil {
		return nil, fmt.Errorf("failed to initialize prepared statements: %w", err)
	}

	slog.Info("Database initialized", "path", dbPath)

	return database, nil
}

func (db *DB) migrate() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS assessments (
			id TEXT PRIMARY KEY,
			email TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			role_title TEXT,
			unit TEXT,
			comm_scores TEXT,   -- JSON category score map; NULL for legacy records
			motiv_scores TEXT,  -- JSON category score map; NULL for legacy records
			comm_primary TEXT NOT NULL,
			comm_secondary TEXT NOT NULL,
			motiv_primary TEXT NOT NULL,
			motiv_secondary TEXT NOT NULL,
			burnout REAL,
			raw_answers TEXT,   -- optional flattened question_id -> response JSON
			created_at DATETIME NOT NULL,
			updated_at DATETIME NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS roster (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			role_title TEXT NOT NULL,
			unit TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_assessments_email ON assessments(email)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_unit ON assessments(unit)`,
		`CREATE INDEX IF NOT EXISTS idx_assessments_created ON assessments(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_roster_unit ON roster(unit)`,
	}

	for _, query := range queries {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to execute migration: %w", err)
		}
	}

	return nil
}

func (db *DB) initPreparedStatements() error {
	statements := map[string]string{
		"upsert_assessment": `INSERT INTO assessments (
			id, email, name, role_title, unit, comm_scores, motiv_scores,
			comm_primary, comm_secondary, motiv_primary, motiv_secondary,
			burnout, raw_answers, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(email) DO UPDATE SET
			name = excluded.name,
			role_title = excluded.role_title,
			unit = excluded.unit,
			comm_scores = excluded.comm_scores,
			motiv_scores = excluded.motiv_scores,
			comm_primary = excluded.comm_primary,
			comm_secondary = excluded.comm_secondary,
			motiv_primary = excluded.motiv_primary,
			motiv_secondary = excluded.motiv_secondary,
			burnout = excluded.burnout,
			raw_answers = excluded.raw_answers,
			updated_at = excluded.updated_at`,

		"get_assessment_by_email": `SELECT id, email, name, role_title, unit,
			comm_scores, motiv_scores, comm_primary, comm_secondary,
			motiv_primary, motiv_secondary, burnout, raw_answers, created_at, updated_at
			FROM assessments WHERE email = ?`,

		"list_assessments_by_unit": `SELECT id, email, name, role_title, unit,
			comm_primary, comm_secondary, motiv_primary, motiv_secondary, burnout, created_at
			FROM assessments WHERE unit = ? ORDER BY created_at DESC`,
	}

	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, query := range statements {
		stmt, err := db.Prepare(query)
		if err != nil {
			return fmt.Errorf("failed to prepare statement %s: %w", name, err)
		}
		db.prepared[name] = stmt
	}

	return nil
}

func (db *DB) stmt(name string) (*sql.Stmt, error) {
	db.mutex.RLock()
	defer db.mutex.RUnlock()

	stmt, exists := db.prepared[name]
	if !exists {
		return nil, fmt.Errorf("prepared statement %s not found", name)
	}
	return stmt, nil
}

// Close closes the prepared statements and the connection.
func (db *DB) Close() error {
	db.mutex.Lock()
	defer db.mutex.Unlock()

	for name, stmt := range db.prepared {
		if err := stmt.Close(); err != nil {
			slog.Warn("Failed to close prepared statement", "name", name, "error", err)
		}
	}
	db.prepared = make(map[string]*sql.Stmt)

	return db.DB.Close()
}
