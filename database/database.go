// Package database хранит фичи, запросы клиентов и рассчитанные скоры в
// локальной SQLite базе. Это альтернативный/legacy путь: источником правды
// остаётся Google-таблица, БД — только кэш для офлайн-работы и экспериментов
// со взвешенным скорингом.
package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DBConfig конфигурация подключения к БД
type DBConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultDBConfig возвращает конфигурацию подключения по умолчанию
func DefaultDBConfig() DBConfig {
	return DBConfig{
		MaxOpenConns:    10,
		MaxIdleConns:    5,
		ConnMaxLifetime: 5 * time.Minute,
	}
}

// DB обертка для работы с базой данных фич
type DB struct {
	conn *sql.DB
}

// NewDB создает базу данных с настройками подключения по умолчанию
func NewDB(path string) (*DB, error) {
	return NewDBWithConfig(path, DefaultDBConfig())
}

// NewDBWithConfig создает базу данных с заданными настройками подключения
func NewDBWithConfig(path string, config DBConfig) (*DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(config.MaxOpenConns)
	conn.SetMaxIdleConns(config.MaxIdleConns)
	conn.SetConnMaxLifetime(config.ConnMaxLifetime)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.createTables(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return db, nil
}

// Close закрывает подключение к БД
func (db *DB) Close() error {
	return db.conn.Close()
}

// createTables создает схему БД, если её ещё нет
func (db *DB) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS features (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		module TEXT NOT NULL,
		name TEXT NOT NULL,
		description TEXT,
		point_of_contact TEXT,
		created_at TEXT DEFAULT (datetime('now')),
		updated_at TEXT DEFAULT (datetime('now')),
		UNIQUE(module, name)
	);

	CREATE TABLE IF NOT EXISTS client_requests (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		feature_id INTEGER NOT NULL REFERENCES features(id),
		client_tier TEXT NOT NULL,
		request_count INTEGER NOT NULL DEFAULT 1,
		client_name TEXT,
		source TEXT,
		created_at TEXT DEFAULT (datetime('now')),
		updated_at TEXT DEFAULT (datetime('now'))
	);

	CREATE TABLE IF NOT EXISTS scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		feature_id INTEGER NOT NULL REFERENCES features(id) UNIQUE,
		weighted_score REAL NOT NULL,
		total_requests INTEGER NOT NULL DEFAULT 0,
		tier_breakdown TEXT,
		calculated_at TEXT DEFAULT (datetime('now'))
	);

	CREATE INDEX IF NOT EXISTS idx_client_requests_feature ON client_requests(feature_id);
	CREATE INDEX IF NOT EXISTS idx_scores_feature ON scores(feature_id);
	`

	_, err := db.conn.Exec(schema)
	return err
}

func nullString(ns sql.NullString) *string {
	if !ns.Valid || ns.String == "" {
		return nil
	}
	s := ns.String
	return &s
}
