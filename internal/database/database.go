package database

import (
	"database/sql"
	_ "embed"
	"fmt"
	"time"

	"github.com/AlexNT-maker/auto-payroll-system/pkg/utils"

	_ "github.com/lib/pq" // PostgreSQL driver
)

//go:embed schema.sql
var schemaSQL string

var DB *sql.DB

// Config holds the connection settings read from the environment.
type Config struct {
	Host        string
	Port        string
	User        string
	Password    string
	Name        string
	SSLMode     string
	ApplySchema bool
}

// DSN renders the lib/pq key/value connection string.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// InitDB opens and pings the connection pool, then applies the schema when asked.
func InitDB(cfg Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}
	utils.LogInfo("Successfully connected to the database", map[string]interface{}{"host": cfg.Host, "db": cfg.Name})

	if cfg.ApplySchema {
		if err := applySchema(db); err != nil {
			db.Close()
			return nil, err
		}
	}

	DB = db
	return db, nil
}

// applySchema runs the embedded schema script. Every statement is idempotent.
func applySchema(db *sql.DB) error {
	if _, err := db.Exec(schemaSQL); err != nil {
		return fmt.Errorf("could not execute schema script: %w", err)
	}
	utils.LogInfo("Database schema applied")
	return nil
}

// GetDB returns the database connection pool
func GetDB() *sql.DB {
	return DB
}
