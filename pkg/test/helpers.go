package test

import (
	"database/sql"
	"log"
	"path/filepath"

	"taskapp/internal/adapter/database/sqlite"
	"taskapp/pkg"
)

// InitTestDB opens an in-memory sqlite store with migrations applied.
// The pool is pinned to a single connection so every statement sees the
// same in-memory database.
func InitTestDB() *sqlite.DB {
	db, err := sql.Open("sqlite3", ":memory:")

	if err != nil {
		log.Fatal(err)
	}

	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		log.Fatal(err)
	}

	migrationsPath := filepath.Join(pkg.FindProjectRoot(), "db", "migrations")
	sqlite.RunMigrations(db, migrationsPath)

	return sqlite.NewWithDB(db)
}
