// Package db opens and migrates the dev server's database. SQLite is
// the default backend; MySQL is available for setups that mirror a
// deployed environment.
package db

import (
	"database/sql"
	"fmt"
)

// InitDB opens the database for the given driver ("sqlite" or "mysql")
// and creates the schema if it does not exist yet.
func InitDB(driver, dsn string) (*sql.DB, error) {
	switch driver {
	case "", "sqlite":
		return initSQLite(dsn)
	case "mysql":
		return initMySQL(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}
}

func migrate(db *sql.DB, stmts []string) error {
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
