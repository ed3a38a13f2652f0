package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Open returns a database/sql handle backed by lib/pq ("postgres") or pgx ("pgx").
func Open(driver, url string) (*sql.DB, error) {
	switch driver {
	case "", "postgres":
		return sql.Open("postgres", url)
	case "pgx":
		return sql.Open("pgx", url)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
