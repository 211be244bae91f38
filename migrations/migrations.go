// Package migrations embeds the SQL schema migrations, one directory per
// database driver, so the binary carries its own schema.
package migrations

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed sqlite/*.sql
var sqliteMigrations embed.FS

//go:embed postgres/*.sql
var postgresMigrations embed.FS

// ForDriver returns the migrations for a database/sql driver name, rooted at
// the driver's directory.
func ForDriver(driver string) (fs.FS, error) {
	switch driver {
	case "sqlite3":
		return fs.Sub(sqliteMigrations, "sqlite")
	case "postgres":
		return fs.Sub(postgresMigrations, "postgres")
	}
	return nil, fmt.Errorf("unsupported database driver: %s", driver)
}
