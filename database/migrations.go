package database

import (
	"database/sql"
	"embed"

	migrate "github.com/rubenv/sql-migrate"
)

//go:embed sql/*.sql
var SQLFiles embed.FS

// Migrations is the embedded schema migration source.
func Migrations() *migrate.EmbedFileSystemMigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: SQLFiles,
		Root:       "sql",
	}
}

// Migrate applies or rolls back the embedded migrations and returns how many ran.
// driver is the database/sql driver name, which sql-migrate also uses as its dialect key.
func Migrate(db *sql.DB, driver string, dir migrate.MigrationDirection) (int, error) {
	return migrate.Exec(db, driver, Migrations(), dir)
}
