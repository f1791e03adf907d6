package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// registers the cgo-free "sqlite" driver used by connectSQLite
	_ "modernc.org/sqlite"
)

// Connect picks the driver from the DSN shape. postgres:// URLs go to
// PostgreSQL; anything else (a file path or ":memory:") is treated as a
// SQLite DSN so local development and the e2e suite run without a server.
func Connect(dsn string) (*gorm.DB, error) {
	if isPostgres(dsn) {
		return connectPostgres(dsn)
	}
	return connectSQLite(dsn)
}

func isPostgres(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

func connectPostgres(dsn string) (*gorm.DB, error) {
	log.Println("database: connecting to PostgreSQL")
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}

func connectSQLite(dsn string) (*gorm.DB, error) {
	log.Println("database: using SQLite at", dsn)
	return gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        dsn,
		}),
		&gorm.Config{},
	)
}
