package postgrestore

import (
	"embed"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func migrationSource() migrate.MigrationSource {
	return &migrate.EmbedFileSystemMigrationSource{
		FileSystem: migrationsFS,
		Root:       "migrations",
	}
}

// OpenMigrationDB opens the lib/pq connection used for schema migrations.
func OpenMigrationDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

// Migrate applies (up) or reverts (down) the embedded migrations and
// returns how many ran.
func Migrate(db *sqlx.DB, up bool) (int, error) {
	direction := migrate.Up
	if !up {
		direction = migrate.Down
	}

	n, err := migrate.Exec(db.DB, "postgres", migrationSource(), direction)
	if err != nil {
		return n, fmt.Errorf("apply migrations: %w", err)
	}

	return n, nil
}

// PendingMigrations lists the ids of migrations not applied yet.
func PendingMigrations(db *sqlx.DB) ([]string, error) {
	planned, _, err := migrate.PlanMigration(db.DB, "postgres", migrationSource(), migrate.Up, 0)
	if err != nil {
		return nil, fmt.Errorf("plan migrations: %w", err)
	}

	ids := make([]string, 0, len(planned))
	for _, m := range planned {
		ids = append(ids, m.Id)
	}

	return ids, nil
}
