package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_parts_snapshots_vendors_activity",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_revision_and_evaluated_selection_to_parts",
		Up:      migrationV2,
	},
}

func ensureVersionTable(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// CurrentVersion returns the highest applied migration.
func CurrentVersion(db *sql.DB) (int, error) {
	var v int
	err := db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	if err != nil {
		return 0, fmt.Errorf("failed to get current schema version: %w", err)
	}
	return v, nil
}

// RunMigrations executes all pending migrations, each in its own transaction
func RunMigrations(db *sql.DB) error {
	if err := ensureVersionTable(db); err != nil {
		return err
	}

	currentVersion, err := CurrentVersion(db)
	if err != nil {
		return err
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d (%s) failed: %w", migration.Version, migration.Name, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 creates the original tables, before optimistic revisions.
func migrationV1(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS parts (
			id TEXT PRIMARY KEY,
			material TEXT NOT NULL DEFAULT '',
			process TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 1,
			score INTEGER NOT NULL DEFAULT 0,
			findings TEXT NOT NULL DEFAULT '[]',
			use_case TEXT,
			environment TEXT,
			production_scale TEXT,
			load_condition TEXT,
			finish_requirement TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS snapshots (
			part_id TEXT NOT NULL,
			version TEXT NOT NULL,
			tag TEXT,
			material TEXT NOT NULL DEFAULT '',
			process TEXT NOT NULL DEFAULT '',
			quantity INTEGER NOT NULL DEFAULT 1,
			score INTEGER NOT NULL DEFAULT 0,
			issue_count INTEGER NOT NULL DEFAULT 0,
			cost_per_part REAL NOT NULL DEFAULT 0,
			fixes TEXT NOT NULL DEFAULT '[]',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (part_id, version),
			FOREIGN KEY (part_id) REFERENCES parts(id) ON DELETE CASCADE
		);

		CREATE TABLE IF NOT EXISTS vendors (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			city TEXT,
			tier INTEGER NOT NULL CHECK(tier >= 1),
			processes TEXT NOT NULL DEFAULT '[]',
			materials TEXT NOT NULL DEFAULT '[]',
			min_order_qty INTEGER NOT NULL DEFAULT 0 CHECK(min_order_qty >= 0),
			contact TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS activity_log (
			id TEXT PRIMARY KEY,
			part_id TEXT NOT NULL,
			action TEXT NOT NULL,
			detail TEXT,
			actor TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE INDEX IF NOT EXISTS idx_snapshots_part ON snapshots(part_id);
		CREATE INDEX IF NOT EXISTS idx_activity_log_part ON activity_log(part_id, created_at);
	`)
	return err
}

// migrationV2 adds the revision counter and the evaluated selection used for
// the stale flag. Existing scored parts are assumed fresh.
func migrationV2(tx *sql.Tx) error {
	stmts := []string{
		"ALTER TABLE parts ADD COLUMN evaluated INTEGER NOT NULL DEFAULT 0",
		"ALTER TABLE parts ADD COLUMN evaluated_material TEXT",
		"ALTER TABLE parts ADD COLUMN evaluated_process TEXT",
		"ALTER TABLE parts ADD COLUMN revision INTEGER NOT NULL DEFAULT 1",
		`UPDATE parts
			SET evaluated = 1, evaluated_material = material, evaluated_process = process
			WHERE findings != '[]'`,
	}
	for _, stmt := range stmts {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LatestVersion is the schema version a fully migrated database reports.
func LatestVersion() int {
	return migrations[len(migrations)-1].Version
}
