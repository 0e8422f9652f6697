package db

import "database/sql"

// SchemaSQL is the complete modern schema for fresh foundry installs.
// This schema reflects the current state after all migrations.
//
// # Schema Drift Protection
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests load it via GetSchemaSQL(), so a column referenced by an adapter but
// missing here fails immediately with "no such column".
//
// When adding new columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Run `make test` to verify alignment
const SchemaSQL = `
-- Parts (one record per designed part)
CREATE TABLE IF NOT EXISTS parts (
	id TEXT PRIMARY KEY,
	material TEXT NOT NULL DEFAULT '',
	process TEXT NOT NULL DEFAULT '',
	quantity INTEGER NOT NULL DEFAULT 1,
	score INTEGER NOT NULL DEFAULT 0,
	findings TEXT NOT NULL DEFAULT '[]',
	evaluated INTEGER NOT NULL DEFAULT 0,
	evaluated_material TEXT,
	evaluated_process TEXT,
	use_case TEXT,
	environment TEXT,
	production_scale TEXT,
	load_condition TEXT,
	finish_requirement TEXT,
	revision INTEGER NOT NULL DEFAULT 1,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Snapshots (frozen milestones of a part)
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

-- Vendors (the sourcing pool)
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

-- Activity log (write-only trail per part)
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
`

// InitSchema creates or upgrades the database schema
func InitSchema(db *sql.DB) error {
	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount > 0 {
		// schema_version table exists - run any pending migrations
		return RunMigrations(db)
	}

	// Fresh install - create modern schema directly
	if _, err := db.Exec(SchemaSQL); err != nil {
		return err
	}
	if err := ensureVersionTable(db); err != nil {
		return err
	}

	// Mark all migrations as applied for fresh installs
	for _, m := range migrations {
		if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
			return err
		}
	}
	return nil
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
