package db

// SchemaSQL is the complete schema for fresh rota installs. This is the
// single source of truth: tests use it via GetSchemaSQL() instead of
// hardcoding their own CREATE TABLE statements, so repository code that
// drifts from this schema fails immediately with "no such column".
//
// Keep this in sync with migrations: when adding a column or table, add a
// migration in migrations.go and update SchemaSQL here.
const SchemaSQL = `
-- Operation catalog (named, colored categories of work)
CREATE TABLE IF NOT EXISTS operations (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	color TEXT NOT NULL,
	description TEXT,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Shifts (one employee, one day, minute-precision boundary)
CREATE TABLE IF NOT EXISTS shifts (
	id TEXT PRIMARY KEY,
	employee TEXT NOT NULL,
	day TEXT NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	segmentation_enabled INTEGER NOT NULL DEFAULT 0,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

-- Segments (per-shift partition; position preserves insertion order).
-- operation_id has no FK on purpose: a segment may reference a deleted
-- catalog entry and must keep rendering with the fallback color.
CREATE TABLE IF NOT EXISTS segments (
	shift_id TEXT NOT NULL,
	id TEXT NOT NULL,
	position INTEGER NOT NULL,
	start_time TEXT NOT NULL,
	end_time TEXT NOT NULL,
	operation_id TEXT NOT NULL,
	PRIMARY KEY (shift_id, id),
	FOREIGN KEY (shift_id) REFERENCES shifts(id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_segments_shift ON segments(shift_id, position);
CREATE INDEX IF NOT EXISTS idx_shifts_employee_day ON shifts(employee, day);
`

// InitSchema creates the database schema
func InitSchema() error {
	db, err := GetDB()
	if err != nil {
		return err
	}

	// Check if schema_version table exists to determine if this is a fresh install
	var tableCount int
	err = db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		// Fresh install - create the schema directly and mark all
		// migrations as applied so they never run against it.
		if _, err := db.Exec(SchemaSQL); err != nil {
			return err
		}
		_, err = db.Exec(`
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER PRIMARY KEY,
				applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		if err != nil {
			return err
		}
		for _, m := range migrations {
			if _, err := db.Exec("INSERT INTO schema_version (version) VALUES (?)", m.Version); err != nil {
				return err
			}
		}
		return nil
	}

	// schema_version table exists - run any pending migrations
	return RunMigrations()
}

// GetSchemaSQL returns the authoritative schema SQL for use by tests.
// Tests should use this instead of hardcoding their own schema to prevent drift.
func GetSchemaSQL() string {
	return SchemaSQL
}
