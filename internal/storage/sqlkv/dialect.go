package sqlkv

// Dialect holds the driver names and statements for one SQL engine.
type Dialect struct {
	Name string

	// DriverName is passed to sql.Open.
	DriverName string

	// GooseDialect is passed to goose.SetDialect.
	GooseDialect string

	migrationsDir string

	getQuery    string
	setQuery    string
	deleteQuery string
}

var SQLite = Dialect{
	Name:          "sqlite",
	DriverName:    "sqlite",
	GooseDialect:  "sqlite3",
	migrationsDir: "migrations/sqlite",
	getQuery:      `SELECT value FROM kv WHERE key = ?`,
	setQuery: `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
	deleteQuery: `DELETE FROM kv WHERE key = ?`,
}

var Postgres = Dialect{
	Name:          "postgres",
	DriverName:    "pgx",
	GooseDialect:  "postgres",
	migrationsDir: "migrations/postgres",
	getQuery:      `SELECT value FROM kv WHERE key = $1`,
	setQuery: `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`,
	deleteQuery: `DELETE FROM kv WHERE key = $1`,
}
