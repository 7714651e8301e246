// Package config loads runtime configuration for the demomarket REPL.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment variables prefixed MARKET_.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-s string   storage backend: memory, sqlite, postgres or redis
//	-f string   SQLite database file
//	-d string   Postgres DSN
//	-r string   Redis address (host:port)
//	-p string   password hasher: sha256 or argon2id
//	-l string   log level: debug, info, warn, error
//	-seed bool  seed demo products into an empty catalog
//
// # JSON schema
//
// Keys that are missing keep their earlier value. Durations accept "3s"
// style strings or integer nanoseconds:
//
//	{
//	  "storage": "redis",
//	  "redis_addr": "127.0.0.1:6379",
//	  "redis_dial_timeout": "2s",
//	  "password_hasher": "argon2id",
//	  "seed_demo_data": true
//	}
package config
