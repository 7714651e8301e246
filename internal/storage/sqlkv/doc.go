// Package sqlkv stores key-value pairs in a single SQL table.
//
// # Dialects
//
// SQLite (modernc.org/sqlite, pure Go) is the default local backend; the
// database is a single file next to the binary. Postgres goes through the
// pgx stdlib driver. Both share the schema
//
//	kv(key TEXT PRIMARY KEY, value BLOB|BYTEA NOT NULL)
//
// created by embedded goose migrations on Open.
//
// # Transactions
//
// Store implements storage.TxRunner. InTx hands the callback a Store bound
// to a *sql.Tx, so a group of Set/Delete calls commits or rolls back
// together.
//
// Typical Usage
//
//	st, err := sqlkv.Open(ctx, sqlkv.SQLite, "market.db")
//	if err != nil { ... }
//	defer st.Close()
//	_ = st.Set(ctx, "k", []byte(`"v"`))
package sqlkv
