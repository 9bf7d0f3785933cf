// Package pkgdb opens the relational connections used by the stores.
//
// SQLite goes through gorm with a single open connection, so every statement
// is serialized by the driver. Postgres uses a pgx connection pool.
package pkgdb
