// Package postgres provides PostgreSQL-specific implementations for the data
// storage interfaces defined in the internal/store package, together with the
// connection pool setup and the embedded schema migrations they rely on.
package postgres
