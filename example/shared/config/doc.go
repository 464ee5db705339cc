// Package config provides database configuration helpers for PostgreSQL
// connections used by the example applications.
//
// This package contains factory functions for creating database connections
// using different PostgreSQL drivers (pgx.Pool, sql.DB, sqlx.DB) with a
// pre-configured call journal DSN.
package config
