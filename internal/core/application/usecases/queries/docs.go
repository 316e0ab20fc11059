// Package queries contains the read side. Handlers run plain SQL through sqlx
// and return flat views; they never load aggregates.
//
// SQL is written with ? placeholders and rebound for the driver, so the same
// statements run on PostgreSQL and on the SQLite database used in tests.
package queries
