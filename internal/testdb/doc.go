// Package testdb provides utilities for tests that run against a real
// PostgreSQL database. Tests using it are guarded by the integration build
// tag and skip themselves when no database URL is configured.
//
// Every test runs inside a transaction that is rolled back on completion,
// so tests may run in parallel against one shared schema.
package testdb
