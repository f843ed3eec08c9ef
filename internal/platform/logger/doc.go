// Package logger provides structured logging functionality for the application.
//
// It builds on the standard library log/slog package: Setup installs a JSON
// handler at the configured level as the process default, and the context
// helpers carry a request-scoped logger (with trace ID and user attributes)
// through handlers, services and stores.
package logger
