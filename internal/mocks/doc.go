// Package mocks provides function-field test doubles for the service and
// auth interfaces consumed by the HTTP layer. Each mock calls its XxxFn
// field when set and otherwise returns the zero value or the configured
// default.
package mocks
