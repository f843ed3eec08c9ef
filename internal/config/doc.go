// Package config handles configuration loading, parsing, and validation
// from environment variables (prefixed CLINIC_), an optional config.yaml, and
// an optional .env file. It provides type-safe access to the settings needed
// by the server, the database pool and the auth components.
package config
