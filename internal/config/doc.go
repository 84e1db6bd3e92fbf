// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional config file. It provides
// type-safe access to settings needed by the server, the database layer
// and telemetry while keeping configuration details out of business logic.
package config
