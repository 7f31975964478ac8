// Package config loads and validates runtime configuration for apibanner.
//
// Configuration is read from an optional `config/config.yaml` and can be
// overridden via environment variables (see `internal/config/config.go` for
// keys). The displayed API URL comes from `API_URL`.
package config
