// Package config loads and merges the service configuration from environment
// variables (optionally seeded by a local .env file), command-line flags, an
// optional JSON file, and built-in defaults - in that order of precedence.
package config
