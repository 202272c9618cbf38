package config

import "errors"

var (
	// ErrMissingDatabaseDSN is returned when no database connection string
	// was supplied through any configuration layer.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")

	// ErrMissingTokenSignKey is returned when no JWT signing key was
	// supplied; the access guard cannot issue or verify tokens without it.
	ErrMissingTokenSignKey = errors.New("token sign key is required")
)
