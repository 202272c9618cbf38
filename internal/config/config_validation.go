package config

// validate checks that the final merged [StructuredConfig] satisfies the
// invariants the service cannot start without.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	if cfg.Auth.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}
