package dataset

// ============================================================================
// LOAD OPTIONS — functional options for Load/Parse
// ============================================================================

// Option configures loading behavior.
type Option func(*loadConfig)

type loadConfig struct {
	Comma rune
}

// WithComma sets the field delimiter. Defaults to ','.
func WithComma(c rune) Option {
	return func(cfg *loadConfig) {
		if c != 0 {
			cfg.Comma = c
		}
	}
}

func applyOptions(opts []Option) *loadConfig {
	cfg := &loadConfig{Comma: ','}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
