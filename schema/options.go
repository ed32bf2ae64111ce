package schema

// Option configures a normalization call.
type Option func(*normalizeConfig)

type normalizeConfig struct {
	logger Logger
	source string
}

func applyOptions(opts ...Option) *normalizeConfig {
	cfg := &normalizeConfig{logger: NopLogger{}}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the logger for debug output.
// Default: NopLogger
func WithLogger(l Logger) Option {
	return func(cfg *normalizeConfig) {
		cfg.logger = LoggerOrNop(l)
	}
}

// WithSourceName records where the document came from (file path or URL).
// It only appears in error messages and log records.
func WithSourceName(name string) Option {
	return func(cfg *normalizeConfig) {
		cfg.source = name
	}
}
