package builder

// BuilderOption mutates a builderConfig before a Builder is built.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the settings threaded through ingestion.
type builderConfig struct {
	reverseComplement bool
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithReverseComplement enables ingesting each record's reverse
// complement alongside its forward strand.
func WithReverseComplement(enabled bool) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.reverseComplement = enabled
	}
}
