package config

import "fmt"

// FileType names a recognized input file format.
type FileType int

const (
	Fasta FileType = iota
	Fastq
	BFCounter
)

// String renders a FileType the way flag parsing and log lines want
// to see it.
func (f FileType) String() string {
	switch f {
	case Fasta:
		return "Fasta"
	case Fastq:
		return "Fastq"
	case BFCounter:
		return "BFCounter"
	default:
		return fmt.Sprintf("FileType(%d)", int(f))
	}
}

func (f FileType) valid() bool {
	return f == Fasta || f == Fastq || f == BFCounter
}

// Config holds one pipeline run's fixed settings.
type Config struct {
	InputPath              string
	InputFileType          FileType
	OutputPath             string
	OriginalGenomeLength   int
	MinimalWeightThreshold int64
	KMerSize               int
	ReverseComplement      bool
}

// Option customizes Config construction.
type Option func(*Config)

// WithInputPath sets the input file path. If path is empty, this
// option is a no-op; New still rejects a Config left without one.
func WithInputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.InputPath = path
		}
	}
}

// WithInputFileType sets the input file format.
func WithInputFileType(t FileType) Option {
	return func(c *Config) {
		c.InputFileType = t
	}
}

// WithOutputPath sets the contigs output file path. If path is empty,
// this option is a no-op; New still rejects a Config left without
// one.
func WithOutputPath(path string) Option {
	return func(c *Config) {
		if path != "" {
			c.OutputPath = path
		}
	}
}

// WithOriginalGenomeLength sets the expected reference genome length
// used by the standardizer and by NG50 reporting.
func WithOriginalGenomeLength(length int) Option {
	return func(c *Config) {
		c.OriginalGenomeLength = length
	}
}

// WithMinimalWeightThreshold sets the weak-edge threshold used by
// pruning and standardization.
func WithMinimalWeightThreshold(threshold int64) Option {
	return func(c *Config) {
		c.MinimalWeightThreshold = threshold
	}
}

// WithKMerSize sets K, the fixed k-mer length for the run.
func WithKMerSize(k int) Option {
	return func(c *Config) {
		c.KMerSize = k
	}
}

// WithReverseComplement enables or disables reverse-complement
// ingestion of every read.
func WithReverseComplement(enabled bool) Option {
	return func(c *Config) {
		c.ReverseComplement = enabled
	}
}

// defaultConfig returns a Config with sensible non-path defaults; the
// caller must still supply input/output paths and a k-mer size.
func defaultConfig() Config {
	return Config{
		InputFileType:          Fasta,
		MinimalWeightThreshold: 1,
		KMerSize:               0,
	}
}

// New builds a Config from opts and validates it.
func New(opts ...Option) (*Config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Validate checks that a Config is complete and internally
// consistent.
func (c *Config) Validate() error {
	if c.InputPath == "" {
		return ErrMissingInputPath
	}
	if c.OutputPath == "" {
		return ErrMissingOutputPath
	}
	if c.KMerSize < 3 {
		return ErrKTooSmall
	}
	if !c.InputFileType.valid() {
		return ErrUnknownFileType
	}

	return nil
}
