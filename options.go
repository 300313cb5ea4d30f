package idx

type readConfig struct {
	limits      Limits
	eager       bool
	verifyMagic bool
	compression Compression
}

func newReadConfig(opts []ReadOption) readConfig {
	cfg := readConfig{limits: defaultLimits(), compression: CompAuto}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	return cfg
}

type ReadOption func(*readConfig)

func WithReadLimits(l Limits) ReadOption {
	return func(c *readConfig) { c.limits = l }
}

// WithEagerValidation makes the decoders fail with ErrOutOfRange when the
// payload is shorter than the header declares, instead of deferring the
// check to record extraction.
func WithEagerValidation(v bool) ReadOption {
	return func(c *readConfig) { c.eager = v }
}

// WithVerifyMagic makes the decoders reject files whose magic number is not
// MagicLabels or MagicImages respectively.
func WithVerifyMagic(v bool) ReadOption {
	return func(c *readConfig) { c.verifyMagic = v }
}

// WithCompression selects how file contents are decompressed by Load and
// LoadFiles. CompAuto sniffs the signature; CompBR must be chosen explicitly.
func WithCompression(comp Compression) ReadOption {
	return func(c *readConfig) { c.compression = comp }
}

type writeConfig struct {
	limits      Limits
	compression Compression
}

type WriteOption func(*writeConfig)

func WithWriteLimits(l Limits) WriteOption {
	return func(c *writeConfig) { c.limits = l }
}

func WithWriteCompression(comp Compression) WriteOption {
	return func(c *writeConfig) { c.compression = comp }
}
