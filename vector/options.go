package vector

const (
	defaultGrowthFactor = 2
	defaultMinCapacity  = 1
)

// Config controls how a Vector allocates storage.
type Config struct {
	// GrowthFactor multiplies the capacity on each reallocation.
	GrowthFactor int
	// MinCapacity is the smallest capacity a growing vector allocates.
	MinCapacity int
	// InitialCapacity is reserved up front by New, leaving the size at 0.
	InitialCapacity int
	// OnGrow, if set, is called after every reallocation with the old and
	// new capacity.
	OnGrow func(from, to int)
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the doubling policy with a floor of one slot.
func DefaultConfig() Config {
	return Config{
		GrowthFactor: defaultGrowthFactor,
		MinCapacity:  defaultMinCapacity,
	}
}

// WithGrowthFactor sets the capacity multiplier. Values below 1 are ignored.
func WithGrowthFactor(factor int) Option {
	return func(cfg *Config) {
		if factor >= 1 {
			cfg.GrowthFactor = factor
		}
	}
}

// WithMinCapacity sets the smallest capacity allocated on growth.
func WithMinCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MinCapacity = n
		}
	}
}

// WithCapacity reserves n slots at construction without adding elements.
func WithCapacity(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.InitialCapacity = n
		}
	}
}

// WithGrowthHook registers fn to observe reallocations.
func WithGrowthHook(fn func(from, to int)) Option {
	return func(cfg *Config) {
		if fn != nil {
			cfg.OnGrow = fn
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// nextCapacity returns the capacity to grow to when at least required slots
// are needed. A zero Config behaves like DefaultConfig.
func (c Config) nextCapacity(capacity, required int) int {
	factor := c.GrowthFactor
	if factor < 1 {
		factor = defaultGrowthFactor
	}
	floor := c.MinCapacity
	if floor < 1 {
		floor = defaultMinCapacity
	}

	next := max(capacity*factor, floor)
	return max(next, required)
}
