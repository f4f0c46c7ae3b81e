package gbxcart

import "time"

// Config holds the controller configuration.
type Config struct {
	// ProgressCallback is called during ROM reads to report progress (optional)
	ProgressCallback ProgressCallback

	// Logger is used for logging operations (optional)
	Logger Logger

	// ChunkSize is the number of bytes the firmware sends per read or
	// continue command
	ChunkSize int

	// Retry bounds recovery from timeouts and transport faults
	Retry RetryPolicy

	// LatchDelay is the pause after each half of a bank register write
	LatchDelay time.Duration

	// LegacyResumeAddress resends only the low byte of the cursor when
	// resuming after a timeout, as early host software did
	LegacyResumeAddress bool

	// State receives state updates; a private store is used when nil
	State *StateStore
}

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		ChunkSize:  64,
		Retry:      DefaultRetryPolicy(),
		LatchDelay: 5 * time.Millisecond,
	}
}

// Option is a functional option for configuring the Controller.
type Option func(*Config)

// WithProgressCallback sets a callback function to track ROM read progress.
//
// Example:
//
//	ctrl := gbxcart.New(opener,
//	    gbxcart.WithProgressCallback(func(p gbxcart.Progress) {
//	        fmt.Printf("%.1f%% complete\n", p.Percentage)
//	    }),
//	)
func WithProgressCallback(callback ProgressCallback) Option {
	return func(c *Config) {
		c.ProgressCallback = callback
	}
}

// WithLogger sets a logger for the controller operations.
//
// Example:
//
//	ctrl := gbxcart.New(opener, gbxcart.WithLogger(myLogger))
func WithLogger(logger Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithChunkSize sets the firmware's reply chunk size.
// Default is 64 bytes, which every known firmware uses.
//
// Example:
//
//	ctrl := gbxcart.New(opener, gbxcart.WithChunkSize(64))
func WithChunkSize(size int) Option {
	return func(c *Config) {
		if size > 0 && size <= 4096 {
			c.ChunkSize = size
		}
	}
}

// WithRetryPolicy replaces the retry policy.
//
// Example:
//
//	ctrl := gbxcart.New(opener, gbxcart.WithRetryPolicy(gbxcart.DefaultRetryPolicy().Unbounded()))
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Config) {
		if policy.MaxTimeouts >= 0 && policy.MaxFaults >= 0 && policy.Backoff >= 0 {
			c.Retry = policy
		}
	}
}

// WithBackoff sets only the pause between recovery attempts.
//
// Example:
//
//	ctrl := gbxcart.New(opener, gbxcart.WithBackoff(100*time.Millisecond))
func WithBackoff(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.Retry.Backoff = d
		}
	}
}

// WithLatchDelay sets the pause after each bank register write.
// Default is 5ms; some flash cartridges need longer.
func WithLatchDelay(d time.Duration) Option {
	return func(c *Config) {
		if d >= 0 {
			c.LatchDelay = d
		}
	}
}

// WithLegacyResumeAddress makes timeout recovery resend only the low byte
// of the read cursor. Images read this way are corrupt whenever a timeout
// happens above address 0xFF; use it only to reproduce old dumps.
func WithLegacyResumeAddress(enabled bool) Option {
	return func(c *Config) {
		c.LegacyResumeAddress = enabled
	}
}

// WithStateStore shares a state store with the controller, so observers
// can be registered before the controller exists.
//
// Example:
//
//	store := gbxcart.NewStateStore()
//	store.Subscribe(gbxcart.StateChangedFunc(func(prev, next gbxcart.State) {
//	    fmt.Println("board:", next.BoardVersion)
//	}))
//	ctrl := gbxcart.New(opener, gbxcart.WithStateStore(store))
func WithStateStore(store *StateStore) Option {
	return func(c *Config) {
		c.State = store
	}
}
