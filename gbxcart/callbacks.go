package gbxcart

import "time"

// Progress phases reported through ProgressCallback.
const (
	PhaseHeader   = "header"
	PhaseReading  = "reading"
	PhaseSaving   = "saving"
	PhaseComplete = "complete"
)

// Progress contains information about a running ROM read.
// Passed to ProgressCallback during ReadROM and DumpROM.
type Progress struct {
	// Phase describes the current operation phase:
	//   "header"   - Reading the cartridge header
	//   "reading"  - Reading ROM banks
	//   "saving"   - Writing the image to the storage sink
	//   "complete" - Operation completed successfully
	Phase string

	// Bank is the last bank read (1-based once reading has started)
	Bank int

	// TotalBanks is the number of ROM banks on the cartridge
	TotalBanks int

	// Percentage is the completion percentage (0.0 to 100.0)
	Percentage float64

	// BytesRead is the size of the image assembled so far
	BytesRead int

	// ElapsedTime is the time elapsed since the operation started
	ElapsedTime time.Duration
}

// ProgressCallback is called after every bank to report progress.
// Implementations should return quickly to avoid stalling the serial link.
//
// Example:
//
//	ctrl := gbxcart.New(opener,
//	    gbxcart.WithProgressCallback(func(p gbxcart.Progress) {
//	        fmt.Printf("[%s] %.1f%% - Bank %d/%d\n",
//	            p.Phase, p.Percentage, p.Bank, p.TotalBanks)
//	    }),
//	)
type ProgressCallback func(Progress)

// Logger is an optional logging interface that can be provided to the controller.
// This allows integration with any logging framework.
//
// Example with standard log package:
//
//	type StdLogger struct{}
//	func (l *StdLogger) Debug(msg string, kv ...interface{}) { log.Println(msg, kv) }
//	func (l *StdLogger) Info(msg string, kv ...interface{})  { log.Println(msg, kv) }
//	func (l *StdLogger) Error(msg string, kv ...interface{}) { log.Println(msg, kv) }
//
//	ctrl := gbxcart.New(opener, gbxcart.WithLogger(&StdLogger{}))
type Logger interface {
	// Debug logs a debug message with optional key-value pairs
	Debug(msg string, keysAndValues ...interface{})

	// Info logs an info message with optional key-value pairs
	Info(msg string, keysAndValues ...interface{})

	// Error logs an error message with optional key-value pairs
	Error(msg string, keysAndValues ...interface{})
}
