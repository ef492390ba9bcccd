// Package logging provides a minimal logging interface and adapters for the
// adaptation and dispatch layers.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that the adapter builder and the polymorphic dispatcher use
// for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelDebug, "text", false)
//	a, err := adapter.Build(fn, paramType, adapter.Infer, func(o *adapter.Options) {
//		o.Logger = logger
//	})
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging
